package celebration_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/celebration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) celebration.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&celebration.Celebration{},
		&activitylog.ActivityLog{},
	))
	audit := activitylog.NewService(activitylog.NewRepository(db))
	return celebration.NewService(celebration.NewRepository(db), audit)
}

func userCtx() context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "user",
	})
}

func TestCreateCelebration(t *testing.T) {
	svc := newTestService(t)
	tagged := uuid.New()

	c, err := svc.Create(userCtx(), celebration.CreateCelebrationDTO{
		Title:       "Signed the Meridian deal",
		Category:    celebration.CategoryDeal,
		Icon:        "🎉",
		TaggedUsers: []uuid.UUID{tagged},
	})
	require.NoError(t, err)

	var taggedUsers []uuid.UUID
	require.NoError(t, json.Unmarshal(c.TaggedUsers, &taggedUsers))
	assert.Equal(t, []uuid.UUID{tagged}, taggedUsers)

	_, err = svc.Create(userCtx(), celebration.CreateCelebrationDTO{
		Title:    "Bad category",
		Category: celebration.Category("anniversary"),
	})
	assert.ErrorIs(t, err, celebration.ErrInvalidCategory)
}

func TestRecentOrdersByDate(t *testing.T) {
	svc := newTestService(t)
	ctx := userCtx()

	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(ctx, celebration.CreateCelebrationDTO{
		Title:           "March milestone",
		Category:        celebration.CategoryMilestone,
		CelebrationDate: &older,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, celebration.CreateCelebrationDTO{
		Title:           "August birthday",
		Category:        celebration.CategoryBirthday,
		CelebrationDate: &newer,
	})
	require.NoError(t, err)

	recent, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "August birthday", recent[0].Title)
}

func TestDeleteCelebration(t *testing.T) {
	svc := newTestService(t)
	author := userCtx()

	c, err := svc.Create(author, celebration.CreateCelebrationDTO{
		Title:    "Personal win",
		Category: celebration.CategoryPersonal,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(userCtx(), c.ID), celebration.ErrForbidden)

	adminCtx := auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "admin",
	})
	require.NoError(t, svc.Delete(adminCtx, c.ID))
	assert.ErrorIs(t, svc.Delete(author, c.ID), celebration.ErrCelebrationNotFound)
}
