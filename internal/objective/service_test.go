package objective_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/objective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) objective.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&objective.StrategicObjective{},
		&activitylog.ActivityLog{},
	))
	audit := activitylog.NewService(activitylog.NewRepository(db))
	return objective.NewService(objective.NewRepository(db), audit)
}

func adminCtx() context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "admin",
	})
}

func TestListSeedsDefaults(t *testing.T) {
	svc := newTestService(t)

	objectives, err := svc.ListByYear(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, objectives, 5)
	assert.Equal(t, "COMMUNITY ENGAGEMENT", objectives[0].Name)
	assert.Equal(t, "PURPOSE & PLATFORM", objectives[4].Name)

	// A second list must not seed again.
	again, err := svc.ListByYear(context.Background(), 2026)
	require.NoError(t, err)
	assert.Len(t, again, 5)

	// Another year seeds its own set.
	next, err := svc.ListByYear(context.Background(), 2027)
	require.NoError(t, err)
	assert.Len(t, next, 5)
	assert.NotEqual(t, objectives[0].ID, next[0].ID)
}

func TestAdminGates(t *testing.T) {
	svc := newTestService(t)
	userCtx := auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "user",
	})

	_, err := svc.Create(userCtx, objective.CreateObjectiveDTO{Name: "SIDE QUESTS", Year: 2026})
	assert.ErrorIs(t, err, objective.ErrForbidden)

	_, err = svc.BulkUpdateWeights(userCtx, objective.BulkWeightsDTO{})
	assert.ErrorIs(t, err, objective.ErrForbidden)
}

func TestBulkUpdateWeights(t *testing.T) {
	svc := newTestService(t)

	objectives, err := svc.ListByYear(context.Background(), 2026)
	require.NoError(t, err)

	updated, err := svc.BulkUpdateWeights(adminCtx(), objective.BulkWeightsDTO{
		Weights: []objective.WeightUpdate{
			{ID: objectives[0].ID, Weight: 40},
			{ID: objectives[1].ID, Weight: 10},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	weights, err := svc.WeightsForYear(context.Background(), 2026)
	require.NoError(t, err)
	assert.Equal(t, 40.0, weights[objectives[0].Name])
	assert.Equal(t, 10.0, weights[objectives[1].Name])
	assert.Equal(t, 20.0, weights[objectives[2].Name])
}
