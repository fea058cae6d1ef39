package health_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/health"
	"github.com/growthfarm/opsboard-lambda/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&health.HealthCheckin{},
		&activitylog.ActivityLog{},
	))
	return db
}

func seedMember(t *testing.T, users user.Repository, name string) *user.User {
	t.Helper()
	u := user.User{ID: uuid.New(), Name: name, Email: name + "@growthfarm.co", Role: user.RoleUser}
	require.NoError(t, users.Create(&u))
	return &u
}

func memberCtx(u *user.User) context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: u.ID.String(),
		Role:   string(u.Role),
	})
}

func newTestService(t *testing.T) (health.Service, user.Repository) {
	t.Helper()
	db := newTestDB(t)
	users := user.NewRepository(db)
	audit := activitylog.NewService(activitylog.NewRepository(db))
	return health.NewService(health.NewRepository(db), users, audit), users
}

func TestWellbeingWord(t *testing.T) {
	assert.Equal(t, "Thriving", health.WellbeingWord(80))
	assert.Equal(t, "Thriving", health.WellbeingWord(100))
	assert.Equal(t, "Steady", health.WellbeingWord(79))
	assert.Equal(t, "Steady", health.WellbeingWord(60))
	assert.Equal(t, "Struggling", health.WellbeingWord(59))
	assert.Equal(t, "Struggling", health.WellbeingWord(0))
}

func TestSubmitCheckin(t *testing.T) {
	svc, users := newTestService(t)
	alice := seedMember(t, users, "alice")

	t.Run("RequiresClaims", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), health.SubmitCheckinDTO{Score: 70, Mood: health.MoodHappy, EnergyLevel: health.EnergyHigh})
		assert.ErrorIs(t, err, health.ErrUnauthorized)
	})

	t.Run("RejectsOutOfRangeScore", func(t *testing.T) {
		_, err := svc.Submit(memberCtx(alice), health.SubmitCheckinDTO{Score: 101, Mood: health.MoodHappy, EnergyLevel: health.EnergyHigh})
		assert.ErrorIs(t, err, health.ErrInvalidScore)
	})

	t.Run("SavesAndShowsInHistory", func(t *testing.T) {
		checkin, err := svc.Submit(memberCtx(alice), health.SubmitCheckinDTO{
			Score:       85,
			Mood:        health.MoodHappy,
			EnergyLevel: health.EnergyHigh,
			Notes:       "good sprint",
		})
		require.NoError(t, err)
		assert.Equal(t, alice.ID, checkin.UserID)

		history, err := svc.History(memberCtx(alice), 0)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, 85, history[0].Score)
	})
}

func TestTeamOverview(t *testing.T) {
	svc, users := newTestService(t)
	alice := seedMember(t, users, "alice")
	bob := seedMember(t, users, "bob")
	seedMember(t, users, "carol")

	_, err := svc.Submit(memberCtx(alice), health.SubmitCheckinDTO{Score: 40, Mood: health.MoodSad, EnergyLevel: health.EnergyLow})
	require.NoError(t, err)
	_, err = svc.Submit(memberCtx(alice), health.SubmitCheckinDTO{Score: 90, Mood: health.MoodHappy, EnergyLevel: health.EnergyHigh})
	require.NoError(t, err)
	_, err = svc.Submit(memberCtx(bob), health.SubmitCheckinDTO{Score: 65, Mood: health.MoodNeutral, EnergyLevel: health.EnergyMed})
	require.NoError(t, err)

	overview, err := svc.TeamOverview(memberCtx(bob))
	require.NoError(t, err)
	require.Len(t, overview.Team, 3)

	byName := map[string]health.TeamMemberHealth{}
	for _, row := range overview.Team {
		byName[row.Name] = row
	}

	// Alice's latest check-in wins over her earlier one.
	assert.Equal(t, 90, byName["alice"].CurrentHealthScore)
	assert.Equal(t, "Thriving", byName["alice"].WellbeingWord)
	assert.Equal(t, 65, byName["bob"].CurrentHealthScore)
	assert.Equal(t, "Steady", byName["bob"].WellbeingWord)

	// Carol never checked in and does not drag down the average.
	assert.Equal(t, 0, byName["carol"].CurrentHealthScore)
	assert.Empty(t, byName["carol"].WellbeingWord)
	assert.Equal(t, 78, overview.OverallScore)
}
