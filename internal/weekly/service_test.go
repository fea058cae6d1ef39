package weekly_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/goal"
	"github.com/growthfarm/opsboard-lambda/internal/weekly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	activities weekly.Service
	goals      goal.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&weekly.WeeklyActivity{},
		&goal.AnnualGoal{},
		&goal.MonthlyTarget{},
		&activitylog.ActivityLog{},
	))

	audit := activitylog.NewService(activitylog.NewRepository(db))
	goals := goal.NewService(goal.NewRepository(db), audit, nil)
	return &testEnv{
		activities: weekly.NewService(weekly.NewRepository(db), goals, audit),
		goals:      goals,
	}
}

func adminCtx() context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "admin",
	})
}

func userCtx() context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "user",
	})
}

func TestOpenPriorityCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := userCtx()

	for i := 0; i < 3; i++ {
		_, err := env.activities.Create(ctx, weekly.CreateActivityDTO{
			Activity:   "priority work",
			IsPriority: true,
			WeekNumber: 20,
			Year:       2026,
		})
		require.NoError(t, err)
	}

	_, err := env.activities.Create(ctx, weekly.CreateActivityDTO{
		Activity:   "fourth priority",
		IsPriority: true,
		WeekNumber: 20,
		Year:       2026,
	})
	assert.ErrorIs(t, err, weekly.ErrPrioritiesFull)

	// Non-priority activities are not capped.
	_, err = env.activities.Create(ctx, weekly.CreateActivityDTO{
		Activity:   "routine admin",
		WeekNumber: 20,
		Year:       2026,
	})
	assert.NoError(t, err)

	// Closing one priority frees a slot.
	mine, err := env.activities.Mine(ctx, 20, 2026)
	require.NoError(t, err)
	done := weekly.StatusDone
	_, err = env.activities.Update(ctx, mine[0].ID, weekly.UpdateActivityDTO{Status: &done})
	require.NoError(t, err)

	_, err = env.activities.Create(ctx, weekly.CreateActivityDTO{
		Activity:   "fourth priority, second try",
		IsPriority: true,
		WeekNumber: 20,
		Year:       2026,
	})
	assert.NoError(t, err)
}

func TestCompletionIncrementsLinkedGoal(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	g, err := env.goals.Create(adminCtx(), goal.CreateGoalDTO{
		StrategicObjective: "Stewardship",
		GoalName:           "Client proposals sent",
		TargetValue:        "120",
		TargetUnit:         "count",
		Year:               now.Year(),
	})
	require.NoError(t, err)
	_, err = env.goals.GenerateCascade(adminCtx(), g.ID, nil)
	require.NoError(t, err)

	ctx := userCtx()
	a, err := env.activities.Create(ctx, weekly.CreateActivityDTO{
		Activity:      "send proposal to Acme",
		MonthlyGoalID: &g.ID,
	})
	require.NoError(t, err)

	done := weekly.StatusDone
	_, err = env.activities.Update(ctx, a.ID, weekly.UpdateActivityDTO{Status: &done})
	require.NoError(t, err)

	targets, err := env.goals.MonthlyTargets(ctx, g.ID)
	require.NoError(t, err)
	for _, target := range targets {
		if target.Month == int(now.Month()) {
			assert.Equal(t, "1", target.ActualValue.String())
		} else {
			assert.True(t, target.ActualValue.IsZero())
		}
	}

	// Completing again is a no-op transition and must not double count.
	_, err = env.activities.Update(ctx, a.ID, weekly.UpdateActivityDTO{Status: &done})
	require.NoError(t, err)
	targets, err = env.goals.MonthlyTargets(ctx, g.ID)
	require.NoError(t, err)
	for _, target := range targets {
		if target.Month == int(now.Month()) {
			assert.Equal(t, "1", target.ActualValue.String())
		}
	}
}

func TestAssignedToMe(t *testing.T) {
	env := newTestEnv(t)
	owner := userCtx()
	partnerID := uuid.New()
	partnerCtx := auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: partnerID.String(),
		Role:   "user",
	})

	_, err := env.activities.Create(owner, weekly.CreateActivityDTO{
		Activity:                "draft the board pack",
		AccountabilityPartnerID: &partnerID,
		PartnerRole:             weekly.PartnerRolePartner,
		WeekNumber:              21,
		Year:                    2026,
	})
	require.NoError(t, err)

	assigned, err := env.activities.AssignedToMe(partnerCtx, 21, 2026)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, "partner", assigned[0].MyRole)
	assert.NotEqual(t, partnerID, assigned[0].AssignedByID)

	// The owner has nothing assigned to them.
	assigned, err = env.activities.AssignedToMe(owner, 21, 2026)
	require.NoError(t, err)
	assert.Empty(t, assigned)
}

func TestTeamPrioritiesOnlyOpenOnes(t *testing.T) {
	env := newTestEnv(t)
	ctx := userCtx()

	a, err := env.activities.Create(ctx, weekly.CreateActivityDTO{
		Activity:   "open priority",
		IsPriority: true,
		WeekNumber: 22,
		Year:       2026,
	})
	require.NoError(t, err)
	b, err := env.activities.Create(ctx, weekly.CreateActivityDTO{
		Activity:   "dropped priority",
		IsPriority: true,
		WeekNumber: 22,
		Year:       2026,
	})
	require.NoError(t, err)
	_, err = env.activities.Create(ctx, weekly.CreateActivityDTO{
		Activity:   "not a priority",
		WeekNumber: 22,
		Year:       2026,
	})
	require.NoError(t, err)

	dropped := weekly.StatusDeprioritised
	_, err = env.activities.Update(ctx, b.ID, weekly.UpdateActivityDTO{Status: &dropped})
	require.NoError(t, err)

	open, err := env.activities.TeamPriorities(ctx, 22, 2026)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, a.ID, open[0].ID)
}
