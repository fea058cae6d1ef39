package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/goal"
	"github.com/shopspring/decimal"
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
		&goal.AnnualGoal{},
		&goal.MonthlyTarget{},
		&activitylog.ActivityLog{},
	))
	return db
}

func adminCtx() context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "admin",
	})
}

func memberCtx() context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "user",
	})
}

func newTestService(t *testing.T) goal.Service {
	t.Helper()
	db := newTestDB(t)
	audit := activitylog.NewService(activitylog.NewRepository(db))
	return goal.NewService(goal.NewRepository(db), audit, nil)
}

func createGoal(t *testing.T, svc goal.Service, target string, year int) *goal.AnnualGoal {
	t.Helper()
	g, err := svc.Create(adminCtx(), goal.CreateGoalDTO{
		StrategicObjective: "Stewardship",
		GoalName:           "Annual Revenue",
		TargetValue:        target,
		TargetUnit:         "ZAR",
		Year:               year,
	})
	require.NoError(t, err)
	return g
}

func TestCreateGoal(t *testing.T) {
	svc := newTestService(t)

	t.Run("AdminCanCreate", func(t *testing.T) {
		g := createGoal(t, svc, "24000000", 2026)
		assert.Equal(t, goal.StrategyLinear, g.DistributionStrategy)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		_, err := svc.Create(memberCtx(), goal.CreateGoalDTO{
			StrategicObjective: "Stewardship",
			GoalName:           "Side Goal",
			TargetValue:        "100",
			TargetUnit:         "count",
			Year:               2026,
		})
		assert.ErrorIs(t, err, goal.ErrForbidden)
	})

	t.Run("NonNumericTarget", func(t *testing.T) {
		_, err := svc.Create(adminCtx(), goal.CreateGoalDTO{
			StrategicObjective: "Stewardship",
			GoalName:           "Bad Goal",
			TargetValue:        "a lot",
			TargetUnit:         "ZAR",
			Year:               2026,
		})
		assert.ErrorIs(t, err, goal.ErrInvalidTargetValue)
	})
}

func TestGenerateCascade(t *testing.T) {
	t.Run("UnknownGoal", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.GenerateCascade(adminCtx(), uuid.New(), nil)
		assert.ErrorIs(t, err, goal.ErrGoalNotFound)
	})

	t.Run("RegenerationReplacesRows", func(t *testing.T) {
		svc := newTestService(t)
		g := createGoal(t, svc, "24000000", 2026)

		_, err := svc.GenerateCascade(adminCtx(), g.ID, nil)
		require.NoError(t, err)
		_, err = svc.GenerateCascade(adminCtx(), g.ID, nil)
		require.NoError(t, err)

		targets, err := svc.MonthlyTargets(adminCtx(), g.ID)
		require.NoError(t, err)
		assert.Len(t, targets, 12)
	})

	t.Run("IdempotentRead", func(t *testing.T) {
		svc := newTestService(t)
		g := createGoal(t, svc, "24000000", 2026)
		_, err := svc.GenerateCascade(adminCtx(), g.ID, nil)
		require.NoError(t, err)

		first, err := svc.MonthlyTargets(adminCtx(), g.ID)
		require.NoError(t, err)
		second, err := svc.MonthlyTargets(adminCtx(), g.ID)
		require.NoError(t, err)
		assert.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
			assert.True(t, first[i].TargetValue.Equal(second[i].TargetValue))
		}
	})

	t.Run("CustomStrategyWithoutWeights", func(t *testing.T) {
		svc := newTestService(t)
		strategy := goal.StrategyCustom
		g := createGoal(t, svc, "1000", 2026)
		_, err := svc.Update(adminCtx(), g.ID, goal.UpdateGoalDTO{DistributionStrategy: &strategy})
		require.NoError(t, err)

		_, err = svc.GenerateCascade(adminCtx(), g.ID, nil)
		assert.ErrorIs(t, err, goal.ErrWeightsRequired)
	})
}

func TestActualUpdates(t *testing.T) {
	t.Run("UpdateByGoalMonth", func(t *testing.T) {
		svc := newTestService(t)
		g := createGoal(t, svc, "24000000", 2026)
		_, err := svc.GenerateCascade(adminCtx(), g.ID, nil)
		require.NoError(t, err)

		mt, err := svc.UpdateActualByGoalMonth(memberCtx(), g.ID, 1, 2026, "1800000")
		require.NoError(t, err)
		assert.True(t, mt.ActualValue.Equal(decimal.NewFromInt(1800000)))
	})

	t.Run("MissingRowNotFound", func(t *testing.T) {
		svc := newTestService(t)
		g := createGoal(t, svc, "24000000", 2026)

		_, err := svc.UpdateActualByGoalMonth(memberCtx(), g.ID, 1, 2026, "10")
		assert.ErrorIs(t, err, goal.ErrTargetNotFound)
	})

	t.Run("LockSuppressesIncrement", func(t *testing.T) {
		svc := newTestService(t)
		g := createGoal(t, svc, "24000000", 2026)
		_, err := svc.GenerateCascade(adminCtx(), g.ID, nil)
		require.NoError(t, err)

		targets, err := svc.MonthlyTargets(adminCtx(), g.ID)
		require.NoError(t, err)

		_, err = svc.UpdateActual(memberCtx(), targets[0].ID, "50")
		require.NoError(t, err)
		_, err = svc.SetLock(adminCtx(), targets[0].ID, true)
		require.NoError(t, err)

		updated, err := svc.IncrementActual(memberCtx(), g.ID, 1, 2026, decimal.NewFromInt(1))
		require.NoError(t, err)
		assert.Nil(t, updated, "locked row should be silently skipped")

		after, err := svc.MonthlyTargets(adminCtx(), g.ID)
		require.NoError(t, err)
		assert.True(t, after[0].ActualValue.Equal(decimal.NewFromInt(50)),
			"actual changed to %s", after[0].ActualValue)
	})

	t.Run("IncrementUnlockedRow", func(t *testing.T) {
		svc := newTestService(t)
		g := createGoal(t, svc, "24000000", 2026)
		_, err := svc.GenerateCascade(adminCtx(), g.ID, nil)
		require.NoError(t, err)

		updated, err := svc.IncrementActual(memberCtx(), g.ID, 3, 2026, decimal.NewFromInt(1))
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.ActualValue.Equal(decimal.NewFromInt(1)))
	})

	t.Run("IncrementMissingRowIsNoop", func(t *testing.T) {
		svc := newTestService(t)
		g := createGoal(t, svc, "24000000", 2026)

		updated, err := svc.IncrementActual(memberCtx(), g.ID, 3, 2026, decimal.NewFromInt(1))
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestWithStatusScenario(t *testing.T) {
	// Annual Revenue 24M linear, January actual 1.8M, observed Jan 31:
	// expected YTD 2M, actual 1.8M, ratio 90% -> ok.
	svc := newTestService(t)
	g := createGoal(t, svc, "24000000", 2026)
	_, err := svc.GenerateCascade(adminCtx(), g.ID, nil)
	require.NoError(t, err)

	_, err = svc.UpdateActualByGoalMonth(memberCtx(), g.ID, 1, 2026, "1800000")
	require.NoError(t, err)

	asOf, err := time.Parse("2006-01-02", "2026-01-31")
	require.NoError(t, err)

	statuses, err := svc.WithStatus(memberCtx(), 2026, asOf)
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	assert.Equal(t, goal.StatusOK, statuses[0].Status)
	assert.Equal(t, "2000000.00", statuses[0].ExpectedYTD)
	assert.Equal(t, "1800000.00", statuses[0].ActualYTD)
	assert.InDelta(t, 90, statuses[0].RatioPct, 0.001)
}

func TestDeleteGoalCascades(t *testing.T) {
	svc := newTestService(t)
	g := createGoal(t, svc, "24000000", 2026)
	_, err := svc.GenerateCascade(adminCtx(), g.ID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(adminCtx(), g.ID))

	targets, err := svc.MonthlyTargets(adminCtx(), g.ID)
	require.NoError(t, err)
	assert.Empty(t, targets)
}
