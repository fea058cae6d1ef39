package goal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGoal(target string, year int) *AnnualGoal {
	return &AnnualGoal{
		ID:          uuid.New(),
		GoalName:    "Annual Revenue",
		TargetValue: decimal.RequireFromString(target),
		Year:        year,
	}
}

func sumTargets(targets []MonthlyTarget) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range targets {
		sum = sum.Add(t.TargetValue)
	}
	return sum
}

func TestBuildLinearCascade(t *testing.T) {
	g := testGoal("24000000", 2026)

	targets := BuildLinearCascade(g)
	require.Len(t, targets, 12)

	for _, mt := range targets {
		assert.True(t, mt.TargetValue.Equal(decimal.RequireFromString("2000000")),
			"month %d target = %s", mt.Month, mt.TargetValue)
		assert.True(t, mt.Weight.Equal(decimal.RequireFromString("8.33")))
		assert.Equal(t, "Linear distribution", mt.Rationale)
		assert.True(t, mt.ActualValue.IsZero())
		assert.Equal(t, 2026, mt.Year)
	}
}

func TestBuildLinearCascadeRoundingTolerance(t *testing.T) {
	// 100/12 does not divide evenly; the 12 rounded slices must stay within
	// the accumulated rounding tolerance of the annual target.
	g := testGoal("100", 2026)

	targets := BuildLinearCascade(g)
	diff := sumTargets(targets).Sub(g.TargetValue).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.12")),
		"sum drifted by %s", diff)
}

func TestBuildCustomCascade(t *testing.T) {
	g := testGoal("1000000", 2026)

	weights := []WeightInput{
		{Month: 1, Weight: 10}, {Month: 2, Weight: 10}, {Month: 3, Weight: 10},
		{Month: 4, Weight: 10}, {Month: 5, Weight: 10}, {Month: 6, Weight: 10},
		{Month: 7, Weight: 5}, {Month: 8, Weight: 5}, {Month: 9, Weight: 5},
		{Month: 10, Weight: 5}, {Month: 11, Weight: 10, Rationale: "Year-end push"}, {Month: 12, Weight: 10},
	}

	targets, err := BuildCustomCascade(g, weights)
	require.NoError(t, err)
	require.Len(t, targets, 12)

	assert.True(t, targets[0].TargetValue.Equal(decimal.RequireFromString("100000")),
		"month 1 target = %s", targets[0].TargetValue)
	assert.True(t, targets[6].TargetValue.Equal(decimal.RequireFromString("50000")))
	assert.Equal(t, "Year-end push", targets[10].Rationale)
}

func TestBuildCustomCascadeRejectsBadWeights(t *testing.T) {
	g := testGoal("1000000", 2026)

	t.Run("WrongLength", func(t *testing.T) {
		_, err := BuildCustomCascade(g, []WeightInput{{Month: 1, Weight: 100}})
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})

	t.Run("DuplicateMonth", func(t *testing.T) {
		weights := make([]WeightInput, 12)
		for i := range weights {
			weights[i] = WeightInput{Month: 1, Weight: 100.0 / 12}
		}
		_, err := BuildCustomCascade(g, weights)
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})

	t.Run("SumNot100", func(t *testing.T) {
		weights := make([]WeightInput, 12)
		for i := range weights {
			weights[i] = WeightInput{Month: i + 1, Weight: 5}
		}
		_, err := BuildCustomCascade(g, weights)
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})
}

func TestBuildHistoricalCascade(t *testing.T) {
	g := testGoal("1200", 2026)

	t.Run("ProportionalToPriorActuals", func(t *testing.T) {
		prior := make([]MonthlyTarget, 0, 12)
		for month := 1; month <= 12; month++ {
			actual := decimal.Zero
			if month == 6 {
				actual = decimal.NewFromInt(300)
			}
			if month == 12 {
				actual = decimal.NewFromInt(100)
			}
			prior = append(prior, MonthlyTarget{Month: month, ActualValue: actual})
		}

		targets := BuildHistoricalCascade(g, prior)
		require.Len(t, targets, 12)

		// June carried 75% of last year's volume, December 25%.
		assert.True(t, targets[5].TargetValue.Equal(decimal.NewFromInt(900)),
			"june target = %s", targets[5].TargetValue)
		assert.True(t, targets[11].TargetValue.Equal(decimal.NewFromInt(300)))
		assert.True(t, targets[0].TargetValue.IsZero())
	})

	t.Run("FallsBackToLinear", func(t *testing.T) {
		targets := BuildHistoricalCascade(g, nil)
		require.Len(t, targets, 12)
		assert.True(t, targets[0].Weight.Equal(decimal.RequireFromString("8.33")))
	})
}

func TestBuildMilestoneCascade(t *testing.T) {
	g := testGoal("1200000", 2026)

	targets := BuildMilestoneCascade(g)
	require.Len(t, targets, 12)

	// Back-loaded ramp: a Q4 month carries four times a Q1 month's weight.
	assert.True(t, targets[0].Weight.Equal(decimal.RequireFromString("3.33")))
	assert.True(t, targets[11].Weight.Equal(decimal.RequireFromString("13.33")))
	assert.True(t, targets[8].Weight.Equal(decimal.NewFromInt(10)))
}
