package goal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func targetsWithYTD(expected, actual int64, months int) []MonthlyTarget {
	targets := make([]MonthlyTarget, 0, 12)
	for month := 1; month <= 12; month++ {
		mt := MonthlyTarget{Month: month}
		if month <= months {
			mt.TargetValue = decimal.NewFromInt(expected / int64(months))
			mt.ActualValue = decimal.NewFromInt(actual / int64(months))
		}
		targets = append(targets, mt)
	}
	return targets
}

func TestStatusForRatio(t *testing.T) {
	assert.Equal(t, StatusOK, StatusForRatio(100))
	assert.Equal(t, StatusOK, StatusForRatio(80))
	assert.Equal(t, StatusCheck, StatusForRatio(79.9))
	assert.Equal(t, StatusCheck, StatusForRatio(60))
	assert.Equal(t, StatusCheck, StatusForRatio(50))
	assert.Equal(t, StatusSave, StatusForRatio(49.9))
	assert.Equal(t, StatusSave, StatusForRatio(0))
}

func TestRollupAsOf(t *testing.T) {
	asOf := mustDate(t, "2026-04-30")

	t.Run("OnTrack", func(t *testing.T) {
		rollup := RollupAsOf(targetsWithYTD(100, 80, 4), asOf)
		assert.Equal(t, StatusOK, rollup.Status)
		assert.InDelta(t, 80, rollup.RatioPct, 0.001)
	})

	t.Run("NeedsCheck", func(t *testing.T) {
		rollup := RollupAsOf(targetsWithYTD(100, 60, 4), asOf)
		assert.Equal(t, StatusCheck, rollup.Status)
	})

	t.Run("NeedsIntervention", func(t *testing.T) {
		rollup := RollupAsOf(targetsWithYTD(100, 40, 4), asOf)
		assert.Equal(t, StatusSave, rollup.Status)
	})

	t.Run("IgnoresFutureMonths", func(t *testing.T) {
		targets := targetsWithYTD(100, 80, 4)
		// A large December target must not dilute the April rollup.
		targets[11].TargetValue = decimal.NewFromInt(1000)

		rollup := RollupAsOf(targets, asOf)
		assert.True(t, rollup.ExpectedYTD.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, StatusOK, rollup.Status)
	})

	t.Run("ZeroExpectedNeverDivides", func(t *testing.T) {
		rollup := RollupAsOf(targetsWithYTD(0, 0, 4), asOf)
		assert.Equal(t, 0.0, rollup.RatioPct)
		assert.Equal(t, StatusSave, rollup.Status)
	})

	t.Run("NoTargetsAtAll", func(t *testing.T) {
		rollup := RollupAsOf(nil, asOf)
		assert.Equal(t, 0.0, rollup.RatioPct)
		assert.Equal(t, StatusSave, rollup.Status)
	})
}

func TestMonthlyProgressPct(t *testing.T) {
	mt := &MonthlyTarget{
		TargetValue: decimal.NewFromInt(200),
		ActualValue: decimal.NewFromInt(150),
	}
	assert.InDelta(t, 75, MonthlyProgressPct(mt), 0.001)

	assert.Equal(t, 0.0, MonthlyProgressPct(nil))
	assert.Equal(t, 0.0, MonthlyProgressPct(&MonthlyTarget{}))
}
