package goal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rollup is the year-to-date health of one goal as of a reference date.
type Rollup struct {
	ExpectedYTD decimal.Decimal
	ActualYTD   decimal.Decimal
	RatioPct    float64
	Status      Status
}

// RollupAsOf sums targets and actuals for January through the month of asOf
// and grades the result. A zero expected value grades as the lowest tier
// rather than dividing by zero.
func RollupAsOf(targets []MonthlyTarget, asOf time.Time) Rollup {
	currentMonth := int(asOf.Month())

	expected := decimal.Zero
	actual := decimal.Zero
	for _, t := range targets {
		if t.Month > currentMonth {
			continue
		}
		expected = expected.Add(t.TargetValue)
		actual = actual.Add(t.ActualValue)
	}

	ratioPct := 0.0
	if expected.IsPositive() {
		ratioPct, _ = actual.Div(expected).Mul(hundred).Float64()
	}

	return Rollup{
		ExpectedYTD: expected,
		ActualYTD:   actual,
		RatioPct:    ratioPct,
		Status:      StatusForRatio(ratioPct),
	}
}

// StatusForRatio grades a percentage: 80 and above is healthy, 50-79 needs a
// check-in, below 50 needs intervention.
func StatusForRatio(ratioPct float64) Status {
	switch {
	case ratioPct >= 80:
		return StatusOK
	case ratioPct >= 50:
		return StatusCheck
	default:
		return StatusSave
	}
}

// MonthlyProgressPct is the display progress of a single month, 0 when the
// month has no target.
func MonthlyProgressPct(t *MonthlyTarget) float64 {
	if t == nil || !t.TargetValue.IsPositive() {
		return 0
	}
	pct, _ := t.ActualValue.Div(t.TargetValue).Mul(hundred).Float64()
	return pct
}
