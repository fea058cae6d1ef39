package goal

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidWeights  = errors.New("custom weights must cover months 1-12 once and sum to 100")
	ErrWeightsRequired = errors.New("custom distribution requires a weight array")
)

var (
	twelve        = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
	linearWeight  = decimal.RequireFromString("8.33")
	weightEpsilon = decimal.RequireFromString("0.01")
)

const linearRationale = "Linear distribution"

// BuildLinearCascade splits the annual target into twelve equal monthly
// slices rounded to two decimals.
func BuildLinearCascade(g *AnnualGoal) []MonthlyTarget {
	monthly := g.TargetValue.Div(twelve).Round(2)

	targets := make([]MonthlyTarget, 0, 12)
	for month := 1; month <= 12; month++ {
		targets = append(targets, MonthlyTarget{
			GoalID:      g.ID,
			Month:       month,
			Year:        g.Year,
			TargetValue: monthly,
			Weight:      linearWeight,
			Rationale:   linearRationale,
			ActualValue: decimal.Zero,
		})
	}
	return targets
}

// BuildCustomCascade distributes the annual target by caller-supplied
// weights. The weights must cover every month exactly once and sum to 100
// within a small tolerance.
func BuildCustomCascade(g *AnnualGoal, weights []WeightInput) ([]MonthlyTarget, error) {
	if len(weights) != 12 {
		return nil, ErrInvalidWeights
	}

	seen := make(map[int]bool, 12)
	sum := decimal.Zero
	for _, w := range weights {
		if w.Month < 1 || w.Month > 12 || seen[w.Month] {
			return nil, ErrInvalidWeights
		}
		seen[w.Month] = true
		sum = sum.Add(decimal.NewFromFloat(w.Weight))
	}
	if sum.Sub(hundred).Abs().GreaterThan(weightEpsilon) {
		return nil, ErrInvalidWeights
	}

	targets := make([]MonthlyTarget, 0, 12)
	for _, w := range weights {
		weight := decimal.NewFromFloat(w.Weight).Round(2)
		targets = append(targets, MonthlyTarget{
			GoalID:      g.ID,
			Month:       w.Month,
			Year:        g.Year,
			TargetValue: g.TargetValue.Mul(weight).Div(hundred).Round(2),
			Weight:      weight,
			Rationale:   w.Rationale,
			ActualValue: decimal.Zero,
		})
	}
	return targets, nil
}

// BuildHistoricalCascade weights each month proportionally to the prior
// year's actuals for the same goal. Months fall back to a linear split when
// the prior year recorded nothing.
func BuildHistoricalCascade(g *AnnualGoal, priorActuals []MonthlyTarget) []MonthlyTarget {
	total := decimal.Zero
	byMonth := make(map[int]decimal.Decimal, 12)
	for _, t := range priorActuals {
		byMonth[t.Month] = t.ActualValue
		total = total.Add(t.ActualValue)
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return BuildLinearCascade(g)
	}

	targets := make([]MonthlyTarget, 0, 12)
	for month := 1; month <= 12; month++ {
		weight := byMonth[month].Div(total).Mul(hundred).Round(2)
		targets = append(targets, MonthlyTarget{
			GoalID:      g.ID,
			Month:       month,
			Year:        g.Year,
			TargetValue: g.TargetValue.Mul(weight).Div(hundred).Round(2),
			Weight:      weight,
			Rationale:   "Proportional to prior-year actuals",
			ActualValue: decimal.Zero,
		})
	}
	return targets
}

// milestoneQuarterShares is a back-loaded ramp: 10% of the annual target in
// Q1, then 20%, 30% and 40%, spread evenly inside each quarter.
var milestoneQuarterShares = []int64{10, 20, 30, 40}

func BuildMilestoneCascade(g *AnnualGoal) []MonthlyTarget {
	three := decimal.NewFromInt(3)

	targets := make([]MonthlyTarget, 0, 12)
	for month := 1; month <= 12; month++ {
		quarter := (month - 1) / 3
		weight := decimal.NewFromInt(milestoneQuarterShares[quarter]).Div(three).Round(2)
		targets = append(targets, MonthlyTarget{
			GoalID:      g.ID,
			Month:       month,
			Year:        g.Year,
			TargetValue: g.TargetValue.Mul(weight).Div(hundred).Round(2),
			Weight:      weight,
			Rationale:   "Milestone ramp (Q1 10% / Q2 20% / Q3 30% / Q4 40%)",
			ActualValue: decimal.Zero,
		})
	}
	return targets
}
