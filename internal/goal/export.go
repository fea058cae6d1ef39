package goal

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/growthfarm/opsboard-lambda/internal/config"
	"github.com/shopspring/decimal"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ExportMonthlyCSV writes the monthly goal grid as CSV: one row per goal with
// its objective, status and the twelve monthly targets plus the annual total.
func (s *service) ExportMonthlyCSV(ctx context.Context, year int, asOf time.Time, w io.Writer) error {
	log := config.WithContext(ctx)

	goals, err := s.WithStatus(ctx, year, asOf)
	if err != nil {
		return err
	}

	var objectiveWeights map[string]float64
	if s.objectives != nil {
		objectiveWeights, err = s.objectives.WeightsForYear(ctx, year)
		if err != nil {
			log.WithError(err).Warn("Objective weights unavailable for export")
		}
	}

	cw := csv.NewWriter(w)

	header := append([]string{"Strategic Objective", "KPI", "Unit", "Owner", "Status"}, monthNames...)
	header = append(header, "YTD")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, g := range goals {
		targets, err := s.repo.MonthlyByGoal(g.ID)
		if err != nil {
			return err
		}

		byMonth := make(map[int]MonthlyTarget, len(targets))
		total := decimal.Zero
		for _, t := range targets {
			byMonth[t.Month] = t
			total = total.Add(t.TargetValue)
		}

		objective := g.StrategicObjective
		if weight, ok := objectiveWeights[g.StrategicObjective]; ok {
			objective = fmt.Sprintf("%s (%g%%)", g.StrategicObjective, weight)
		}

		owner := g.OwnerName
		if owner == "" {
			owner = "-"
		}

		row := []string{objective, g.GoalName, g.TargetUnit, owner, string(g.Status)}
		for month := 1; month <= 12; month++ {
			if t, ok := byMonth[month]; ok {
				row = append(row, t.TargetValue.StringFixed(2))
			} else {
				row = append(row, "-")
			}
		}
		row = append(row, total.StringFixed(0))

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
