package goal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
	"github.com/shopspring/decimal"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("only admins can modify goals")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrTargetNotFound     = errors.New("monthly target not found")
	ErrInvalidTargetValue = errors.New("target value must be a decimal number")
	ErrInvalidStrategy    = errors.New("unknown distribution strategy")
)

// ObjectiveSource supplies strategic objective weights for display surfaces
// like the CSV export.
type ObjectiveSource interface {
	WeightsForYear(ctx context.Context, year int) (map[string]float64, error)
}

type Service interface {
	Create(ctx context.Context, dto CreateGoalDTO) (*AnnualGoal, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateGoalDTO) (*AnnualGoal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByYear(ctx context.Context, year int) ([]AnnualGoal, error)

	GenerateCascade(ctx context.Context, goalID uuid.UUID, customWeights []WeightInput) ([]MonthlyTarget, error)
	MonthlyTargets(ctx context.Context, goalID uuid.UUID) ([]MonthlyTarget, error)
	AllMonthlyForYear(ctx context.Context, year int) ([]MonthlyTargetWithGoal, error)

	UpdateActual(ctx context.Context, targetID uuid.UUID, actualValue string) (*MonthlyTarget, error)
	UpdateActualByGoalMonth(ctx context.Context, goalID uuid.UUID, month, year int, actualValue string) (*MonthlyTarget, error)
	IncrementActual(ctx context.Context, goalID uuid.UUID, month, year int, delta decimal.Decimal) (*MonthlyTarget, error)
	SetLock(ctx context.Context, targetID uuid.UUID, locked bool) (*MonthlyTarget, error)

	WithStatus(ctx context.Context, year int, asOf time.Time) ([]GoalWithStatus, error)
	ExportMonthlyCSV(ctx context.Context, year int, asOf time.Time, w io.Writer) error
}

type service struct {
	repo       Repository
	audit      activitylog.Recorder
	objectives ObjectiveSource
}

func NewService(repo Repository, audit activitylog.Recorder, objectives ObjectiveSource) Service {
	return &service{repo: repo, audit: audit, objectives: objectives}
}

func requireAdmin(ctx context.Context) error {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}
	if !claims.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*AnnualGoal, error) {
	log := config.WithContext(ctx)

	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(dto.TargetValue)
	if err != nil {
		return nil, ErrInvalidTargetValue
	}

	strategy := dto.DistributionStrategy
	if strategy == "" {
		strategy = StrategyLinear
	}
	if !strategy.IsValid() {
		return nil, ErrInvalidStrategy
	}

	g := AnnualGoal{
		ID:                   uuid.New(),
		StrategicObjective:   dto.StrategicObjective,
		GoalName:             dto.GoalName,
		TargetValue:          target,
		TargetUnit:           dto.TargetUnit,
		OwnerID:              dto.OwnerID,
		OwnerName:            dto.OwnerName,
		Year:                 dto.Year,
		DistributionStrategy: strategy,
	}

	if err := s.repo.Create(&g); err != nil {
		log.WithError(err).Error("Failed to create annual goal")
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "goal_created",
		EntityType:  "annual_goal",
		EntityID:    &g.ID,
		NewValue:    dto,
		Description: fmt.Sprintf("created goal: %s", g.GoalName),
	})

	log.WithField("goal_id", g.ID).Info("Annual goal created")
	return &g, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateGoalDTO) (*AnnualGoal, error) {
	log := config.WithContext(ctx)

	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}

	if dto.StrategicObjective != nil {
		g.StrategicObjective = *dto.StrategicObjective
	}
	if dto.GoalName != nil {
		g.GoalName = *dto.GoalName
	}
	if dto.TargetValue != nil {
		target, err := decimal.NewFromString(*dto.TargetValue)
		if err != nil {
			return nil, ErrInvalidTargetValue
		}
		g.TargetValue = target
	}
	if dto.TargetUnit != nil {
		g.TargetUnit = *dto.TargetUnit
	}
	if dto.OwnerID != nil {
		g.OwnerID = dto.OwnerID
	}
	if dto.OwnerName != nil {
		g.OwnerName = *dto.OwnerName
	}
	if dto.DistributionStrategy != nil {
		if !dto.DistributionStrategy.IsValid() {
			return nil, ErrInvalidStrategy
		}
		g.DistributionStrategy = *dto.DistributionStrategy
	}

	if err := s.repo.Update(g); err != nil {
		log.WithError(err).Error("Failed to update annual goal")
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "goal_updated",
		EntityType:  "annual_goal",
		EntityID:    &g.ID,
		NewValue:    dto,
		Description: fmt.Sprintf("updated goal: %s", g.GoalName),
	})

	return g, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := requireAdmin(ctx); err != nil {
		return err
	}

	g, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGoalNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete annual goal")
		return err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "goal_deleted",
		EntityType:  "annual_goal",
		EntityID:    &id,
		Description: fmt.Sprintf("deleted goal: %s", g.GoalName),
	})

	return nil
}

func (s *service) ListByYear(ctx context.Context, year int) ([]AnnualGoal, error) {
	return s.repo.FindByYear(year)
}

// GenerateCascade (re)builds the twelve monthly rows for a goal. Custom
// weights win when supplied; otherwise the goal's own strategy decides.
// Regeneration replaces any prior rows for the goal's year.
func (s *service) GenerateCascade(ctx context.Context, goalID uuid.UUID, customWeights []WeightInput) ([]MonthlyTarget, error) {
	log := config.WithContext(ctx)

	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	g, err := s.repo.FindByID(goalID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}

	var rows []MonthlyTarget
	switch {
	case len(customWeights) > 0:
		rows, err = BuildCustomCascade(g, customWeights)
		if err != nil {
			return nil, err
		}
	case g.DistributionStrategy == StrategyLinear:
		rows = BuildLinearCascade(g)
	case g.DistributionStrategy == StrategyMilestone:
		rows = BuildMilestoneCascade(g)
	case g.DistributionStrategy == StrategyHistorical:
		prior, err := s.priorYearActuals(g)
		if err != nil {
			return nil, err
		}
		rows = BuildHistoricalCascade(g, prior)
	case g.DistributionStrategy == StrategyCustom:
		return nil, ErrWeightsRequired
	default:
		return nil, ErrInvalidStrategy
	}

	for i := range rows {
		rows[i].ID = uuid.New()
	}

	if err := s.repo.ReplaceMonthlyTargets(g.ID, g.Year, rows); err != nil {
		log.WithError(err).Error("Failed to persist monthly cascade")
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "cascade_generated",
		EntityType:  "annual_goal",
		EntityID:    &g.ID,
		Description: fmt.Sprintf("generated monthly cascade for %s", g.GoalName),
	})

	log.WithField("goal_id", g.ID).Info("Monthly cascade generated")
	return rows, nil
}

func (s *service) priorYearActuals(g *AnnualGoal) ([]MonthlyTarget, error) {
	prior, err := s.repo.FindByNameAndYear(g.GoalName, g.Year-1)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, nil
	}
	return s.repo.MonthlyByGoal(prior.ID)
}

func (s *service) MonthlyTargets(ctx context.Context, goalID uuid.UUID) ([]MonthlyTarget, error) {
	return s.repo.MonthlyByGoal(goalID)
}

func (s *service) AllMonthlyForYear(ctx context.Context, year int) ([]MonthlyTargetWithGoal, error) {
	return s.repo.MonthlyForYear(year)
}

func (s *service) UpdateActual(ctx context.Context, targetID uuid.UUID, actualValue string) (*MonthlyTarget, error) {
	t, err := s.repo.MonthlyByID(targetID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTargetNotFound
	}
	return s.applyActual(ctx, t, actualValue)
}

func (s *service) UpdateActualByGoalMonth(ctx context.Context, goalID uuid.UUID, month, year int, actualValue string) (*MonthlyTarget, error) {
	t, err := s.repo.MonthlyByGoalMonthYear(goalID, month, year)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTargetNotFound
	}
	return s.applyActual(ctx, t, actualValue)
}

func (s *service) applyActual(ctx context.Context, t *MonthlyTarget, actualValue string) (*MonthlyTarget, error) {
	log := config.WithContext(ctx)

	actual, err := decimal.NewFromString(actualValue)
	if err != nil {
		return nil, ErrInvalidTargetValue
	}

	t.ActualValue = actual
	if err := s.repo.UpdateMonthly(t); err != nil {
		log.WithError(err).Error("Failed to update monthly actual")
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "target_updated",
		EntityType:  "monthly_target",
		EntityID:    &t.ID,
		NewValue:    map[string]interface{}{"actual_value": actualValue, "month": t.Month},
		Description: "updated monthly target actual value",
	})

	return t, nil
}

// IncrementActual is the side-effect path from completed weekly activities.
// A missing or locked row is skipped without error so late completions never
// perturb a finalized month.
func (s *service) IncrementActual(ctx context.Context, goalID uuid.UUID, month, year int, delta decimal.Decimal) (*MonthlyTarget, error) {
	log := config.WithContext(ctx)

	t, err := s.repo.MonthlyByGoalMonthYear(goalID, month, year)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if t.IsLocked {
		log.WithField("target_id", t.ID).Info("Monthly target locked, increment skipped")
		return nil, nil
	}

	t.ActualValue = t.ActualValue.Add(delta)
	if err := s.repo.UpdateMonthly(t); err != nil {
		log.WithError(err).Error("Failed to increment monthly actual")
		return nil, err
	}
	return t, nil
}

func (s *service) SetLock(ctx context.Context, targetID uuid.UUID, locked bool) (*MonthlyTarget, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	t, err := s.repo.MonthlyByID(targetID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTargetNotFound
	}

	t.IsLocked = locked
	if err := s.repo.UpdateMonthly(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) WithStatus(ctx context.Context, year int, asOf time.Time) ([]GoalWithStatus, error) {
	goals, err := s.repo.FindByYear(year)
	if err != nil {
		return nil, err
	}

	results := make([]GoalWithStatus, 0, len(goals))
	for _, g := range goals {
		targets, err := s.repo.MonthlyByGoal(g.ID)
		if err != nil {
			return nil, err
		}

		rollup := RollupAsOf(targets, asOf)
		results = append(results, GoalWithStatus{
			AnnualGoal:  g,
			Status:      rollup.Status,
			ExpectedYTD: rollup.ExpectedYTD.StringFixed(2),
			ActualYTD:   rollup.ActualYTD.StringFixed(2),
			RatioPct:    rollup.RatioPct,
		})
	}
	return results, nil
}
