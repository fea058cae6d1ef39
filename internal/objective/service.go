package objective

import (
	"context"
	"errors"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("only admins can manage objectives")
	ErrObjectiveNotFound = errors.New("objective not found")
)

// defaultObjectives are the five pillars every new year starts from. Weights
// are an even split until leadership rebalances them.
var defaultObjectives = []StrategicObjective{
	{Name: "COMMUNITY ENGAGEMENT", Weight: 20, Icon: "🤝", Color: "green", BgColor: "bg-green-50", DisplayOrder: 1},
	{Name: "NEW FRONTIERS", Weight: 20, Icon: "🚀", Color: "purple", BgColor: "bg-purple-50", DisplayOrder: 2},
	{Name: "IMPACT DELIVERY", Weight: 20, Icon: "🎯", Color: "blue", BgColor: "bg-blue-50", DisplayOrder: 3},
	{Name: "STEWARDSHIP", Weight: 20, Icon: "🌱", Color: "amber", BgColor: "bg-amber-50", DisplayOrder: 4},
	{Name: "PURPOSE & PLATFORM", Weight: 20, Icon: "💡", Color: "pink", BgColor: "bg-pink-50", DisplayOrder: 5},
}

type Service interface {
	ListByYear(ctx context.Context, year int) ([]StrategicObjective, error)
	Create(ctx context.Context, dto CreateObjectiveDTO) (*StrategicObjective, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateObjectiveDTO) (*StrategicObjective, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpdateWeights(ctx context.Context, dto BulkWeightsDTO) ([]StrategicObjective, error)

	WeightsForYear(ctx context.Context, year int) (map[string]float64, error)
}

type service struct {
	repo  Repository
	audit activitylog.Recorder
}

func NewService(repo Repository, audit activitylog.Recorder) Service {
	return &service{repo: repo, audit: audit}
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

// ListByYear seeds the default pillars the first time a year is queried.
func (s *service) ListByYear(ctx context.Context, year int) ([]StrategicObjective, error) {
	log := config.WithContext(ctx)

	objectives, err := s.repo.FindByYear(year)
	if err != nil {
		return nil, err
	}
	if len(objectives) > 0 {
		return objectives, nil
	}

	seeded := make([]StrategicObjective, len(defaultObjectives))
	for i, o := range defaultObjectives {
		o.ID = uuid.New()
		o.Year = year
		seeded[i] = o
	}
	if err := s.repo.CreateBatch(seeded); err != nil {
		log.WithError(err).WithField("year", year).Error("Failed to seed default objectives")
		return nil, err
	}

	log.WithField("year", year).Info("Seeded default strategic objectives")
	return seeded, nil
}

func (s *service) Create(ctx context.Context, dto CreateObjectiveDTO) (*StrategicObjective, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	o := StrategicObjective{
		ID:           uuid.New(),
		Name:         dto.Name,
		Weight:       dto.Weight,
		Icon:         dto.Icon,
		Color:        dto.Color,
		BgColor:      dto.BgColor,
		DisplayOrder: dto.DisplayOrder,
		Year:         dto.Year,
	}
	if err := s.repo.Create(&o); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "objective_created",
		EntityType:  "strategic_objective",
		EntityID:    &o.ID,
		Description: o.Name,
	})

	return &o, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateObjectiveDTO) (*StrategicObjective, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrObjectiveNotFound
	}

	if dto.Name != nil {
		o.Name = *dto.Name
	}
	if dto.Weight != nil {
		o.Weight = *dto.Weight
	}
	if dto.Icon != nil {
		o.Icon = *dto.Icon
	}
	if dto.Color != nil {
		o.Color = *dto.Color
	}
	if dto.BgColor != nil {
		o.BgColor = *dto.BgColor
	}
	if dto.DisplayOrder != nil {
		o.DisplayOrder = *dto.DisplayOrder
	}

	if err := s.repo.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	o, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrObjectiveNotFound
	}

	return s.repo.Delete(id)
}

func (s *service) BulkUpdateWeights(ctx context.Context, dto BulkWeightsDTO) ([]StrategicObjective, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	updated := make([]StrategicObjective, 0, len(dto.Weights))
	for _, w := range dto.Weights {
		o, err := s.repo.GetByID(w.ID)
		if err != nil {
			return nil, err
		}
		if o == nil {
			return nil, ErrObjectiveNotFound
		}
		o.Weight = w.Weight
		if err := s.repo.Update(o); err != nil {
			return nil, err
		}
		updated = append(updated, *o)
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType: "objective_weights_updated",
		EntityType: "strategic_objective",
	})

	return updated, nil
}

// WeightsForYear feeds the goal grid export, keyed by objective name.
func (s *service) WeightsForYear(ctx context.Context, year int) (map[string]float64, error) {
	objectives, err := s.repo.FindByYear(year)
	if err != nil {
		return nil, err
	}

	weights := make(map[string]float64, len(objectives))
	for _, o := range objectives {
		weights[o.Name] = o.Weight
	}
	return weights, nil
}
