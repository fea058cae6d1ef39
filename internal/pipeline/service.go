package pipeline

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
	"github.com/shopspring/decimal"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrCardNotFound    = errors.New("card not found")
	ErrStageNotFound   = errors.New("stage not found")
	ErrInvalidPipeline = errors.New("invalid pipeline type")
	ErrInvalidValue    = errors.New("value must be numeric")
	ErrStageMismatch   = errors.New("target stage belongs to a different pipeline")
)

type Service interface {
	Board(ctx context.Context, pipelineType PipelineType) (*Board, error)
	CreateCard(ctx context.Context, dto CreateCardDTO) (*PipelineCard, error)
	UpdateCard(ctx context.Context, id uuid.UUID, dto UpdateCardDTO) (*PipelineCard, error)
	MoveCard(ctx context.Context, id uuid.UUID, dto MoveCardDTO) (*PipelineCard, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	audit activitylog.Recorder
}

func NewService(repo Repository, audit activitylog.Recorder) Service {
	return &service{repo: repo, audit: audit}
}

// Board seeds the default stage set for the pipeline on first access, then
// returns stages with their cards grouped per stage.
func (s *service) Board(ctx context.Context, pipelineType PipelineType) (*Board, error) {
	log := config.WithContext(ctx)

	if !pipelineType.IsValid() {
		return nil, ErrInvalidPipeline
	}

	stages, err := s.repo.FindStagesByType(pipelineType)
	if err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		seeds := defaultStages[pipelineType]
		stages = make([]PipelineStage, len(seeds))
		for i, seed := range seeds {
			stages[i] = PipelineStage{
				ID:                uuid.New(),
				PipelineType:      pipelineType,
				Name:              seed.name,
				Position:          i + 1,
				ProbabilityWeight: seed.probabilityWeight,
				Color:             seed.color,
			}
		}
		if err := s.repo.CreateStages(stages); err != nil {
			log.WithError(err).WithField("pipeline", pipelineType).Error("Failed to seed pipeline stages")
			return nil, err
		}
		log.WithField("pipeline", pipelineType).Info("Seeded default pipeline stages")
	}

	stageIDs := make([]uuid.UUID, len(stages))
	for i, stage := range stages {
		stageIDs[i] = stage.ID
	}
	cards, err := s.repo.FindCardsByStages(stageIDs)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]PipelineCard, len(stages))
	for _, stage := range stages {
		grouped[stage.ID.String()] = []PipelineCard{}
	}
	for _, card := range cards {
		key := card.StageID.String()
		grouped[key] = append(grouped[key], card)
	}

	return &Board{PipelineType: pipelineType, Stages: stages, Cards: grouped}, nil
}

func parseValue(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, ErrInvalidValue
	}
	return &v, nil
}

func ventureFromDTO(dto *VentureMetadataDTO) (*VentureMetadata, error) {
	if dto == nil {
		return nil, nil
	}
	m := &VentureMetadata{Status: dto.Status, DaysToRevenue: dto.DaysToRevenue}
	if dto.BurnRate != "" {
		burn, err := decimal.NewFromString(dto.BurnRate)
		if err != nil {
			return nil, ErrInvalidValue
		}
		m.BurnRate = burn
	}
	if dto.TargetBurn != "" {
		target, err := decimal.NewFromString(dto.TargetBurn)
		if err != nil {
			return nil, ErrInvalidValue
		}
		m.TargetBurn = target
	}
	return m, nil
}

func (s *service) CreateCard(ctx context.Context, dto CreateCardDTO) (*PipelineCard, error) {
	if _, err := auth.GetUserClaimsFromContext(ctx); err != nil {
		return nil, ErrUnauthorized
	}

	stage, err := s.repo.GetStage(dto.StageID)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, ErrStageNotFound
	}

	value, err := parseValue(dto.Value)
	if err != nil {
		return nil, err
	}
	venture, err := ventureFromDTO(dto.Venture)
	if err != nil {
		return nil, err
	}

	card := PipelineCard{
		ID:          uuid.New(),
		StageID:     stage.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Value:       value,
		OwnerID:     dto.OwnerID,
		DueDate:     dto.DueDate,
		Venture:     venture,
	}
	if len(dto.Tags) > 0 {
		tags, err := json.Marshal(dto.Tags)
		if err != nil {
			return nil, err
		}
		card.Tags = tags
	}

	if err := s.repo.CreateCard(&card); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "card_created",
		EntityType:  "pipeline_card",
		EntityID:    &card.ID,
		Description: card.Title,
	})

	return &card, nil
}

func (s *service) UpdateCard(ctx context.Context, id uuid.UUID, dto UpdateCardDTO) (*PipelineCard, error) {
	if _, err := auth.GetUserClaimsFromContext(ctx); err != nil {
		return nil, ErrUnauthorized
	}

	card, err := s.repo.GetCard(id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	if dto.Title != nil {
		card.Title = *dto.Title
	}
	if dto.Description != nil {
		card.Description = *dto.Description
	}
	if dto.Value != nil {
		value, err := parseValue(*dto.Value)
		if err != nil {
			return nil, err
		}
		card.Value = value
	}
	if dto.OwnerID != nil {
		card.OwnerID = dto.OwnerID
	}
	if dto.DueDate != nil {
		card.DueDate = dto.DueDate
	}
	if dto.Tags != nil {
		tags, err := json.Marshal(dto.Tags)
		if err != nil {
			return nil, err
		}
		card.Tags = tags
	}
	if dto.Venture != nil {
		venture, err := ventureFromDTO(dto.Venture)
		if err != nil {
			return nil, err
		}
		card.Venture = venture
	}

	if err := s.repo.UpdateCard(card); err != nil {
		return nil, err
	}
	return card, nil
}

// MoveCard drags a card to another stage within the same pipeline.
func (s *service) MoveCard(ctx context.Context, id uuid.UUID, dto MoveCardDTO) (*PipelineCard, error) {
	if _, err := auth.GetUserClaimsFromContext(ctx); err != nil {
		return nil, ErrUnauthorized
	}

	card, err := s.repo.GetCard(id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	from, err := s.repo.GetStage(card.StageID)
	if err != nil {
		return nil, err
	}
	to, err := s.repo.GetStage(dto.StageID)
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, ErrStageNotFound
	}
	if from != nil && from.PipelineType != to.PipelineType {
		return nil, ErrStageMismatch
	}

	card.StageID = to.ID
	card.Position = dto.Position
	if err := s.repo.UpdateCard(card); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "card_moved",
		EntityType:  "pipeline_card",
		EntityID:    &card.ID,
		Description: card.Title + " -> " + to.Name,
	})

	return card, nil
}

func (s *service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if _, err := auth.GetUserClaimsFromContext(ctx); err != nil {
		return ErrUnauthorized
	}

	card, err := s.repo.GetCard(id)
	if err != nil {
		return err
	}
	if card == nil {
		return ErrCardNotFound
	}

	return s.repo.DeleteCard(id)
}
