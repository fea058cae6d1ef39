package celebration

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("only the author or an admin can delete a celebration")
	ErrCelebrationNotFound = errors.New("celebration not found")
	ErrInvalidCategory     = errors.New("invalid celebration category")
)

type Service interface {
	Create(ctx context.Context, dto CreateCelebrationDTO) (*Celebration, error)
	Recent(ctx context.Context, limit int) ([]Celebration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	audit activitylog.Recorder
}

func NewService(repo Repository, audit activitylog.Recorder) Service {
	return &service{repo: repo, audit: audit}
}

func (s *service) Create(ctx context.Context, dto CreateCelebrationDTO) (*Celebration, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !dto.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	date := time.Now()
	if dto.CelebrationDate != nil {
		date = *dto.CelebrationDate
	}

	c := Celebration{
		ID:              uuid.New(),
		Title:           dto.Title,
		Description:     dto.Description,
		Category:        dto.Category,
		Icon:            dto.Icon,
		CelebrationDate: date,
		CreatedBy:       uuid.MustParse(claims.UserID),
	}
	if len(dto.TaggedUsers) > 0 {
		tagged, err := json.Marshal(dto.TaggedUsers)
		if err != nil {
			return nil, err
		}
		c.TaggedUsers = tagged
	}

	if err := s.repo.Create(&c); err != nil {
		log.WithError(err).Error("Failed to create celebration")
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "celebration_created",
		EntityType:  "celebration",
		EntityID:    &c.ID,
		Description: c.Title,
	})

	return &c, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Celebration, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.FindRecent(limit)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCelebrationNotFound
	}
	if c.CreatedBy.String() != claims.UserID && !claims.IsAdmin() {
		return ErrForbidden
	}

	return s.repo.Delete(id)
}
