package activitylog

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
)

// Recorder is the write-side interface other features depend on. Recording is
// best effort: a failed audit write never fails the triggering mutation.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

type Service interface {
	Recorder
	Recent(ctx context.Context, limit int) ([]ActivityLog, error)
	ByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]ActivityLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, entry Entry) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warn("Activity entry without authenticated user, skipping")
		return
	}

	var payload []byte
	if entry.NewValue != nil {
		payload, err = json.Marshal(entry.NewValue)
		if err != nil {
			log.WithError(err).Warn("Failed to marshal activity payload")
			payload = nil
		}
	}

	record := ActivityLog{
		ID:          uuid.New(),
		UserID:      uuid.MustParse(claims.UserID),
		ActionType:  entry.ActionType,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		NewValue:    payload,
		Description: entry.Description,
	}

	if err := s.repo.Create(&record); err != nil {
		log.WithError(err).Error("Failed to write activity log entry")
	}
}

func (s *service) Recent(ctx context.Context, limit int) ([]ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.FindRecent(limit)
}

func (s *service) ByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]ActivityLog, error) {
	return s.repo.FindByEntity(entityType, entityID)
}
