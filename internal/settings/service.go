package settings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("only admins can change company settings")
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidType     = errors.New("invalid setting type")
)

type Service interface {
	List(ctx context.Context) ([]Setting, error)
	Get(ctx context.Context, key string) (*Setting, error)
	Save(ctx context.Context, dto SaveSettingDTO) (*Setting, error)
}

type service struct {
	repo  Repository
	audit activitylog.Recorder
}

func NewService(repo Repository, audit activitylog.Recorder) Service {
	return &service{repo: repo, audit: audit}
}

func (s *service) List(ctx context.Context) ([]Setting, error) {
	return s.repo.FindAll()
}

func (s *service) Get(ctx context.Context, key string) (*Setting, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}
	return setting, nil
}

// Save upserts by key so the dashboard can write settings without caring
// whether they exist yet.
func (s *service) Save(ctx context.Context, dto SaveSettingDTO) (*Setting, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !claims.IsAdmin() {
		return nil, ErrForbidden
	}

	settingType := dto.SettingType
	if settingType == "" {
		settingType = TypeString
	}
	if !settingType.IsValid() {
		return nil, ErrInvalidType
	}

	setting, err := s.repo.GetByKey(dto.SettingKey)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &Setting{
			ID:         uuid.New(),
			SettingKey: dto.SettingKey,
		}
	}

	updatedBy := uuid.MustParse(claims.UserID)
	setting.SettingValue = dto.SettingValue
	setting.SettingType = settingType
	if dto.Description != "" {
		setting.Description = dto.Description
	}
	setting.UpdatedBy = &updatedBy

	if err := s.repo.Save(setting); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "setting_saved",
		EntityType:  "setting",
		EntityID:    &setting.ID,
		Description: setting.SettingKey,
	})

	return setting, nil
}
