package priority

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
	util "github.com/growthfarm/opsboard-lambda/internal/utils"
)

const maxPerWeek = 5

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("you can only change your own priorities")
	ErrPriorityNotFound = errors.New("priority not found")
	ErrWeekFull         = errors.New("a maximum of 5 priorities per week is allowed")
	ErrInvalidStatus    = errors.New("invalid priority status")
)

type Service interface {
	Create(ctx context.Context, dto CreatePriorityDTO) (*WeeklyPriority, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdatePriorityDTO) (*WeeklyPriority, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CurrentWeek(ctx context.Context) ([]WeeklyPriority, error)
	Mine(ctx context.Context, week, year int) ([]WeeklyPriority, error)
}

type service struct {
	repo  Repository
	audit activitylog.Recorder
}

func NewService(repo Repository, audit activitylog.Recorder) Service {
	return &service{repo: repo, audit: audit}
}

func (s *service) Create(ctx context.Context, dto CreatePriorityDTO) (*WeeklyPriority, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID := uuid.MustParse(claims.UserID)

	week, year := dto.WeekNumber, dto.Year
	if week == 0 || year == 0 {
		week, year = util.CurrentWeek()
	}

	count, err := s.repo.CountByUserWeek(userID, week, year)
	if err != nil {
		return nil, err
	}
	if count >= maxPerWeek {
		return nil, ErrWeekFull
	}

	p := WeeklyPriority{
		ID:           uuid.New(),
		UserID:       userID,
		Description:  dto.Description,
		DueDate:      dto.DueDate,
		WeekNumber:   week,
		Year:         year,
		LinkedGoalID: dto.LinkedGoalID,
		Status:       StatusPending,
	}
	if err := s.repo.Create(&p); err != nil {
		log.WithError(err).Error("Failed to create weekly priority")
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "priority_created",
		EntityType:  "weekly_priority",
		EntityID:    &p.ID,
		Description: p.Description,
	})

	return &p, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdatePriorityDTO) (*WeeklyPriority, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPriorityNotFound
	}
	if p.UserID.String() != claims.UserID && !claims.IsAdmin() {
		return nil, ErrForbidden
	}

	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.DueDate != nil {
		p.DueDate = dto.DueDate
	}
	if dto.LinkedGoalID != nil {
		p.LinkedGoalID = dto.LinkedGoalID
	}

	completed := false
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		completed = *dto.Status == StatusDone && p.Status != StatusDone
		p.Status = *dto.Status
	}

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}

	if completed {
		s.audit.Record(ctx, activitylog.Entry{
			ActionType:  "priority_completed",
			EntityType:  "weekly_priority",
			EntityID:    &p.ID,
			Description: fmt.Sprintf("completed: %s", p.Description),
		})
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPriorityNotFound
	}
	if p.UserID.String() != claims.UserID && !claims.IsAdmin() {
		return ErrForbidden
	}

	return s.repo.Delete(id)
}

func (s *service) CurrentWeek(ctx context.Context) ([]WeeklyPriority, error) {
	week, year := util.CurrentWeek()
	return s.repo.FindByWeek(week, year)
}

func (s *service) Mine(ctx context.Context, week, year int) ([]WeeklyPriority, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if week == 0 || year == 0 {
		week, year = util.CurrentWeek()
	}
	return s.repo.FindByUserWeek(uuid.MustParse(claims.UserID), week, year)
}
