package weekly

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
	"github.com/growthfarm/opsboard-lambda/internal/goal"
	util "github.com/growthfarm/opsboard-lambda/internal/utils"
	"github.com/shopspring/decimal"
)

const maxOpenPriorities = 3

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("you can only change your own activities")
	ErrActivityNotFound = errors.New("activity not found")
	ErrPrioritiesFull   = errors.New("a maximum of 3 open priorities per week is allowed")
	ErrInvalidStatus    = errors.New("invalid activity status")
)

type Service interface {
	Create(ctx context.Context, dto CreateActivityDTO) (*WeeklyActivity, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateActivityDTO) (*WeeklyActivity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Mine(ctx context.Context, week, year int) ([]WeeklyActivity, error)
	Team(ctx context.Context, week, year int) ([]WeeklyActivity, error)
	AssignedToMe(ctx context.Context, week, year int) ([]AssignedActivity, error)
	TeamPriorities(ctx context.Context, week, year int) ([]WeeklyActivity, error)
}

type service struct {
	repo  Repository
	goals goal.Service
	audit activitylog.Recorder
}

func NewService(repo Repository, goals goal.Service, audit activitylog.Recorder) Service {
	return &service{repo: repo, goals: goals, audit: audit}
}

func resolveWeek(week, year int) (int, int) {
	if week == 0 || year == 0 {
		return util.CurrentWeek()
	}
	return week, year
}

func (s *service) Create(ctx context.Context, dto CreateActivityDTO) (*WeeklyActivity, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID := uuid.MustParse(claims.UserID)
	week, year := resolveWeek(dto.WeekNumber, dto.Year)

	if dto.IsPriority {
		open, err := s.repo.CountOpenPriorities(userID, week, year)
		if err != nil {
			return nil, err
		}
		if open >= maxOpenPriorities {
			return nil, ErrPrioritiesFull
		}
	}

	a := WeeklyActivity{
		ID:                      uuid.New(),
		UserID:                  userID,
		Activity:                dto.Activity,
		DueDay:                  dto.DueDay,
		Dependency:              dto.Dependency,
		AccountabilityPartnerID: dto.AccountabilityPartnerID,
		PartnerRole:             dto.PartnerRole,
		MonthlyGoalID:           dto.MonthlyGoalID,
		IsPriority:              dto.IsPriority,
		Status:                  StatusPending,
		WeekNumber:              week,
		Year:                    year,
	}
	if err := s.repo.Create(&a); err != nil {
		log.WithError(err).Error("Failed to create weekly activity")
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "activity_created",
		EntityType:  "weekly_activity",
		EntityID:    &a.ID,
		Description: a.Activity,
	})

	return &a, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateActivityDTO) (*WeeklyActivity, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrActivityNotFound
	}
	if a.UserID.String() != claims.UserID && !claims.IsAdmin() {
		return nil, ErrForbidden
	}

	if dto.Activity != nil {
		a.Activity = *dto.Activity
	}
	if dto.DueDay != nil {
		a.DueDay = *dto.DueDay
	}
	if dto.Dependency != nil {
		a.Dependency = *dto.Dependency
	}
	if dto.AccountabilityPartnerID != nil {
		a.AccountabilityPartnerID = dto.AccountabilityPartnerID
	}
	if dto.PartnerRole != nil {
		a.PartnerRole = *dto.PartnerRole
	}
	if dto.MonthlyGoalID != nil {
		a.MonthlyGoalID = dto.MonthlyGoalID
	}

	becamePriority := false
	if dto.IsPriority != nil {
		becamePriority = *dto.IsPriority && !a.IsPriority
		a.IsPriority = *dto.IsPriority
	}

	completed := false
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		completed = *dto.Status == StatusDone && a.Status != StatusDone
		a.Status = *dto.Status
	}

	if becamePriority && a.Status.Open() {
		open, err := s.repo.CountOpenPriorities(a.UserID, a.WeekNumber, a.Year)
		if err != nil {
			return nil, err
		}
		if open >= maxOpenPriorities {
			return nil, ErrPrioritiesFull
		}
	}

	if err := s.repo.Update(a); err != nil {
		return nil, err
	}

	if completed {
		s.onCompleted(ctx, a)
	}

	return a, nil
}

// onCompleted feeds a finished activity back into the goal engine. The
// increment is lock-aware on the goal side, so a finalized month silently
// absorbs nothing.
func (s *service) onCompleted(ctx context.Context, a *WeeklyActivity) {
	log := config.WithContext(ctx)

	if a.MonthlyGoalID != nil {
		now := time.Now()
		if _, err := s.goals.IncrementActual(ctx, *a.MonthlyGoalID, int(now.Month()), now.Year(), decimal.NewFromInt(1)); err != nil {
			log.WithError(err).WithField("goal_id", a.MonthlyGoalID).Warn("Failed to increment goal actual")
		}
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "activity_completed",
		EntityType:  "weekly_activity",
		EntityID:    &a.ID,
		Description: fmt.Sprintf("completed: %s", a.Activity),
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrActivityNotFound
	}
	if a.UserID.String() != claims.UserID && !claims.IsAdmin() {
		return ErrForbidden
	}

	return s.repo.Delete(id)
}

func (s *service) Mine(ctx context.Context, week, year int) ([]WeeklyActivity, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	week, year = resolveWeek(week, year)
	return s.repo.FindByUserWeek(uuid.MustParse(claims.UserID), week, year)
}

func (s *service) Team(ctx context.Context, week, year int) ([]WeeklyActivity, error) {
	week, year = resolveWeek(week, year)
	return s.repo.FindByWeek(week, year)
}

// AssignedToMe lists activities where the caller is the accountability
// partner, reframed so the board shows who assigned them and in what role.
func (s *service) AssignedToMe(ctx context.Context, week, year int) ([]AssignedActivity, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	week, year = resolveWeek(week, year)

	activities, err := s.repo.FindByPartnerWeek(uuid.MustParse(claims.UserID), week, year)
	if err != nil {
		return nil, err
	}

	assigned := make([]AssignedActivity, 0, len(activities))
	for _, a := range activities {
		role := string(a.PartnerRole)
		if role == "" {
			role = string(PartnerRoleHelper)
		}
		assigned = append(assigned, AssignedActivity{
			WeeklyActivity: a,
			AssignedByID:   a.UserID,
			MyRole:         role,
		})
	}
	return assigned, nil
}

func (s *service) TeamPriorities(ctx context.Context, week, year int) ([]WeeklyActivity, error) {
	week, year = resolveWeek(week, year)
	return s.repo.FindOpenPriorities(week, year)
}
