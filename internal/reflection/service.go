package reflection

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	util "github.com/growthfarm/opsboard-lambda/internal/utils"
)

const (
	maxContentChars = 2000
	maxContentLines = 10
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("only admins can write reflections")
	ErrContentTooLong = errors.New("reflection is limited to 2000 characters and 10 lines")
)

type Service interface {
	GetByWeek(ctx context.Context, week, year int) (*CeoReflection, error)
	Save(ctx context.Context, dto SaveReflectionDTO) (*CeoReflection, error)
}

type service struct {
	repo  Repository
	audit activitylog.Recorder
}

func NewService(repo Repository, audit activitylog.Recorder) Service {
	return &service{repo: repo, audit: audit}
}

func (s *service) GetByWeek(ctx context.Context, week, year int) (*CeoReflection, error) {
	if week == 0 || year == 0 {
		week, year = util.CurrentWeek()
	}
	return s.repo.GetByWeek(week, year)
}

// Save upserts the reflection for the given week. One reflection per week,
// later saves overwrite earlier content.
func (s *service) Save(ctx context.Context, dto SaveReflectionDTO) (*CeoReflection, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !claims.IsAdmin() {
		return nil, ErrForbidden
	}

	if len(dto.Content) > maxContentChars || strings.Count(dto.Content, "\n") >= maxContentLines {
		return nil, ErrContentTooLong
	}

	week, year := dto.WeekNumber, dto.Year
	if week == 0 || year == 0 {
		week, year = util.CurrentWeek()
	}

	reflection, err := s.repo.GetByWeek(week, year)
	if err != nil {
		return nil, err
	}
	if reflection == nil {
		reflection = &CeoReflection{
			ID:         uuid.New(),
			WeekNumber: week,
			Year:       year,
			CreatedBy:  uuid.MustParse(claims.UserID),
		}
	}
	reflection.Content = dto.Content

	if err := s.repo.Save(reflection); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType: "reflection_saved",
		EntityType: "ceo_reflection",
		EntityID:   &reflection.ID,
	})

	return reflection, nil
}
