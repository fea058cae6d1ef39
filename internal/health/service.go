package health

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
	"github.com/growthfarm/opsboard-lambda/internal/user"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidScore = errors.New("score must be between 0 and 100")
)

type Service interface {
	Submit(ctx context.Context, dto SubmitCheckinDTO) (*HealthCheckin, error)
	History(ctx context.Context, limit int) ([]HealthCheckin, error)
	TeamOverview(ctx context.Context) (*TeamOverviewResponse, error)
}

type service struct {
	repo  Repository
	users user.Repository
	audit activitylog.Recorder
}

func NewService(repo Repository, users user.Repository, audit activitylog.Recorder) Service {
	return &service{repo: repo, users: users, audit: audit}
}

// WellbeingWord maps a numeric score to the label shown on the team board.
func WellbeingWord(score int) string {
	switch {
	case score >= 80:
		return "Thriving"
	case score >= 60:
		return "Steady"
	default:
		return "Struggling"
	}
}

func (s *service) Submit(ctx context.Context, dto SubmitCheckinDTO) (*HealthCheckin, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if dto.Score < 0 || dto.Score > 100 {
		return nil, ErrInvalidScore
	}

	checkin := HealthCheckin{
		ID:          uuid.New(),
		UserID:      uuid.MustParse(claims.UserID),
		Score:       dto.Score,
		Mood:        dto.Mood,
		EnergyLevel: dto.EnergyLevel,
		Notes:       dto.Notes,
		CheckinDate: time.Now(),
	}
	if err := s.repo.Create(&checkin); err != nil {
		log.WithError(err).Error("Failed to save health check-in")
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType: "health_checkin",
		EntityType: "health_checkin",
		EntityID:   &checkin.ID,
	})

	return &checkin, nil
}

func (s *service) History(ctx context.Context, limit int) ([]HealthCheckin, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 || limit > 90 {
		limit = 30
	}
	return s.repo.FindRecentByUser(uuid.MustParse(claims.UserID), limit)
}

// TeamOverview pairs every team member with their latest check-in and
// averages the scores of those who have one.
func (s *service) TeamOverview(ctx context.Context) (*TeamOverviewResponse, error) {
	members, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}
	latest, err := s.repo.FindLatestPerUser()
	if err != nil {
		return nil, err
	}

	team := make([]TeamMemberHealth, 0, len(members))
	total, counted := 0, 0
	for _, m := range members {
		row := TeamMemberHealth{UserID: m.ID, Name: m.Name}
		if c, ok := latest[m.ID]; ok {
			row.CurrentHealthScore = c.Score
			row.CurrentEnergyLevel = c.EnergyLevel
			row.WellbeingWord = WellbeingWord(c.Score)
			total += c.Score
			counted++
		}
		team = append(team, row)
	}

	overall := 0
	if counted > 0 {
		overall = (total + counted/2) / counted
	}
	return &TeamOverviewResponse{OverallScore: overall, Team: team}, nil
}
