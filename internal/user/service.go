package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/config"
)

const sessionDuration = 30 * 24 * time.Hour

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("only admins can manage team members")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotInvited       = errors.New("email is not an invited team member")
	ErrSelfDelete       = errors.New("cannot delete your own account")
	ErrEmailTaken       = errors.New("a user with this email already exists")
	ErrInvalidRole      = errors.New("invalid role")
	ErrLoginUnavailable = errors.New("login failed")
)

type Service interface {
	GoogleLogin(ctx context.Context, code string) (sessionToken string, u *User, err error)
	Me(ctx context.Context) (*User, error)
	List(ctx context.Context) ([]User, error)
	AdminUpdate(ctx context.Context, id uuid.UUID, dto AdminUpdateUserDTO) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateProfile(ctx context.Context, dto UpdateProfileDTO) (*User, error)
	Invite(ctx context.Context, dto InviteUserDTO) (*User, error)
}

type service struct {
	repo      Repository
	exchanger GoogleExchanger
	audit     activitylog.Recorder
}

func NewService(repo Repository, exchanger GoogleExchanger, audit activitylog.Recorder) Service {
	return &service{repo: repo, exchanger: exchanger, audit: audit}
}

// GoogleLogin exchanges the OAuth code and admits only invited emails. The
// refresh token is stored encrypted so future integrations can act on the
// user's behalf.
func (s *service) GoogleLogin(ctx context.Context, code string) (string, *User, error) {
	log := config.WithContext(ctx)

	identity, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Google code exchange failed")
		return "", nil, ErrLoginUnavailable
	}

	u, err := s.repo.GetByEmail(identity.Email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		log.WithField("email", identity.Email).Warn("Login attempt by uninvited email")
		return "", nil, ErrNotInvited
	}

	now := time.Now()
	u.LastSignedIn = &now
	if identity.Name != "" {
		u.Name = identity.Name
	}
	if identity.RefreshToken != "" {
		encrypted, err := config.Encrypt(identity.RefreshToken)
		if err != nil {
			log.WithError(err).Warn("Failed to encrypt refresh token")
		} else {
			u.EncryptedGoogleRefreshToken = encrypted
		}
	}
	if err := s.repo.Update(u); err != nil {
		return "", nil, err
	}

	token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), sessionDuration)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return "", nil, err
	}

	log.WithField("user_id", u.ID).Info("User signed in")
	return token, u, nil
}

func (s *service) Me(ctx context.Context) (*User, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	u, err := s.repo.GetByID(uuid.MustParse(claims.UserID))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.FindAll()
}

func (s *service) AdminUpdate(ctx context.Context, id uuid.UUID, dto AdminUpdateUserDTO) (*User, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !claims.IsAdmin() {
		return nil, ErrForbidden
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Role != nil {
		if !dto.Role.IsValid() {
			return nil, ErrInvalidRole
		}
		u.Role = *dto.Role
	}
	if dto.JobTitle != nil {
		u.JobTitle = *dto.JobTitle
	}
	if dto.Birthplace != nil {
		u.Birthplace = *dto.Birthplace
	}
	if dto.LifePurpose != nil {
		u.LifePurpose = *dto.LifePurpose
	}
	if dto.PersonalGoal != nil {
		u.PersonalGoal = *dto.PersonalGoal
	}
	if dto.SkillMastering != nil {
		u.SkillMastering = *dto.SkillMastering
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}
	if !claims.IsAdmin() {
		return ErrForbidden
	}
	if claims.UserID == id.String() {
		return ErrSelfDelete
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	return s.repo.Delete(id)
}

func (s *service) UpdateProfile(ctx context.Context, dto UpdateProfileDTO) (*User, error) {
	u, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}

	if dto.Birthplace != nil {
		u.Birthplace = *dto.Birthplace
	}
	if dto.LifePurpose != nil {
		u.LifePurpose = *dto.LifePurpose
	}
	if dto.PersonalGoal != nil {
		u.PersonalGoal = *dto.PersonalGoal
	}
	if dto.SkillMastering != nil {
		u.SkillMastering = *dto.SkillMastering
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Invite pre-creates a team member so their email passes the login allow
// list.
func (s *service) Invite(ctx context.Context, dto InviteUserDTO) (*User, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !claims.IsAdmin() {
		return nil, ErrForbidden
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	role := dto.Role
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	u := User{
		ID:       uuid.New(),
		Name:     dto.Name,
		Email:    dto.Email,
		Role:     role,
		JobTitle: dto.JobTitle,
	}
	if err := s.repo.Create(&u); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, activitylog.Entry{
		ActionType:  "user_invited",
		EntityType:  "user",
		EntityID:    &u.ID,
		Description: fmt.Sprintf("invited %s (%s)", u.Name, u.Email),
	})

	log.WithField("email", u.Email).Info("Team member invited")
	return &u, nil
}
