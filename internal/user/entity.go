package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string     `gorm:"type:text;not null" json:"name"`
	Email          string     `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Role           Role       `gorm:"type:text;not null;default:'user'" json:"role"`
	JobTitle       string     `gorm:"type:text" json:"job_title,omitempty"`
	Birthplace     string     `gorm:"type:text" json:"birthplace,omitempty"`
	LifePurpose    string     `gorm:"type:text" json:"life_purpose,omitempty"`
	PersonalGoal   string     `gorm:"type:text" json:"personal_goal,omitempty"`
	SkillMastering string     `gorm:"type:text" json:"skill_mastering,omitempty"`
	LastSignedIn   *time.Time `json:"last_signed_in,omitempty"`

	// Google refresh token at rest, AES-GCM encrypted. Never serialized.
	EncryptedGoogleRefreshToken string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
