package weekly

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusDone          Status = "done"
	StatusDelayed       Status = "delayed"
	StatusDeprioritised Status = "deprioritised"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDone, StatusDelayed, StatusDeprioritised:
		return true
	}
	return false
}

// Open reports whether the activity still counts against the weekly
// priority cap.
func (s Status) Open() bool {
	return s == StatusPending || s == StatusDelayed
}

type PartnerRole string

const (
	PartnerRolePartner PartnerRole = "partner"
	PartnerRoleHelper  PartnerRole = "helper"
)

type DueDay string

const (
	DueMonday    DueDay = "Mon"
	DueTuesday   DueDay = "Tue"
	DueWednesday DueDay = "Wed"
	DueThursday  DueDay = "Thu"
	DueFriday    DueDay = "Fri"
	DueSaturday  DueDay = "Sat"
	DueSunday    DueDay = "Sun"
)

type WeeklyActivity struct {
	ID                      uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                  uuid.UUID   `gorm:"type:uuid;not null;index:idx_activity_user_week" json:"user_id"`
	Activity                string      `gorm:"type:text;not null" json:"activity"`
	DueDay                  DueDay      `gorm:"type:text" json:"due_day,omitempty"`
	Dependency              string      `gorm:"type:text" json:"dependency,omitempty"`
	AccountabilityPartnerID *uuid.UUID  `gorm:"type:uuid" json:"accountability_partner_id,omitempty"`
	PartnerRole             PartnerRole `gorm:"type:text" json:"partner_role,omitempty"`
	MonthlyGoalID           *uuid.UUID  `gorm:"type:uuid" json:"monthly_goal_id,omitempty"`
	IsPriority              bool        `gorm:"not null;default:false" json:"is_priority"`
	Status                  Status      `gorm:"type:text;not null;default:pending" json:"status"`
	WeekNumber              int         `gorm:"not null;index:idx_activity_user_week" json:"week_number"`
	Year                    int         `gorm:"not null;index:idx_activity_user_week" json:"year"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}
