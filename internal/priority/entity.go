package priority

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusBlocked    Status = "blocked"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusBlocked:
		return true
	}
	return false
}

type WeeklyPriority struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_priority_user_week" json:"user_id"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	WeekNumber   int        `gorm:"not null;index:idx_priority_user_week" json:"week_number"`
	Year         int        `gorm:"not null;index:idx_priority_user_week" json:"year"`
	LinkedGoalID *uuid.UUID `gorm:"type:uuid" json:"linked_goal_id,omitempty"`
	Status       Status     `gorm:"type:text;not null;default:pending" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
