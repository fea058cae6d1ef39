package health

import (
	"time"

	"github.com/google/uuid"
)

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

type EnergyLevel string

const (
	EnergyHigh EnergyLevel = "High"
	EnergyMed  EnergyLevel = "Med"
	EnergyLow  EnergyLevel = "Low"
)

type HealthCheckin struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Score       int         `gorm:"not null;check:score >= 0 AND score <= 100" json:"score"`
	Mood        Mood        `gorm:"type:text;not null" json:"mood"`
	EnergyLevel EnergyLevel `gorm:"type:text;not null" json:"energy_level"`
	Notes       string      `gorm:"type:text" json:"notes,omitempty"`
	CheckinDate time.Time   `gorm:"not null;index" json:"checkin_date"`
	CreatedAt   time.Time   `json:"created_at"`
}
