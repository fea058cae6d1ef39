package reflection

import (
	"time"

	"github.com/google/uuid"
)

type CeoReflection struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	WeekNumber int       `gorm:"not null;uniqueIndex:idx_reflection_week" json:"week_number"`
	Year       int       `gorm:"not null;uniqueIndex:idx_reflection_week" json:"year"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
