package objective

import (
	"time"

	"github.com/google/uuid"
)

type StrategicObjective struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:text;not null;uniqueIndex:idx_objective_name_year" json:"name"`
	Weight       float64   `gorm:"not null;default:0" json:"weight"`
	Icon         string    `gorm:"type:text" json:"icon,omitempty"`
	Color        string    `gorm:"type:text" json:"color,omitempty"`
	BgColor      string    `gorm:"type:text" json:"bg_color,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Year         int       `gorm:"not null;uniqueIndex:idx_objective_name_year" json:"year"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
