package celebration

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Category string

const (
	CategoryDeal      Category = "deal"
	CategoryBirthday  Category = "birthday"
	CategoryMilestone Category = "milestone"
	CategoryProject   Category = "project"
	CategoryPersonal  Category = "personal"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryDeal, CategoryBirthday, CategoryMilestone, CategoryProject, CategoryPersonal:
		return true
	}
	return false
}

type Celebration struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string         `gorm:"type:text;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	Category        Category       `gorm:"type:text;not null" json:"category"`
	Icon            string         `gorm:"type:text" json:"icon,omitempty"`
	CelebrationDate time.Time      `gorm:"not null;index" json:"celebration_date"`
	CreatedBy       uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	TaggedUsers     datatypes.JSON `gorm:"type:jsonb" json:"tagged_users,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
