package celebration

import (
	"time"

	"github.com/google/uuid"
)

type CreateCelebrationDTO struct {
	Title           string      `json:"title" validate:"required"`
	Description     string      `json:"description"`
	Category        Category    `json:"category" validate:"required,oneof=deal birthday milestone project personal"`
	Icon            string      `json:"icon"`
	CelebrationDate *time.Time  `json:"celebration_date"`
	TaggedUsers     []uuid.UUID `json:"tagged_users"`
}
