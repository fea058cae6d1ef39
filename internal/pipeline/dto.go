package pipeline

import (
	"time"

	"github.com/google/uuid"
)

type VentureMetadataDTO struct {
	Status        string `json:"status"`
	BurnRate      string `json:"burn_rate" validate:"omitempty,numeric"`
	TargetBurn    string `json:"target_burn" validate:"omitempty,numeric"`
	DaysToRevenue int    `json:"days_to_revenue" validate:"min=0"`
}

type CreateCardDTO struct {
	StageID     uuid.UUID           `json:"stage_id" validate:"required"`
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Value       string              `json:"value" validate:"omitempty,numeric"`
	OwnerID     *uuid.UUID          `json:"owner_id"`
	DueDate     *time.Time          `json:"due_date"`
	Tags        []string            `json:"tags"`
	Venture     *VentureMetadataDTO `json:"venture"`
}

type UpdateCardDTO struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Value       *string             `json:"value" validate:"omitempty,numeric"`
	OwnerID     *uuid.UUID          `json:"owner_id"`
	DueDate     *time.Time          `json:"due_date"`
	Tags        []string            `json:"tags"`
	Venture     *VentureMetadataDTO `json:"venture"`
}

type MoveCardDTO struct {
	StageID  uuid.UUID `json:"stage_id" validate:"required"`
	Position int       `json:"position" validate:"min=0"`
}
