package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PipelineType string

const (
	TypeBD       PipelineType = "bd"
	TypeVentures PipelineType = "ventures"
	TypeStudio   PipelineType = "studio"
	TypeClients  PipelineType = "clients"
	TypeFinance  PipelineType = "finance"
	TypeAdmin    PipelineType = "admin"
)

func (t PipelineType) IsValid() bool {
	switch t {
	case TypeBD, TypeVentures, TypeStudio, TypeClients, TypeFinance, TypeAdmin:
		return true
	}
	return false
}

type PipelineStage struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	PipelineType      PipelineType `gorm:"type:text;not null;index" json:"pipeline_type"`
	Name              string       `gorm:"type:text;not null" json:"name"`
	Position          int          `gorm:"not null" json:"position"`
	ProbabilityWeight int          `gorm:"not null;default:0" json:"probability_weight"`
	Color             string       `gorm:"type:text" json:"color,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// VentureMetadata carries the venture-specific fields a card in the ventures
// pipeline tracks. Typed columns, not a JSON blob, so the burn report can
// filter and sum in SQL.
type VentureMetadata struct {
	Status        string          `gorm:"type:text" json:"status,omitempty"`
	BurnRate      decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"burn_rate"`
	TargetBurn    decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"target_burn"`
	DaysToRevenue int             `gorm:"default:0" json:"days_to_revenue"`
}

type PipelineCard struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	StageID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"stage_id"`
	Title       string           `gorm:"type:text;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description,omitempty"`
	Value       *decimal.Decimal `gorm:"type:numeric(20,2)" json:"value,omitempty"`
	OwnerID     *uuid.UUID       `gorm:"type:uuid" json:"owner_id,omitempty"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	Tags        datatypes.JSON   `gorm:"type:jsonb" json:"tags,omitempty"`
	Position    int              `gorm:"not null;default:0" json:"position"`
	Venture     *VentureMetadata `gorm:"embedded;embeddedPrefix:venture_" json:"venture,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Board is the kanban view for one pipeline type, cards grouped by stage id.
type Board struct {
	PipelineType PipelineType              `json:"pipeline_type"`
	Stages       []PipelineStage           `json:"stages"`
	Cards        map[string][]PipelineCard `json:"cards"`
}
