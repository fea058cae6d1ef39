package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AnnualGoal struct {
	ID                   uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	StrategicObjective   string               `gorm:"type:text;not null;index" json:"strategic_objective"`
	GoalName             string               `gorm:"type:text;not null" json:"goal_name"`
	TargetValue          decimal.Decimal      `gorm:"type:decimal(20,2);not null" json:"target_value"`
	TargetUnit           string               `gorm:"type:text;not null" json:"target_unit"`
	OwnerID              *uuid.UUID           `gorm:"type:uuid" json:"owner_id,omitempty"`
	OwnerName            string               `gorm:"type:text" json:"owner_name,omitempty"`
	Year                 int                  `gorm:"not null;index" json:"year"`
	DistributionStrategy DistributionStrategy `gorm:"type:text;not null;default:'linear'" json:"distribution_strategy"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`

	MonthlyTargets []MonthlyTarget `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"-"`
}

// MonthlyTarget is one month's slice of an annual goal. The unique index on
// (goal_id, month, year) keeps repeated cascade generation from stacking
// duplicate rows.
type MonthlyTarget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_goal_month_year" json:"goal_id"`
	Month       int             `gorm:"not null;uniqueIndex:idx_goal_month_year;check:month >= 1 AND month <= 12" json:"month"`
	Year        int             `gorm:"not null;uniqueIndex:idx_goal_month_year" json:"year"`
	TargetValue decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"target_value"`
	Weight      decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"weight"`
	Rationale   string          `gorm:"type:text" json:"rationale,omitempty"`
	ActualValue decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"actual_value"`
	IsLocked    bool            `gorm:"not null;default:false" json:"is_locked"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MonthlyTargetWithGoal is the read model for the monthly grid, one target
// row joined with its goal's display metadata.
type MonthlyTargetWithGoal struct {
	MonthlyTarget
	GoalName           string `json:"goal_name"`
	StrategicObjective string `json:"strategic_objective"`
	TargetUnit         string `json:"target_unit"`
	OwnerName          string `json:"owner_name,omitempty"`
}
