package goal

import "github.com/google/uuid"

type CreateGoalDTO struct {
	StrategicObjective   string               `json:"strategic_objective" validate:"required"`
	GoalName             string               `json:"goal_name" validate:"required"`
	TargetValue          string               `json:"target_value" validate:"required"`
	TargetUnit           string               `json:"target_unit" validate:"required"`
	OwnerID              *uuid.UUID           `json:"owner_id"`
	OwnerName            string               `json:"owner_name"`
	Year                 int                  `json:"year" validate:"required"`
	DistributionStrategy DistributionStrategy `json:"distribution_strategy"`
}

type UpdateGoalDTO struct {
	StrategicObjective   *string               `json:"strategic_objective"`
	GoalName             *string               `json:"goal_name"`
	TargetValue          *string               `json:"target_value"`
	TargetUnit           *string               `json:"target_unit"`
	OwnerID              *uuid.UUID            `json:"owner_id"`
	OwnerName            *string               `json:"owner_name"`
	DistributionStrategy *DistributionStrategy `json:"distribution_strategy"`
}

// WeightInput is one month's share of a custom cascade. Weight is a
// percentage of the annual target.
type WeightInput struct {
	Month     int     `json:"month" validate:"min=1,max=12"`
	Weight    float64 `json:"weight" validate:"min=0,max=100"`
	Rationale string  `json:"rationale"`
}

type GenerateCascadeDTO struct {
	GoalID        uuid.UUID     `json:"goal_id" validate:"required"`
	CustomWeights []WeightInput `json:"custom_weights,omitempty"`
}

type UpdateActualDTO struct {
	ActualValue string `json:"actual_value" validate:"required"`
}

type UpdateActualByMonthDTO struct {
	GoalID      uuid.UUID `json:"goal_id" validate:"required"`
	Month       int       `json:"month" validate:"min=1,max=12"`
	Year        int       `json:"year" validate:"required"`
	ActualValue string    `json:"actual_value" validate:"required"`
}

type SetLockDTO struct {
	IsLocked bool `json:"is_locked"`
}

// GoalWithStatus annotates a goal with its year-to-date rollup for the
// dashboard.
type GoalWithStatus struct {
	AnnualGoal
	Status      Status  `json:"status"`
	ExpectedYTD string  `json:"expected_ytd"`
	ActualYTD   string  `json:"actual_ytd"`
	RatioPct    float64 `json:"ratio_pct"`
}
