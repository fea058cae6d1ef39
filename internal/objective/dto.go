package objective

import "github.com/google/uuid"

type CreateObjectiveDTO struct {
	Name         string  `json:"name" validate:"required"`
	Weight       float64 `json:"weight" validate:"min=0,max=100"`
	Icon         string  `json:"icon"`
	Color        string  `json:"color"`
	BgColor      string  `json:"bg_color"`
	DisplayOrder int     `json:"display_order"`
	Year         int     `json:"year" validate:"required,min=2000"`
}

type UpdateObjectiveDTO struct {
	Name         *string  `json:"name"`
	Weight       *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
	Icon         *string  `json:"icon"`
	Color        *string  `json:"color"`
	BgColor      *string  `json:"bg_color"`
	DisplayOrder *int     `json:"display_order"`
}

type WeightUpdate struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Weight float64   `json:"weight" validate:"min=0,max=100"`
}

type BulkWeightsDTO struct {
	Weights []WeightUpdate `json:"weights" validate:"required,dive"`
}
