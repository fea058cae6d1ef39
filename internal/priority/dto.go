package priority

import (
	"time"

	"github.com/google/uuid"
)

type CreatePriorityDTO struct {
	Description  string     `json:"description" validate:"required"`
	DueDate      *time.Time `json:"due_date"`
	WeekNumber   int        `json:"week_number" validate:"min=0,max=53"`
	Year         int        `json:"year" validate:"min=0"`
	LinkedGoalID *uuid.UUID `json:"linked_goal_id"`
}

type UpdatePriorityDTO struct {
	Description  *string    `json:"description"`
	DueDate      *time.Time `json:"due_date"`
	LinkedGoalID *uuid.UUID `json:"linked_goal_id"`
	Status       *Status    `json:"status"`
}
