package weekly

import "github.com/google/uuid"

type CreateActivityDTO struct {
	Activity                string      `json:"activity" validate:"required"`
	DueDay                  DueDay      `json:"due_day" validate:"omitempty,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Dependency              string      `json:"dependency"`
	AccountabilityPartnerID *uuid.UUID  `json:"accountability_partner_id"`
	PartnerRole             PartnerRole `json:"partner_role" validate:"omitempty,oneof=partner helper"`
	MonthlyGoalID           *uuid.UUID  `json:"monthly_goal_id"`
	IsPriority              bool        `json:"is_priority"`
	WeekNumber              int         `json:"week_number" validate:"min=0,max=53"`
	Year                    int         `json:"year" validate:"min=0"`
}

type UpdateActivityDTO struct {
	Activity                *string      `json:"activity"`
	DueDay                  *DueDay      `json:"due_day"`
	Dependency              *string      `json:"dependency"`
	AccountabilityPartnerID *uuid.UUID   `json:"accountability_partner_id"`
	PartnerRole             *PartnerRole `json:"partner_role"`
	MonthlyGoalID           *uuid.UUID   `json:"monthly_goal_id"`
	IsPriority              *bool        `json:"is_priority"`
	Status                  *Status      `json:"status"`
}

// AssignedActivity is an activity surfaced to its accountability partner,
// reframed from the partner's point of view.
type AssignedActivity struct {
	WeeklyActivity
	AssignedByID uuid.UUID `json:"assigned_by_id"`
	MyRole       string    `json:"my_role"`
}
