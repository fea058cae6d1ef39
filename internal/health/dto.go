package health

import "github.com/google/uuid"

type SubmitCheckinDTO struct {
	Score       int         `json:"score" validate:"min=0,max=100"`
	Mood        Mood        `json:"mood" validate:"required,oneof=happy neutral sad"`
	EnergyLevel EnergyLevel `json:"energy_level" validate:"required,oneof=High Med Low"`
	Notes       string      `json:"notes"`
}

// TeamMemberHealth is one row of the team overview: the member plus their
// most recent check-in, zero-valued when they have not checked in yet.
type TeamMemberHealth struct {
	UserID             uuid.UUID   `json:"user_id"`
	Name               string      `json:"name"`
	CurrentHealthScore int         `json:"current_health_score"`
	CurrentEnergyLevel EnergyLevel `json:"current_energy_level,omitempty"`
	WellbeingWord      string      `json:"wellbeing_word,omitempty"`
}

type TeamOverviewResponse struct {
	OverallScore int                `json:"overall_score"`
	Team         []TeamMemberHealth `json:"team"`
}
