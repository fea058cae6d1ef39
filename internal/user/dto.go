package user

type GoogleLoginDTO struct {
	Code string `json:"code" validate:"required"`
}

type AdminUpdateUserDTO struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Role           *Role   `json:"role"`
	JobTitle       *string `json:"job_title"`
	Birthplace     *string `json:"birthplace"`
	LifePurpose    *string `json:"life_purpose"`
	PersonalGoal   *string `json:"personal_goal"`
	SkillMastering *string `json:"skill_mastering"`
}

// UpdateProfileDTO covers the self-service onboarding fields.
type UpdateProfileDTO struct {
	Birthplace     *string `json:"birthplace"`
	LifePurpose    *string `json:"life_purpose"`
	PersonalGoal   *string `json:"personal_goal"`
	SkillMastering *string `json:"skill_mastering"`
}

type InviteUserDTO struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role"`
	JobTitle string `json:"job_title"`
}
