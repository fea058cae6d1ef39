package reflection

type SaveReflectionDTO struct {
	Content    string `json:"content" validate:"required,max=2000"`
	WeekNumber int    `json:"week_number" validate:"min=0,max=53"`
	Year       int    `json:"year" validate:"min=0"`
}
