package reflection

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByWeek(week, year int) (*CeoReflection, error)
	Save(r *CeoReflection) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByWeek(week, year int) (*CeoReflection, error) {
	var reflection CeoReflection
	if err := r.db.First(&reflection, "week_number = ? AND year = ?", week, year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reflection, nil
}

func (r *repository) Save(reflection *CeoReflection) error {
	return r.db.Save(reflection).Error
}
