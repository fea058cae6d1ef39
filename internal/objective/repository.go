package objective

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(o *StrategicObjective) error
	CreateBatch(objectives []StrategicObjective) error
	GetByID(id uuid.UUID) (*StrategicObjective, error)
	Update(o *StrategicObjective) error
	Delete(id uuid.UUID) error
	FindByYear(year int) ([]StrategicObjective, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(o *StrategicObjective) error {
	return r.db.Create(o).Error
}

func (r *repository) CreateBatch(objectives []StrategicObjective) error {
	return r.db.Create(&objectives).Error
}

func (r *repository) GetByID(id uuid.UUID) (*StrategicObjective, error) {
	var o StrategicObjective
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) Update(o *StrategicObjective) error {
	return r.db.Save(o).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&StrategicObjective{}, "id = ?", id).Error
}

func (r *repository) FindByYear(year int) ([]StrategicObjective, error) {
	var objectives []StrategicObjective
	if err := r.db.
		Where("year = ?", year).
		Order("display_order ASC").
		Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}
