package celebration

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Celebration) error
	GetByID(id uuid.UUID) (*Celebration, error)
	FindRecent(limit int) ([]Celebration, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Celebration) error {
	return r.db.Create(c).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Celebration, error) {
	var c Celebration
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindRecent(limit int) ([]Celebration, error) {
	var celebrations []Celebration
	if err := r.db.
		Order("celebration_date DESC").
		Limit(limit).
		Find(&celebrations).Error; err != nil {
		return nil, err
	}
	return celebrations, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Celebration{}, "id = ?", id).Error
}
