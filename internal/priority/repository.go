package priority

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(p *WeeklyPriority) error
	GetByID(id uuid.UUID) (*WeeklyPriority, error)
	Update(p *WeeklyPriority) error
	Delete(id uuid.UUID) error
	FindByWeek(week, year int) ([]WeeklyPriority, error)
	FindByUserWeek(userID uuid.UUID, week, year int) ([]WeeklyPriority, error)
	CountByUserWeek(userID uuid.UUID, week, year int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *WeeklyPriority) error {
	return r.db.Create(p).Error
}

func (r *repository) GetByID(id uuid.UUID) (*WeeklyPriority, error) {
	var p WeeklyPriority
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(p *WeeklyPriority) error {
	return r.db.Save(p).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&WeeklyPriority{}, "id = ?", id).Error
}

func (r *repository) FindByWeek(week, year int) ([]WeeklyPriority, error) {
	var priorities []WeeklyPriority
	if err := r.db.
		Where("week_number = ? AND year = ?", week, year).
		Order("created_at ASC").
		Find(&priorities).Error; err != nil {
		return nil, err
	}
	return priorities, nil
}

func (r *repository) FindByUserWeek(userID uuid.UUID, week, year int) ([]WeeklyPriority, error) {
	var priorities []WeeklyPriority
	if err := r.db.
		Where("user_id = ? AND week_number = ? AND year = ?", userID, week, year).
		Order("created_at ASC").
		Find(&priorities).Error; err != nil {
		return nil, err
	}
	return priorities, nil
}

func (r *repository) CountByUserWeek(userID uuid.UUID, week, year int) (int64, error) {
	var count int64
	err := r.db.Model(&WeeklyPriority{}).
		Where("user_id = ? AND week_number = ? AND year = ?", userID, week, year).
		Count(&count).Error
	return count, err
}
