package weekly

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(a *WeeklyActivity) error
	GetByID(id uuid.UUID) (*WeeklyActivity, error)
	Update(a *WeeklyActivity) error
	Delete(id uuid.UUID) error
	FindByWeek(week, year int) ([]WeeklyActivity, error)
	FindByUserWeek(userID uuid.UUID, week, year int) ([]WeeklyActivity, error)
	FindByPartnerWeek(partnerID uuid.UUID, week, year int) ([]WeeklyActivity, error)
	FindOpenPriorities(week, year int) ([]WeeklyActivity, error)
	CountOpenPriorities(userID uuid.UUID, week, year int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *WeeklyActivity) error {
	return r.db.Create(a).Error
}

func (r *repository) GetByID(id uuid.UUID) (*WeeklyActivity, error) {
	var a WeeklyActivity
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(a *WeeklyActivity) error {
	return r.db.Save(a).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&WeeklyActivity{}, "id = ?", id).Error
}

func (r *repository) FindByWeek(week, year int) ([]WeeklyActivity, error) {
	var activities []WeeklyActivity
	if err := r.db.
		Where("week_number = ? AND year = ?", week, year).
		Order("created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repository) FindByUserWeek(userID uuid.UUID, week, year int) ([]WeeklyActivity, error) {
	var activities []WeeklyActivity
	if err := r.db.
		Where("user_id = ? AND week_number = ? AND year = ?", userID, week, year).
		Order("created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repository) FindByPartnerWeek(partnerID uuid.UUID, week, year int) ([]WeeklyActivity, error) {
	var activities []WeeklyActivity
	if err := r.db.
		Where("accountability_partner_id = ? AND week_number = ? AND year = ?", partnerID, week, year).
		Order("created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repository) FindOpenPriorities(week, year int) ([]WeeklyActivity, error) {
	var activities []WeeklyActivity
	if err := r.db.
		Where("week_number = ? AND year = ? AND is_priority = ? AND status IN ?",
			week, year, true, []Status{StatusPending, StatusDelayed}).
		Order("created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repository) CountOpenPriorities(userID uuid.UUID, week, year int) (int64, error) {
	var count int64
	err := r.db.Model(&WeeklyActivity{}).
		Where("user_id = ? AND week_number = ? AND year = ? AND is_priority = ? AND status IN ?",
			userID, week, year, true, []Status{StatusPending, StatusDelayed}).
		Count(&count).Error
	return count, err
}
