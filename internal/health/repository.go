package health

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *HealthCheckin) error
	FindRecentByUser(userID uuid.UUID, limit int) ([]HealthCheckin, error)
	FindLatestPerUser() (map[uuid.UUID]HealthCheckin, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *HealthCheckin) error {
	return r.db.Create(c).Error
}

func (r *repository) FindRecentByUser(userID uuid.UUID, limit int) ([]HealthCheckin, error) {
	var checkins []HealthCheckin
	if err := r.db.
		Where("user_id = ?", userID).
		Order("checkin_date DESC").
		Limit(limit).
		Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}

// FindLatestPerUser returns each user's most recent check-in. Check-in
// volume is a handful of rows per member per month, so scanning ordered rows
// beats a correlated subquery here.
func (r *repository) FindLatestPerUser() (map[uuid.UUID]HealthCheckin, error) {
	var checkins []HealthCheckin
	if err := r.db.
		Order("checkin_date DESC").
		Find(&checkins).Error; err != nil {
		return nil, err
	}

	latest := make(map[uuid.UUID]HealthCheckin)
	for _, c := range checkins {
		if _, ok := latest[c.UserID]; !ok {
			latest[c.UserID] = c
		}
	}
	return latest, nil
}
