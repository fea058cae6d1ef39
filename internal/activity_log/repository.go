package activitylog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(entry *ActivityLog) error
	FindRecent(limit int) ([]ActivityLog, error)
	FindByEntity(entityType string, entityID uuid.UUID) ([]ActivityLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(entry *ActivityLog) error {
	return r.db.Create(entry).Error
}

func (r *repository) FindRecent(limit int) ([]ActivityLog, error) {
	var entries []ActivityLog
	if err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) FindByEntity(entityType string, entityID uuid.UUID) ([]ActivityLog, error) {
	var entries []ActivityLog
	if err := r.db.
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
