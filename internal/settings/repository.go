package settings

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll() ([]Setting, error)
	GetByKey(key string) (*Setting, error)
	Save(s *Setting) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll() ([]Setting, error) {
	var all []Setting
	if err := r.db.Order("setting_key ASC").Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

func (r *repository) GetByKey(key string) (*Setting, error) {
	var s Setting
	if err := r.db.First(&s, "setting_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Save(s *Setting) error {
	return r.db.Save(s).Error
}
