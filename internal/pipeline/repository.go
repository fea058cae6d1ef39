package pipeline

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateStages(stages []PipelineStage) error
	FindStagesByType(pipelineType PipelineType) ([]PipelineStage, error)
	GetStage(id uuid.UUID) (*PipelineStage, error)

	CreateCard(c *PipelineCard) error
	GetCard(id uuid.UUID) (*PipelineCard, error)
	UpdateCard(c *PipelineCard) error
	DeleteCard(id uuid.UUID) error
	FindCardsByStages(stageIDs []uuid.UUID) ([]PipelineCard, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateStages(stages []PipelineStage) error {
	return r.db.Create(&stages).Error
}

func (r *repository) FindStagesByType(pipelineType PipelineType) ([]PipelineStage, error) {
	var stages []PipelineStage
	if err := r.db.
		Where("pipeline_type = ?", pipelineType).
		Order("position ASC").
		Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

func (r *repository) GetStage(id uuid.UUID) (*PipelineStage, error) {
	var s PipelineStage
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) CreateCard(c *PipelineCard) error {
	return r.db.Create(c).Error
}

func (r *repository) GetCard(id uuid.UUID) (*PipelineCard, error) {
	var c PipelineCard
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpdateCard(c *PipelineCard) error {
	return r.db.Save(c).Error
}

func (r *repository) DeleteCard(id uuid.UUID) error {
	return r.db.Delete(&PipelineCard{}, "id = ?", id).Error
}

func (r *repository) FindCardsByStages(stageIDs []uuid.UUID) ([]PipelineCard, error) {
	var cards []PipelineCard
	if err := r.db.
		Where("stage_id IN ?", stageIDs).
		Order("position ASC, created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
