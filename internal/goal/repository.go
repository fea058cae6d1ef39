package goal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(g *AnnualGoal) error
	FindByID(id uuid.UUID) (*AnnualGoal, error)
	FindByYear(year int) ([]AnnualGoal, error)
	FindByNameAndYear(goalName string, year int) (*AnnualGoal, error)
	Update(g *AnnualGoal) error
	Delete(id uuid.UUID) error

	ReplaceMonthlyTargets(goalID uuid.UUID, year int, rows []MonthlyTarget) error
	MonthlyByGoal(goalID uuid.UUID) ([]MonthlyTarget, error)
	MonthlyByID(id uuid.UUID) (*MonthlyTarget, error)
	MonthlyByGoalMonthYear(goalID uuid.UUID, month, year int) (*MonthlyTarget, error)
	UpdateMonthly(t *MonthlyTarget) error
	MonthlyForYear(year int) ([]MonthlyTargetWithGoal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(g *AnnualGoal) error {
	return r.db.Create(g).Error
}

func (r *repository) FindByID(id uuid.UUID) (*AnnualGoal, error) {
	var g AnnualGoal
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindByYear(year int) ([]AnnualGoal, error) {
	var goals []AnnualGoal
	if err := r.db.
		Where("year = ?", year).
		Order("strategic_objective ASC, goal_name ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByNameAndYear(goalName string, year int) (*AnnualGoal, error) {
	var g AnnualGoal
	if err := r.db.First(&g, "goal_name = ? AND year = ?", goalName, year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) Update(g *AnnualGoal) error {
	return r.db.Save(g).Error
}

// Delete removes the goal together with its monthly targets. The FK cascade
// covers postgres; the explicit delete keeps sqlite-backed tests honest.
func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&MonthlyTarget{}, "goal_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&AnnualGoal{}, "id = ?", id).Error
	})
}

// ReplaceMonthlyTargets swaps the full set of rows for (goal, year) in one
// transaction so regeneration never stacks duplicates.
func (r *repository) ReplaceMonthlyTargets(goalID uuid.UUID, year int, rows []MonthlyTarget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&MonthlyTarget{}, "goal_id = ? AND year = ?", goalID, year).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *repository) MonthlyByGoal(goalID uuid.UUID) ([]MonthlyTarget, error) {
	var targets []MonthlyTarget
	if err := r.db.
		Where("goal_id = ?", goalID).
		Order("month ASC").
		Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}

func (r *repository) MonthlyByID(id uuid.UUID) (*MonthlyTarget, error) {
	var t MonthlyTarget
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) MonthlyByGoalMonthYear(goalID uuid.UUID, month, year int) (*MonthlyTarget, error) {
	var t MonthlyTarget
	if err := r.db.First(&t, "goal_id = ? AND month = ? AND year = ?", goalID, month, year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) UpdateMonthly(t *MonthlyTarget) error {
	return r.db.Save(t).Error
}

func (r *repository) MonthlyForYear(year int) ([]MonthlyTargetWithGoal, error) {
	var rows []MonthlyTargetWithGoal
	if err := r.db.
		Table("monthly_targets").
		Select("monthly_targets.*, annual_goals.goal_name, annual_goals.strategic_objective, annual_goals.target_unit, annual_goals.owner_name").
		Joins("JOIN annual_goals ON annual_goals.id = monthly_targets.goal_id").
		Where("monthly_targets.year = ?", year).
		Order("annual_goals.strategic_objective ASC, annual_goals.goal_name ASC, monthly_targets.month ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
