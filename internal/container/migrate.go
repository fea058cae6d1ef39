package container

import (
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/celebration"
	"github.com/growthfarm/opsboard-lambda/internal/goal"
	"github.com/growthfarm/opsboard-lambda/internal/health"
	"github.com/growthfarm/opsboard-lambda/internal/objective"
	"github.com/growthfarm/opsboard-lambda/internal/pipeline"
	"github.com/growthfarm/opsboard-lambda/internal/priority"
	"github.com/growthfarm/opsboard-lambda/internal/reflection"
	"github.com/growthfarm/opsboard-lambda/internal/settings"
	"github.com/growthfarm/opsboard-lambda/internal/user"
	"github.com/growthfarm/opsboard-lambda/internal/weekly"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every entity. Meant for dev
// and staging, production schema changes go through reviewed migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&objective.StrategicObjective{},
		&goal.AnnualGoal{},
		&goal.MonthlyTarget{},
		&weekly.WeeklyActivity{},
		&priority.WeeklyPriority{},
		&health.HealthCheckin{},
		&reflection.CeoReflection{},
		&celebration.Celebration{},
		&pipeline.PipelineStage{},
		&pipeline.PipelineCard{},
		&activitylog.ActivityLog{},
		&settings.Setting{},
	)
}
