package container

import (
	"context"
	"log"
	"os"

	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/celebration"
	"github.com/growthfarm/opsboard-lambda/internal/config"
	"github.com/growthfarm/opsboard-lambda/internal/goal"
	"github.com/growthfarm/opsboard-lambda/internal/health"
	"github.com/growthfarm/opsboard-lambda/internal/objective"
	"github.com/growthfarm/opsboard-lambda/internal/pipeline"
	"github.com/growthfarm/opsboard-lambda/internal/priority"
	"github.com/growthfarm/opsboard-lambda/internal/reflection"
	"github.com/growthfarm/opsboard-lambda/internal/settings"
	"github.com/growthfarm/opsboard-lambda/internal/user"
	"github.com/growthfarm/opsboard-lambda/internal/weekly"
)

type Container struct {
	UserContainer        *user.Container
	GoalContainer        *goal.Container
	ObjectiveContainer   *objective.Container
	WeeklyContainer      *weekly.Container
	PriorityContainer    *priority.Container
	HealthContainer      *health.Container
	ReflectionContainer  *reflection.Container
	CelebrationContainer *celebration.Container
	PipelineContainer    *pipeline.Container
	ActivityLogContainer *activitylog.Container
	SettingsContainer    *settings.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := AutoMigrate(config.DB); err != nil {
			log.Fatalf("failed to migrate schema: %v", err)
		}
	}

	activityLogContainer := activitylog.NewContainer(config.DB)
	audit := activityLogContainer.Service

	userContainer := user.NewContainer(config.DB, audit)
	objectiveContainer := objective.NewContainer(config.DB, audit)
	goalContainer := goal.NewContainer(config.DB, audit, objectiveContainer.Service)
	weeklyContainer := weekly.NewContainer(config.DB, goalContainer.Service, audit)
	priorityContainer := priority.NewContainer(config.DB, audit)
	healthContainer := health.NewContainer(config.DB, userContainer.Repo, audit)
	reflectionContainer := reflection.NewContainer(config.DB, audit)
	celebrationContainer := celebration.NewContainer(config.DB, audit)
	pipelineContainer := pipeline.NewContainer(config.DB, audit)
	settingsContainer := settings.NewContainer(config.DB, audit)

	return &Container{
		UserContainer:        userContainer,
		GoalContainer:        goalContainer,
		ObjectiveContainer:   objectiveContainer,
		WeeklyContainer:      weeklyContainer,
		PriorityContainer:    priorityContainer,
		HealthContainer:      healthContainer,
		ReflectionContainer:  reflectionContainer,
		CelebrationContainer: celebrationContainer,
		PipelineContainer:    pipelineContainer,
		ActivityLogContainer: activityLogContainer,
		SettingsContainer:    settingsContainer,
	}
}
