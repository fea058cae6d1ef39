package celebration

import (
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, audit activitylog.Recorder) *Container {
	repo := NewRepository(db)
	service := NewService(repo, audit)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
