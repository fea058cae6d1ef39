package health

import (
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, users user.Repository, audit activitylog.Recorder) *Container {
	repo := NewRepository(db)
	service := NewService(repo, users, audit)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
