package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/celebration"
	"github.com/growthfarm/opsboard-lambda/internal/goal"
	"github.com/growthfarm/opsboard-lambda/internal/health"
	"github.com/growthfarm/opsboard-lambda/internal/middlewares"
	"github.com/growthfarm/opsboard-lambda/internal/objective"
	"github.com/growthfarm/opsboard-lambda/internal/pipeline"
	"github.com/growthfarm/opsboard-lambda/internal/priority"
	"github.com/growthfarm/opsboard-lambda/internal/reflection"
	"github.com/growthfarm/opsboard-lambda/internal/settings"
	"github.com/growthfarm/opsboard-lambda/internal/user"
	"github.com/growthfarm/opsboard-lambda/internal/weekly"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	GoalHandler        *goal.Handler
	ObjectiveHandler   *objective.Handler
	WeeklyHandler      *weekly.Handler
	PriorityHandler    *priority.Handler
	HealthHandler      *health.Handler
	ReflectionHandler  *reflection.Handler
	CelebrationHandler *celebration.Handler
	PipelineHandler    *pipeline.Handler
	ActivityLogHandler *activitylog.Handler
	SettingsHandler    *settings.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/objectives", objective.Routes(cfg.ObjectiveHandler))
		r.Mount("/weekly-activities", weekly.Routes(cfg.WeeklyHandler))
		r.Mount("/priorities", priority.Routes(cfg.PriorityHandler))
		r.Mount("/health-checkins", health.Routes(cfg.HealthHandler))
		r.Mount("/reflections", reflection.Routes(cfg.ReflectionHandler))
		r.Mount("/celebrations", celebration.Routes(cfg.CelebrationHandler))
		r.Mount("/pipelines", pipeline.Routes(cfg.PipelineHandler))
		r.Mount("/activity-log", activitylog.Routes(cfg.ActivityLogHandler))
		r.Mount("/settings", settings.Routes(cfg.SettingsHandler))
	})
	return r
}
