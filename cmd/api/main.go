package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/growthfarm/opsboard-lambda/internal/config"
	"github.com/growthfarm/opsboard-lambda/internal/container"
	"github.com/growthfarm/opsboard-lambda/internal/router"
)

func buildHandler() http.Handler {
	c := container.New()

	return router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		GoalHandler:        c.GoalContainer.Handler,
		ObjectiveHandler:   c.ObjectiveContainer.Handler,
		WeeklyHandler:      c.WeeklyContainer.Handler,
		PriorityHandler:    c.PriorityContainer.Handler,
		HealthHandler:      c.HealthContainer.Handler,
		ReflectionHandler:  c.ReflectionContainer.Handler,
		CelebrationHandler: c.CelebrationContainer.Handler,
		PipelineHandler:    c.PipelineContainer.Handler,
		ActivityLogHandler: c.ActivityLogContainer.Handler,
		SettingsHandler:    c.SettingsContainer.Handler,
	})
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.NewV2(buildHandler()).ProxyWithContext)
		return
	}

	// Local development runs a plain HTTP server.
	_ = godotenv.Load()

	handler := buildHandler()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.WithField("port", port).Info("Starting HTTP server")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		config.Logger.WithError(err).Fatal("Server stopped")
	}
}
