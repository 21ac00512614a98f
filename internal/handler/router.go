package handler

import (
	"time"

	"grammologue/internal/config"
	"grammologue/internal/middleware"
	"grammologue/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the gateway application with its middleware chain and routes
func NewApp(cfg config.ServerConfig, svc service.AssessmentService) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           60 * time.Second,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,X-Request-ID",
		ExposeHeaders: "X-Request-ID",
		MaxAge:        300,
	}))
	app.Use(recover.New())

	healthHandler := NewHealthHandler(svc)
	app.Get("/healthz", healthHandler.Liveness)
	app.Get("/readyz", healthHandler.Readiness)

	assessmentHandler := NewAssessmentHandler(svc)
	assessmentHandler.RegisterRoutes(app.Group("/api"))

	return app
}
