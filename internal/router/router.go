package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/classguard/classguard-api/internal/config"
	"github.com/classguard/classguard-api/internal/handler"
	"github.com/classguard/classguard-api/internal/middleware"
	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ProgressHandler  *handler.ProgressHandler
	ClassroomHandler *handler.ClassroomHandler
	ReviewHandler    *handler.ReviewHandler
	DashboardHandler *handler.DashboardHandler
	ActivityHandler  *handler.ActivityHandler
	ProfileHandler   *handler.ProfileHandler
	JWTMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	// The review endpoint is unauthenticated, so it gets an IP-keyed limiter.
	if deps.ReviewHandler != nil {
		deps.ReviewHandler.Register(api.Group("", middleware.RateLimit("ai-review", 20, time.Minute)))
	}

	if deps.ProfileHandler != nil {
		deps.ProfileHandler.Register(api)
	}

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	protected := api.Group("", jwtMiddleware)

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(protected)
	}
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(protected)
	}

	// Mutations are teacher-only at the route, again in the service, and once
	// more inside the repository.
	if deps.ProgressHandler != nil {
		deps.ProgressHandler.Register(protected.Group("", middleware.RequireRole(models.RoleTeacher)))
	}
	if deps.ClassroomHandler != nil {
		deps.ClassroomHandler.Register(protected.Group("", middleware.RequireRole(models.RoleTeacher)))
	}
}
