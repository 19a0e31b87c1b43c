package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/classguard/classguard-api/internal/config"
	"github.com/classguard/classguard-api/internal/utils"
)

var startedAt = time.Now().UTC()

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
}

// HealthCheck reports process liveness. It deliberately touches no backing
// store, so a degraded database cannot take the probe down with it.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Uptime:      time.Since(startedAt).Round(time.Second).String(),
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
