package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/service"
	"github.com/classguard/classguard-api/internal/utils"
)

// DashboardHandler wires the role-filtered listing routes.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches the listing endpoints to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/progress", h.progress)
	router.Get("/classrooms", h.classrooms)
}

func (h *DashboardHandler) progress(c *fiber.Ctx) error {
	identity := identityFromContext(c)
	if identity.ID == "" {
		return utils.Fail(c, fiber.StatusUnauthorized, "Unauthorized", "missing identity")
	}

	response, err := h.service.Progress(c.Context(), identity)
	if err != nil {
		return mutationError(c, h.logger, err)
	}

	c.Set("X-Cache-Hit", boolHeader(response.CacheHit))
	return utils.SendSuccess(c, "progress retrieved", response)
}

func (h *DashboardHandler) classrooms(c *fiber.Ctx) error {
	identity := identityFromContext(c)
	if identity.ID == "" {
		return utils.Fail(c, fiber.StatusUnauthorized, "Unauthorized", "missing identity")
	}

	response, err := h.service.Classrooms(c.Context(), identity)
	if err != nil {
		return mutationError(c, h.logger, err)
	}

	c.Set("X-Cache-Hit", boolHeader(response.CacheHit))
	return utils.SendSuccess(c, "classrooms retrieved", response)
}

func boolHeader(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
