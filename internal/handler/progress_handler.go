package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/dto"
	"github.com/classguard/classguard-api/internal/service"
	"github.com/classguard/classguard-api/internal/utils"
)

// ProgressHandler wires the progress mutation route.
type ProgressHandler struct {
	service service.ProgressService
	logger  zerolog.Logger
}

// NewProgressHandler constructs the handler.
func NewProgressHandler(service service.ProgressService, logger zerolog.Logger) *ProgressHandler {
	return &ProgressHandler{
		service: service,
		logger:  logger.With().Str("component", "progress_handler").Logger(),
	}
}

// Register attaches the progress endpoint to the router group.
func (h *ProgressHandler) Register(router fiber.Router) {
	router.Post("/update-progress", h.update)
}

func (h *ProgressHandler) update(c *fiber.Ctx) error {
	identity := identityFromContext(c)
	if identity.ID == "" {
		return utils.Fail(c, fiber.StatusUnauthorized, "Unauthorized", "missing identity")
	}

	var payload dto.ProgressUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.Update(c.Context(), identity, payload)
	if err != nil {
		return mutationError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "progress updated", updated)
}
