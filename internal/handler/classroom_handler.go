package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/dto"
	"github.com/classguard/classguard-api/internal/service"
	"github.com/classguard/classguard-api/internal/utils"
)

// ClassroomHandler wires the classroom mutation route.
type ClassroomHandler struct {
	service service.ClassroomService
	logger  zerolog.Logger
}

// NewClassroomHandler constructs the handler.
func NewClassroomHandler(service service.ClassroomService, logger zerolog.Logger) *ClassroomHandler {
	return &ClassroomHandler{
		service: service,
		logger:  logger.With().Str("component", "classroom_handler").Logger(),
	}
}

// Register attaches the classroom endpoint to the router group.
func (h *ClassroomHandler) Register(router fiber.Router) {
	router.Post("/update-classroom", h.update)
}

func (h *ClassroomHandler) update(c *fiber.Ctx) error {
	identity := identityFromContext(c)
	if identity.ID == "" {
		return utils.Fail(c, fiber.StatusUnauthorized, "Unauthorized", "missing identity")
	}

	var payload dto.ClassroomUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.Update(c.Context(), identity, payload)
	if err != nil {
		return mutationError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "classroom updated", updated)
}
