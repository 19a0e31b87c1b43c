package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/repository"
	"github.com/classguard/classguard-api/internal/service"
	"github.com/classguard/classguard-api/internal/utils"
)

// ActivityHandler exposes the audit trail feed.
type ActivityHandler struct {
	service service.ActivityService
	logger  zerolog.Logger
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(service service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register attaches the activity feed endpoint to the router group.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("/activity-log", h.recent)
}

func (h *ActivityHandler) recent(c *fiber.Ctx) error {
	identity := identityFromContext(c)
	if identity.ID == "" {
		return utils.Fail(c, fiber.StatusUnauthorized, "Unauthorized", "missing identity")
	}

	filter := repository.AuditLogFilter{
		StudentID: c.Query("student_id"),
		Activity:  c.Query("activity"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "limit must be a non-negative number", nil)
		}
		filter.Limit = limit
	}

	entries, err := h.service.Recent(c.Context(), identity, filter)
	if err != nil {
		return mutationError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "activity retrieved", fiber.Map{"items": entries})
}
