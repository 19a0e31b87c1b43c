package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/middleware"
	"github.com/classguard/classguard-api/internal/policy"
	"github.com/classguard/classguard-api/internal/repository"
	"github.com/classguard/classguard-api/internal/service"
	"github.com/classguard/classguard-api/internal/utils"
)

func identityFromContext(c *fiber.Ctx) policy.Identity {
	identity := policy.Identity{}
	if v, ok := c.Locals("user_id").(string); ok {
		identity.ID = v
	}
	if v, ok := c.Locals("user_role").(string); ok {
		identity.Role = v
	}
	return identity
}

// mutationError maps the service error taxonomy onto HTTP statuses. Policy
// denials surface as 403; a zero-row update gets one deliberately ambiguous
// 404 so row existence never leaks.
func mutationError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, repository.ErrPolicyDenied):
		return utils.SendError(c, fiber.StatusForbidden, "permission denied")
	case errors.Is(err, repository.ErrNoRowsUpdated):
		return utils.SendError(c, fiber.StatusNotFound, "record not found or not permitted")
	case errors.Is(err, service.ErrNoClassroomChanges):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		requestLogger(logger, c).Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}
