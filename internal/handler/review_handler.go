package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/service"
	"github.com/classguard/classguard-api/internal/utils"
)

// ReviewHandler wires the AI review route. The endpoint is unauthenticated
// pass-through: a progress number in, the model's text out.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler constructs the handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("component", "review_handler").Logger(),
	}
}

// Register attaches the review endpoint to the router group.
func (h *ReviewHandler) Register(router fiber.Router) {
	router.Get("/ai-review", h.review)
}

func (h *ReviewHandler) review(c *fiber.Ctx) error {
	// coerce, don't validate: any parseable number goes through as-is
	raw := strings.TrimSpace(c.Query("progress"))
	progress, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "progress must be a number")
	}

	text, err := h.service.Review(c.Context(), progress)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("ai review failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "AI Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "res": text})
}
