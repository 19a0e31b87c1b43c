package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/pkg/ai"
)

// ErrEmptyReview is returned when the upstream model produced no usable text.
var ErrEmptyReview = fmt.Errorf("empty response from model")

// ReviewService produces an AI-generated motivational note for a progress value.
type ReviewService interface {
	Review(ctx context.Context, progress float64) (string, error)
}

type reviewService struct {
	generator ai.Generator
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewReviewService constructs the review service.
func NewReviewService(generator ai.Generator, timeout time.Duration, logger zerolog.Logger) ReviewService {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &reviewService{
		generator: generator,
		timeout:   timeout,
		logger:    logger.With().Str("component", "review_service").Logger(),
	}
}

func (s *reviewService) Review(ctx context.Context, progress float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, reviewPrompt(progress))
	if err != nil {
		s.logger.Error().Err(err).Float64("progress", progress).Msg("motivational note generation failed")
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyReview
	}

	return text, nil
}

func reviewPrompt(progress float64) string {
	value := strconv.FormatFloat(progress, 'f', -1, 64)

	builder := strings.Builder{}
	builder.WriteString("You are a positive reinforcement mentor. You will be provided with a progress-percentage of a student in his/her course. ")
	builder.WriteString("You have to give him positive vibes by saying something motivating but if the progress is less than 10 you have to tell him/her that he she is behind in the race. ")
	builder.WriteString("Also you are required not to give so generic response.\n\n")
	builder.WriteString("progress-percentage=")
	builder.WriteString(value)
	builder.WriteString("\n\nYou MUST respond with ONLY valid short and crisp string no markdown or punctuations")
	return builder.String()
}
