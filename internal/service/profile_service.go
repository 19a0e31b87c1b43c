package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/dto"
	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/repository"
)

// ProfileService manages user profiles.
type ProfileService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req dto.ProfileCreateRequest) (models.User, error)
}

type profileService struct {
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewProfileService constructs the profile service.
func NewProfileService(users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) ProfileService {
	return &profileService{
		users:     users,
		validator: validate,
		logger:    logger.With().Str("component", "profile_service").Logger(),
	}
}

func (s *profileService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *profileService) Create(ctx context.Context, req dto.ProfileCreateRequest) (models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Role:  strings.ToLower(strings.TrimSpace(req.Role)),
	}
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}
