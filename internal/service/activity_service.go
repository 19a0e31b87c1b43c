package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/policy"
	"github.com/classguard/classguard-api/internal/repository"
)

const defaultActivityLimit = 50

// ActivityService reads back the audit trail. Teachers see everything;
// students are scoped down to entries about their own records.
type ActivityService interface {
	Recent(ctx context.Context, identity policy.Identity, filter repository.AuditLogFilter) ([]models.ActivityLogEntry, error)
}

type activityService struct {
	audit  repository.AuditLogRepository
	logger zerolog.Logger
}

// NewActivityService constructs the activity feed service.
func NewActivityService(audit repository.AuditLogRepository, logger zerolog.Logger) ActivityService {
	return &activityService{
		audit:  audit,
		logger: logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) Recent(ctx context.Context, identity policy.Identity, filter repository.AuditLogFilter) ([]models.ActivityLogEntry, error) {
	if ownerID, restricted := policy.ReadScope(identity); restricted {
		filter.StudentID = ownerID
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultActivityLimit
	}

	entries, err := s.audit.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ActivityLogEntry{}
	}
	return entries, nil
}
