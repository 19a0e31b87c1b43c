package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/dto"
	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/observability"
	"github.com/classguard/classguard-api/internal/policy"
	"github.com/classguard/classguard-api/internal/repository"
)

// ProgressService updates student progress on behalf of teachers.
type ProgressService interface {
	Update(ctx context.Context, identity policy.Identity, req dto.ProgressUpdateRequest) (models.ProgressRecord, error)
}

type progressService struct {
	records   repository.ProgressRepository
	audit     repository.AuditLogRepository
	events    *EventPublisher
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewProgressService constructs the progress mutation service.
func NewProgressService(records repository.ProgressRepository, audit repository.AuditLogRepository, events *EventPublisher, validate *validator.Validate, logger zerolog.Logger) ProgressService {
	return &progressService{
		records:   records,
		audit:     audit,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "progress_service").Logger(),
	}
}

// Update validates the request, applies the policy-checked mutation and then
// appends the audit entry. The audit write happens strictly after the store
// confirms the mutation and is best-effort: its failure is logged and counted
// but never turns a successful mutation into an error response.
func (s *progressService) Update(ctx context.Context, identity policy.Identity, req dto.ProgressUpdateRequest) (models.ProgressRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		observability.Mutations().WithLabelValues("progress", "invalid").Inc()
		return models.ProgressRecord{}, err
	}

	if decision := policy.Decide(identity, policy.ActionUpdate, req.StudentID); !decision.Allowed {
		observability.Mutations().WithLabelValues("progress", "denied").Inc()
		return models.ProgressRecord{}, fmt.Errorf("%w: %s", repository.ErrPolicyDenied, decision.Reason)
	}

	updated, err := s.records.UpdateByOwner(ctx, identity, req.StudentID, req.UpdatedProgress)
	if err != nil {
		observability.Mutations().WithLabelValues("progress", "failed").Inc()
		return models.ProgressRecord{}, err
	}

	entry := models.ActivityLogEntry{
		TeacherID: identity.ID,
		StudentID: req.StudentID,
		Activity:  models.ActivityUpdateProgress,
		OldValue:  map[string]interface{}{"progress_percent": req.OldProgress},
		NewValue:  map[string]interface{}{"progress_percent": req.UpdatedProgress},
	}
	s.recordAudit(ctx, entry)

	observability.Mutations().WithLabelValues("progress", "success").Inc()
	return updated, nil
}

func (s *progressService) recordAudit(ctx context.Context, entry models.ActivityLogEntry) {
	if err := s.audit.Insert(ctx, &entry); err != nil {
		observability.AuditFailures().WithLabelValues("progress").Inc()
		s.logger.Warn().Err(err).
			Str("teacher_id", entry.TeacherID).
			Str("student_id", entry.StudentID).
			Msg("audit write failed after successful mutation")
		return
	}

	s.events.PublishMutation(entry)
}
