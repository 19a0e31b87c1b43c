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

// ErrNoClassroomChanges is returned when an update carries no mutable fields.
var ErrNoClassroomChanges = fmt.Errorf("updatedData must contain at least one field")

// ClassroomService updates classroom records on behalf of teachers.
type ClassroomService interface {
	Update(ctx context.Context, identity policy.Identity, req dto.ClassroomUpdateRequest) (models.ClassroomRecord, error)
}

type classroomService struct {
	records   repository.ClassroomRepository
	audit     repository.AuditLogRepository
	events    *EventPublisher
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewClassroomService constructs the classroom mutation service.
func NewClassroomService(records repository.ClassroomRepository, audit repository.AuditLogRepository, events *EventPublisher, validate *validator.Validate, logger zerolog.Logger) ClassroomService {
	return &classroomService{
		records:   records,
		audit:     audit,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "classroom_service").Logger(),
	}
}

func (s *classroomService) Update(ctx context.Context, identity policy.Identity, req dto.ClassroomUpdateRequest) (models.ClassroomRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		observability.Mutations().WithLabelValues("classroom", "invalid").Inc()
		return models.ClassroomRecord{}, err
	}

	changes := repository.ClassroomChanges{
		Grade:     req.UpdatedData.Grade,
		ClassName: req.UpdatedData.ClassName,
	}
	if changes.Empty() {
		observability.Mutations().WithLabelValues("classroom", "invalid").Inc()
		return models.ClassroomRecord{}, ErrNoClassroomChanges
	}

	if decision := policy.Decide(identity, policy.ActionUpdate, req.StudentID); !decision.Allowed {
		observability.Mutations().WithLabelValues("classroom", "denied").Inc()
		return models.ClassroomRecord{}, fmt.Errorf("%w: %s", repository.ErrPolicyDenied, decision.Reason)
	}

	updated, err := s.records.Update(ctx, identity, req.RecordID, req.StudentID, changes)
	if err != nil {
		observability.Mutations().WithLabelValues("classroom", "failed").Inc()
		return models.ClassroomRecord{}, err
	}

	entry := models.ActivityLogEntry{
		TeacherID: identity.ID,
		StudentID: req.StudentID,
		Activity:  models.ActivityUpdateClassroom,
		OldValue:  classroomFieldsMap(req.OldData),
		NewValue:  classroomFieldsMap(req.UpdatedData),
	}
	s.recordClassroomAudit(ctx, entry)

	observability.Mutations().WithLabelValues("classroom", "success").Inc()
	return updated, nil
}

func (s *classroomService) recordClassroomAudit(ctx context.Context, entry models.ActivityLogEntry) {
	if err := s.audit.Insert(ctx, &entry); err != nil {
		observability.AuditFailures().WithLabelValues("classroom").Inc()
		s.logger.Warn().Err(err).
			Str("teacher_id", entry.TeacherID).
			Str("student_id", entry.StudentID).
			Msg("audit write failed after successful mutation")
		return
	}

	s.events.PublishMutation(entry)
}

// classroomFieldsMap keeps the audit payload to exactly the fields the caller
// sent, matching the request verbatim.
func classroomFieldsMap(fields dto.ClassroomFields) map[string]interface{} {
	payload := map[string]interface{}{}
	if fields.Grade != nil {
		payload["grade"] = *fields.Grade
	}
	if fields.ClassName != nil {
		payload["class_name"] = *fields.ClassName
	}
	return payload
}
