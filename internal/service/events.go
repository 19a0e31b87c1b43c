package service

import (
	"encoding/json"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/models"
)

const eventSubjectBase = "classguard.activity"

// EventPublisher fans mutation events out over NATS. Publishing is
// fire-and-forget: a nil connection or a publish failure never affects the
// request that produced the event.
type EventPublisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

// NewEventPublisher constructs the publisher. A nil connection disables it.
func NewEventPublisher(conn *nats.Conn, logger zerolog.Logger) *EventPublisher {
	return &EventPublisher{
		conn:   conn,
		logger: logger.With().Str("component", "event_publisher").Logger(),
	}
}

// PublishMutation emits the audit entry on the activity subject for its kind.
func (p *EventPublisher) PublishMutation(entry models.ActivityLogEntry) {
	if p == nil || p.conn == nil {
		return
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to encode mutation event")
		return
	}

	subject := eventSubjectBase + "." + strings.ToLower(entry.Activity)
	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.Warn().Err(err).Str("subject", subject).Msg("failed to publish mutation event")
	}
}
