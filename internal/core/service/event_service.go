package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that writes events to repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record stamps and persists a single appointment event. Events arriving
// without an ID or timestamp get one here.
func (s *auditService) Record(ctx context.Context, event domain.AppointmentEvent) error {
	if event.AppointmentID <= 0 {
		return fmt.Errorf("record event: %w", domain.ErrMissingReference)
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	s.log.Debug().
		Str("event_id", event.ID).
		Int64("appointment_id", event.AppointmentID).
		Str("kind", string(event.Kind)).
		Msg("appointment event recorded")
	return nil
}
