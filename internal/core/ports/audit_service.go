package ports

import (
	"context"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

// AuditService records a single appointment event.
type AuditService interface {
	Record(ctx context.Context, event domain.AppointmentEvent) error
}

// AuditQueue hands events off for asynchronous recording.
type AuditQueue interface {
	Enqueue(event domain.AppointmentEvent)
}
