package ports

import (
	"context"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

// AuditRepository persists appointment events to the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AppointmentEvent) error
}
