package ports

import (
	"context"
	"time"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

// AppointmentFilter carries the query parameters for listing appointments.
// Zero values do not filter.
type AppointmentFilter struct {
	DoctorID    int64
	PatientID   int64
	DoctorName  string // case-insensitive partial match
	PatientName string // case-insensitive partial match
	Status      *domain.AppointmentStatus
	From        time.Time // appointment_time >= From
	To          time.Time // appointment_time < To
}

// AppointmentRepository defines persistence operations for appointments.
// Results are ordered by appointment time.
type AppointmentRepository interface {
	// Create inserts a and sets its ID. A doctor can hold only one appointment
	// per instant; a clash returns domain.ErrSlotUnavailable.
	Create(ctx context.Context, a *domain.Appointment) error
	FindByID(ctx context.Context, id int64) (*domain.Appointment, error)
	// Update changes the doctor and time of an existing appointment.
	Update(ctx context.Context, a *domain.Appointment) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
	// FindByDoctorAndRange returns the doctor's appointments in [start, end).
	FindByDoctorAndRange(ctx context.Context, doctorID int64, start, end time.Time) ([]domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
}

// PrescriptionRepository stores prescriptions as documents, at most one per appointment.
type PrescriptionRepository interface {
	Create(ctx context.Context, p *domain.Prescription) error
	FindByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Prescription, error)
}
