package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// AppointmentService implements the appointment lifecycle.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	doctors      ports.DoctorRepository
	patients     ports.PatientRepository
	locker       ports.SlotLocker
	audit        ports.AuditQueue
	loc          *time.Location
	now          func() time.Time
	log          zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	doctors ports.DoctorRepository,
	patients ports.PatientRepository,
	locker ports.SlotLocker,
	audit ports.AuditQueue,
	loc *time.Location,
	log zerolog.Logger,
) *AppointmentService {
	if loc == nil {
		loc = time.UTC
	}
	if audit == nil {
		audit = discardAudit{}
	}
	return &AppointmentService{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
		locker:       locker,
		audit:        audit,
		loc:          loc,
		now:          time.Now,
		log:          log,
	}
}

// Book creates a scheduled appointment for the calling patient. The instant
// must be in the future and must fall on one of the doctor's free slots.
func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	if in.Status != nil {
		if err := domain.ValidateStatus(*in.Status); err != nil {
			return nil, err
		}
		if domain.AppointmentStatus(*in.Status) != domain.StatusScheduled {
			return nil, fmt.Errorf("%w: new appointments start as scheduled", domain.ErrStatusOutOfRange)
		}
	}
	at := slotInstant(in.Time)
	if err := domain.ValidateAppointmentTiming(at, s.now()); err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByEmail(ctx, in.PatientEmail)
	if err != nil {
		return nil, err
	}
	if _, err := s.doctors.FindByID(ctx, in.DoctorID); err != nil {
		return nil, err
	}

	release, err := s.claimSlot(ctx, in.DoctorID, at, 0)
	if err != nil {
		return nil, err
	}
	defer release()

	a := &domain.Appointment{
		DoctorID:  in.DoctorID,
		PatientID: patient.ID,
		Time:      at,
		Status:    domain.StatusScheduled,
		CreatedAt: s.now().UTC(),
	}
	if err := a.Validate(s.now()); err != nil {
		return nil, err
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}

	s.record(a, domain.EventBooked, in.PatientEmail)
	s.log.Info().
		Int64("appointment_id", a.ID).
		Int64("doctor_id", a.DoctorID).
		Time("at", a.Time).
		Msg("appointment booked")
	return a, nil
}

// Reschedule moves an appointment owned by the caller to another doctor or time.
// Completed appointments cannot be moved.
func (s *AppointmentService) Reschedule(ctx context.Context, in ports.RescheduleAppointmentInput) (*domain.Appointment, error) {
	at := slotInstant(in.Time)
	if err := domain.ValidateAppointmentTiming(at, s.now()); err != nil {
		return nil, err
	}

	current, err := s.owned(ctx, in.ID, in.PatientEmail)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.StatusScheduled {
		return nil, fmt.Errorf("reschedule: %w (appointment is %s)", domain.ErrInvalidTransition, current.Status)
	}
	if _, err := s.doctors.FindByID(ctx, in.DoctorID); err != nil {
		return nil, err
	}

	release, err := s.claimSlot(ctx, in.DoctorID, at, current.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	updated := *current
	updated.DoctorID = in.DoctorID
	updated.Time = at
	if err := updated.Validate(s.now()); err != nil {
		return nil, err
	}
	if err := s.appointments.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.record(&updated, domain.EventRescheduled, in.PatientEmail)
	s.log.Info().Int64("appointment_id", updated.ID).Time("at", updated.Time).Msg("appointment rescheduled")
	return &updated, nil
}

// Cancel deletes an appointment owned by the caller.
func (s *AppointmentService) Cancel(ctx context.Context, id int64, patientEmail string) error {
	a, err := s.owned(ctx, id, patientEmail)
	if err != nil {
		return err
	}
	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}

	s.record(a, domain.EventCancelled, patientEmail)
	s.log.Info().Int64("appointment_id", id).Msg("appointment cancelled")
	return nil
}

// UpdateStatus moves one of the calling doctor's appointments along the status
// lifecycle.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, status int, doctorEmail string) (*domain.Appointment, error) {
	if err := domain.ValidateStatus(status); err != nil {
		return nil, err
	}
	next := domain.AppointmentStatus(status)

	doctor, err := s.doctors.FindByEmail(ctx, doctorEmail)
	if err != nil {
		return nil, err
	}
	a, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.DoctorID != doctor.ID {
		return nil, domain.ErrAppointmentNotFound
	}
	if !a.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("update status: %w (from %s to %s)", domain.ErrInvalidTransition, a.Status, next)
	}

	if err := s.appointments.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	a.Status = next

	s.record(a, domain.EventStatusChanged, doctorEmail)
	s.log.Info().Int64("appointment_id", id).Str("status", next.String()).Msg("appointment status updated")
	return a, nil
}

// ListForDoctor returns the calling doctor's appointments on one clinic day,
// optionally narrowed by partial patient name.
func (s *AppointmentService) ListForDoctor(ctx context.Context, in ports.DoctorAppointmentsInput) ([]domain.Appointment, error) {
	doctor, err := s.doctors.FindByEmail(ctx, in.DoctorEmail)
	if err != nil {
		return nil, err
	}

	start, end := domain.DayBounds(in.Date, s.loc)
	return s.appointments.List(ctx, ports.AppointmentFilter{
		DoctorID:    doctor.ID,
		PatientName: in.PatientName,
		From:        start,
		To:          end,
	})
}

// owned loads an appointment and hides it from anyone but its patient.
func (s *AppointmentService) owned(ctx context.Context, id int64, patientEmail string) (*domain.Appointment, error) {
	patient, err := s.patients.FindByEmail(ctx, patientEmail)
	if err != nil {
		return nil, err
	}
	a, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.PatientID != patient.ID {
		return nil, domain.ErrAppointmentNotFound
	}
	return a, nil
}

// slotInstant truncates t to the minute, the precision slots are matched at.
func slotInstant(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// claimSlot checks that at is one of the doctor's free slots, ignoring the
// appointment being moved, and takes the booking lock for it.
func (s *AppointmentService) claimSlot(ctx context.Context, doctorID int64, at time.Time, moving int64) (func(), error) {
	slots, err := s.doctors.AvailableTimes(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	start, end := domain.DayBounds(at, s.loc)
	booked, err := s.appointments.FindByDoctorAndRange(ctx, doctorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("claim slot: %w", err)
	}
	others := booked[:0:0]
	for _, b := range booked {
		if b.ID != moving {
			others = append(others, b)
		}
	}

	free := false
	for _, label := range domain.AvailableSlots(slots, others, s.loc) {
		if domain.SlotMatches(label, at.In(s.loc)) {
			free = true
			break
		}
	}
	if !free {
		return nil, domain.ErrSlotUnavailable
	}

	if s.locker == nil {
		return func() {}, nil
	}
	release, err := s.locker.Acquire(ctx, doctorID, at)
	if errors.Is(err, ports.ErrSlotLocked) {
		return nil, domain.ErrSlotUnavailable
	}
	if err != nil {
		// The unique index still guards the slot.
		s.log.Warn().Err(err).Int64("doctor_id", doctorID).Msg("slot lock unavailable, continuing")
		return func() {}, nil
	}
	return release, nil
}

func (s *AppointmentService) record(a *domain.Appointment, kind domain.AppointmentEventKind, actor string) {
	s.audit.Enqueue(domain.AppointmentEvent{
		AppointmentID: a.ID,
		DoctorID:      a.DoctorID,
		PatientID:     a.PatientID,
		Kind:          kind,
		Actor:         actor,
		Status:        a.Status,
		At:            s.now().UTC(),
	})
}
