package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// PrescriptionService stores one prescription per appointment and restricts
// reads to the two parties of the appointment.
type PrescriptionService struct {
	prescriptions ports.PrescriptionRepository
	appointments  ports.AppointmentRepository
	doctors       ports.DoctorRepository
	patients      ports.PatientRepository
	log           zerolog.Logger
}

func NewPrescriptionService(
	prescriptions ports.PrescriptionRepository,
	appointments ports.AppointmentRepository,
	doctors ports.DoctorRepository,
	patients ports.PatientRepository,
	log zerolog.Logger,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptions: prescriptions,
		appointments:  appointments,
		doctors:       doctors,
		patients:      patients,
		log:           log,
	}
}

func (s *PrescriptionService) Save(ctx context.Context, in ports.SavePrescriptionInput) (*domain.Prescription, error) {
	doctor, err := s.doctors.FindByEmail(ctx, in.DoctorEmail)
	if err != nil {
		return nil, err
	}
	a, err := s.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if a.DoctorID != doctor.ID {
		return nil, domain.ErrAppointmentNotFound
	}

	p := &domain.Prescription{
		PatientName:   in.PatientName,
		AppointmentID: in.AppointmentID,
		Medication:    in.Medication,
		Dosage:        in.Dosage,
		DoctorNotes:   in.DoctorNotes,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Str("prescription_id", p.ID).Int64("appointment_id", p.AppointmentID).Msg("prescription saved")
	return p, nil
}

// GetByAppointment returns the prescription of an appointment the caller
// takes part in, either as its doctor or as its patient.
func (s *PrescriptionService) GetByAppointment(ctx context.Context, appointmentID int64, caller ports.Caller) (*domain.Prescription, error) {
	a, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case domain.RoleDoctor:
		d, err := s.doctors.FindByEmail(ctx, caller.Subject)
		if err != nil {
			return nil, err
		}
		if d.ID != a.DoctorID {
			return nil, domain.ErrAppointmentNotFound
		}
	case domain.RolePatient:
		p, err := s.patients.FindByEmail(ctx, caller.Subject)
		if err != nil {
			return nil, err
		}
		if p.ID != a.PatientID {
			return nil, domain.ErrAppointmentNotFound
		}
	default:
		return nil, domain.ErrForbidden
	}

	return s.prescriptions.FindByAppointmentID(ctx, appointmentID)
}
