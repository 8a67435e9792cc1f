package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// PatientService implements patient sign-up and the patient-facing appointment views.
type PatientService struct {
	patients     ports.PatientRepository
	doctors      ports.DoctorRepository
	appointments ports.AppointmentRepository
	tokens       ports.TokenIssuer
	log          zerolog.Logger
}

func NewPatientService(
	patients ports.PatientRepository,
	doctors ports.DoctorRepository,
	appointments ports.AppointmentRepository,
	tokens ports.TokenIssuer,
	log zerolog.Logger,
) *PatientService {
	return &PatientService{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		tokens:       tokens,
		log:          log,
	}
}

// Register creates a patient. Both email and phone must be unused.
func (s *PatientService) Register(ctx context.Context, in ports.RegisterPatientInput) (*domain.Patient, error) {
	exists, err := s.patients.ExistsByEmailOrPhone(ctx, in.Email, in.Phone)
	if err != nil {
		return nil, fmt.Errorf("register patient: %w", err)
	}
	if exists {
		return nil, domain.ErrPatientExists
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	p := &domain.Patient{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Int64("patient_id", p.ID).Msg("patient registered")
	return p, nil
}

func (s *PatientService) Login(ctx context.Context, email, password string) (string, *domain.Patient, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	p, err := s.patients.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrPatientNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !checkPassword(p.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(p.Email)
	if err != nil {
		return "", nil, err
	}
	return token, p, nil
}

func (s *PatientService) Profile(ctx context.Context, email string) (*domain.Patient, error) {
	return s.patients.FindByEmail(ctx, email)
}

// Appointments lists a patient's appointments. A patient may only read their
// own; a doctor sees only the appointments the patient holds with them.
func (s *PatientService) Appointments(ctx context.Context, patientID int64, caller ports.Caller) ([]domain.Appointment, error) {
	filter := ports.AppointmentFilter{PatientID: patientID}

	switch caller.Role {
	case domain.RolePatient:
		self, err := s.patients.FindByEmail(ctx, caller.Subject)
		if err != nil {
			return nil, err
		}
		if self.ID != patientID {
			return nil, domain.ErrForbidden
		}
	case domain.RoleDoctor:
		d, err := s.doctors.FindByEmail(ctx, caller.Subject)
		if err != nil {
			return nil, err
		}
		filter.DoctorID = d.ID
	default:
		return nil, domain.ErrForbidden
	}

	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.appointments.List(ctx, filter)
}

// FilterAppointments narrows the caller's appointments by condition ("past"
// for completed, "future" for scheduled) and partial doctor name.
func (s *PatientService) FilterAppointments(ctx context.Context, in ports.FilterPatientAppointmentsInput) ([]domain.Appointment, error) {
	filter := ports.AppointmentFilter{DoctorName: strings.TrimSpace(in.DoctorName)}

	switch strings.ToLower(strings.TrimSpace(in.Condition)) {
	case "":
	case "past":
		st := domain.StatusCompleted
		filter.Status = &st
	case "future":
		st := domain.StatusScheduled
		filter.Status = &st
	default:
		return nil, fmt.Errorf("%w: condition must be past or future", domain.ErrInvalidFilter)
	}

	p, err := s.patients.FindByEmail(ctx, in.PatientEmail)
	if err != nil {
		return nil, err
	}
	filter.PatientID = p.ID

	return s.appointments.List(ctx, filter)
}
