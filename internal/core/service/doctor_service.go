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

// DoctorService manages doctors and computes their availability.
type DoctorService struct {
	doctors      ports.DoctorRepository
	appointments ports.AppointmentRepository
	tokens       ports.TokenIssuer
	audit        ports.AuditQueue
	loc          *time.Location
	log          zerolog.Logger
}

// NewDoctorService returns a DoctorService. loc is the clinic time zone used
// to decide which appointments fall on a date.
func NewDoctorService(
	doctors ports.DoctorRepository,
	appointments ports.AppointmentRepository,
	tokens ports.TokenIssuer,
	audit ports.AuditQueue,
	loc *time.Location,
	log zerolog.Logger,
) *DoctorService {
	if loc == nil {
		loc = time.UTC
	}
	if audit == nil {
		audit = discardAudit{}
	}
	return &DoctorService{
		doctors:      doctors,
		appointments: appointments,
		tokens:       tokens,
		audit:        audit,
		loc:          loc,
		log:          log,
	}
}

// Save registers a new doctor. Emails are unique among doctors.
func (s *DoctorService) Save(ctx context.Context, in ports.CreateDoctorInput) (*domain.Doctor, error) {
	exists, err := s.doctors.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("save doctor: %w", err)
	}
	if exists {
		return nil, domain.ErrDoctorExists
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := &domain.Doctor{
		Name:           in.Name,
		Specialty:      in.Specialty,
		Email:          in.Email,
		PasswordHash:   hash,
		Phone:          in.Phone,
		AvailableTimes: domain.NormalizeSlots(in.AvailableTimes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}

	s.log.Info().Int64("doctor_id", d.ID).Str("specialty", d.Specialty).Msg("doctor saved")
	return d, nil
}

// Update replaces a doctor's profile and slot template.
func (s *DoctorService) Update(ctx context.Context, in ports.UpdateDoctorInput) (*domain.Doctor, error) {
	current, err := s.doctors.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(current.Email, in.Email) {
		taken, err := s.doctors.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return nil, fmt.Errorf("update doctor: %w", err)
		}
		if taken {
			return nil, domain.ErrDoctorExists
		}
	}

	updated := *current
	updated.Name = in.Name
	updated.Specialty = in.Specialty
	updated.Email = in.Email
	updated.Phone = in.Phone
	updated.AvailableTimes = domain.NormalizeSlots(in.AvailableTimes)
	updated.UpdatedAt = time.Now().UTC()
	if in.Password != "" {
		if updated.PasswordHash, err = hashPassword(in.Password); err != nil {
			return nil, err
		}
	}

	if err := s.doctors.Update(ctx, &updated); err != nil {
		return nil, err
	}
	s.log.Info().Int64("doctor_id", updated.ID).Msg("doctor updated")
	return &updated, nil
}

// Delete removes a doctor and cascades to all of their appointments.
func (s *DoctorService) Delete(ctx context.Context, id int64, actor string) error {
	removed, err := s.doctors.Delete(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, a := range removed {
		s.audit.Enqueue(domain.AppointmentEvent{
			AppointmentID: a.ID,
			DoctorID:      id,
			PatientID:     a.PatientID,
			Kind:          domain.EventDoctorRemoved,
			Actor:         actor,
			Status:        a.Status,
			At:            now,
		})
	}

	s.log.Info().Int64("doctor_id", id).Int("appointments_removed", len(removed)).Msg("doctor deleted")
	return nil
}

func (s *DoctorService) List(ctx context.Context) ([]*domain.Doctor, error) {
	return s.doctors.List(ctx, ports.DoctorFilter{})
}

// Filter narrows doctors by partial name, specialty and whether they offer
// any morning ("AM") or afternoon ("PM") slot.
func (s *DoctorService) Filter(ctx context.Context, in ports.FilterDoctorsInput) ([]*domain.Doctor, error) {
	period := strings.ToUpper(strings.TrimSpace(in.Period))
	if period != "" && period != "AM" && period != "PM" {
		return nil, fmt.Errorf("%w: period must be AM or PM", domain.ErrInvalidFilter)
	}

	doctors, err := s.doctors.List(ctx, ports.DoctorFilter{
		Name:      strings.TrimSpace(in.Name),
		Specialty: strings.TrimSpace(in.Specialty),
	})
	if err != nil {
		return nil, err
	}
	if period == "" {
		return doctors, nil
	}

	out := make([]*domain.Doctor, 0, len(doctors))
	for _, d := range doctors {
		for _, label := range d.AvailableTimes {
			if domain.SlotPeriod(label) == period {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

// Login checks a doctor's credentials and issues a token for their email.
func (s *DoctorService) Login(ctx context.Context, email, password string) (string, *domain.Doctor, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	d, err := s.doctors.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrDoctorNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !checkPassword(d.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(d.Email)
	if err != nil {
		return "", nil, err
	}
	return token, d, nil
}

// AvailableSlots returns the doctor's configured slot labels not taken by an
// appointment on date. The two reads are not atomic; a booking racing this
// call is rejected at booking time.
func (s *DoctorService) AvailableSlots(ctx context.Context, doctorID int64, date time.Time) ([]string, error) {
	slots, err := s.doctors.AvailableTimes(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return []string{}, nil
	}

	start, end := domain.DayBounds(date, s.loc)
	booked, err := s.appointments.FindByDoctorAndRange(ctx, doctorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("available slots: %w", err)
	}
	return domain.AvailableSlots(slots, booked, s.loc), nil
}

type discardAudit struct{}

func (discardAudit) Enqueue(domain.AppointmentEvent) {}
