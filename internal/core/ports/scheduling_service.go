package ports

import (
	"context"
	"time"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

// Caller is the identity resolved by the authorization gate for a request.
type Caller struct {
	Role    domain.Role
	Subject string
}

// CreateDoctorInput carries all data needed to register a doctor.
type CreateDoctorInput struct {
	Name           string
	Specialty      string
	Email          string
	Password       string
	Phone          string
	AvailableTimes []string
}

// UpdateDoctorInput replaces a doctor's profile. An empty Password keeps the
// current credential.
type UpdateDoctorInput struct {
	ID             int64
	Name           string
	Specialty      string
	Email          string
	Password       string
	Phone          string
	AvailableTimes []string
}

// FilterDoctorsInput narrows the public doctor directory. Period is "AM",
// "PM" or empty.
type FilterDoctorsInput struct {
	Name      string
	Specialty string
	Period    string
}

// DoctorService covers doctor administration, login and availability.
type DoctorService interface {
	Save(ctx context.Context, in CreateDoctorInput) (*domain.Doctor, error)
	Update(ctx context.Context, in UpdateDoctorInput) (*domain.Doctor, error)
	Delete(ctx context.Context, id int64, actor string) error
	List(ctx context.Context) ([]*domain.Doctor, error)
	Filter(ctx context.Context, in FilterDoctorsInput) ([]*domain.Doctor, error)
	Login(ctx context.Context, email, password string) (string, *domain.Doctor, error)
	// AvailableSlots returns the doctor's free slot labels on date.
	AvailableSlots(ctx context.Context, doctorID int64, date time.Time) ([]string, error)
}

// RegisterPatientInput carries a patient sign-up.
type RegisterPatientInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// FilterPatientAppointmentsInput filters the caller's own appointments.
// Condition is "past" (completed), "future" (scheduled) or empty.
type FilterPatientAppointmentsInput struct {
	PatientEmail string
	Condition    string
	DoctorName   string
}

// PatientService covers patient sign-up, login and appointment views.
type PatientService interface {
	Register(ctx context.Context, in RegisterPatientInput) (*domain.Patient, error)
	Login(ctx context.Context, email, password string) (string, *domain.Patient, error)
	Profile(ctx context.Context, email string) (*domain.Patient, error)
	Appointments(ctx context.Context, patientID int64, caller Caller) ([]domain.Appointment, error)
	FilterAppointments(ctx context.Context, in FilterPatientAppointmentsInput) ([]domain.Appointment, error)
}

// BookAppointmentInput is a patient-initiated booking. Status is optional and,
// when supplied, must be Scheduled.
type BookAppointmentInput struct {
	DoctorID     int64
	PatientEmail string
	Time         time.Time
	Status       *int
}

// RescheduleAppointmentInput moves an appointment owned by PatientEmail.
type RescheduleAppointmentInput struct {
	ID           int64
	DoctorID     int64
	PatientEmail string
	Time         time.Time
}

// DoctorAppointmentsInput lists a doctor's appointments on one day.
type DoctorAppointmentsInput struct {
	DoctorEmail string
	Date        time.Time
	PatientName string
}

// AppointmentService covers the appointment lifecycle.
type AppointmentService interface {
	Book(ctx context.Context, in BookAppointmentInput) (*domain.Appointment, error)
	Reschedule(ctx context.Context, in RescheduleAppointmentInput) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, patientEmail string) error
	UpdateStatus(ctx context.Context, id int64, status int, doctorEmail string) (*domain.Appointment, error)
	ListForDoctor(ctx context.Context, in DoctorAppointmentsInput) ([]domain.Appointment, error)
}

// SavePrescriptionInput is written by the doctor who owns the appointment.
type SavePrescriptionInput struct {
	AppointmentID int64
	PatientName   string
	Medication    string
	Dosage        string
	DoctorNotes   string
	DoctorEmail   string
}

// PrescriptionService covers prescriptions.
type PrescriptionService interface {
	Save(ctx context.Context, in SavePrescriptionInput) (*domain.Prescription, error)
	GetByAppointment(ctx context.Context, appointmentID int64, caller Caller) (*domain.Prescription, error)
}
