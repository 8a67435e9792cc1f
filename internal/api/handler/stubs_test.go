package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// Keys written by the Authorize middleware.
const (
	testKeyRole    = "auth.role"
	testKeySubject = "auth.subject"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newContext(e *echo.Echo, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withCaller(c echo.Context, role domain.Role, subject string) {
	c.Set(testKeyRole, role)
	c.Set(testKeySubject, subject)
}

func wantHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError with %d, got %v", code, err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, he.Code, he.Message)
	}
	return he
}

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubAdminService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.Admin, error)
}

func (s *stubAdminService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAdminService) Create(context.Context, string, string) (*domain.Admin, error) {
	return nil, errors.New("not used")
}

type stubDoctorService struct {
	saveFn   func(ctx context.Context, in ports.CreateDoctorInput) (*domain.Doctor, error)
	updateFn func(ctx context.Context, in ports.UpdateDoctorInput) (*domain.Doctor, error)
	deleteFn func(ctx context.Context, id int64, actor string) error
	filterFn func(ctx context.Context, in ports.FilterDoctorsInput) ([]*domain.Doctor, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.Doctor, error)
	slotsFn  func(ctx context.Context, doctorID int64, date time.Time) ([]string, error)
}

func (s *stubDoctorService) Save(ctx context.Context, in ports.CreateDoctorInput) (*domain.Doctor, error) {
	return s.saveFn(ctx, in)
}

func (s *stubDoctorService) Update(ctx context.Context, in ports.UpdateDoctorInput) (*domain.Doctor, error) {
	return s.updateFn(ctx, in)
}

func (s *stubDoctorService) Delete(ctx context.Context, id int64, actor string) error {
	return s.deleteFn(ctx, id, actor)
}

func (s *stubDoctorService) List(context.Context) ([]*domain.Doctor, error) {
	return []*domain.Doctor{}, nil
}

func (s *stubDoctorService) Filter(ctx context.Context, in ports.FilterDoctorsInput) ([]*domain.Doctor, error) {
	return s.filterFn(ctx, in)
}

func (s *stubDoctorService) Login(ctx context.Context, email, password string) (string, *domain.Doctor, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubDoctorService) AvailableSlots(ctx context.Context, doctorID int64, date time.Time) ([]string, error) {
	return s.slotsFn(ctx, doctorID, date)
}

type stubPatientService struct {
	registerFn     func(ctx context.Context, in ports.RegisterPatientInput) (*domain.Patient, error)
	profileFn      func(ctx context.Context, email string) (*domain.Patient, error)
	appointmentsFn func(ctx context.Context, patientID int64, caller ports.Caller) ([]domain.Appointment, error)
	filterFn       func(ctx context.Context, in ports.FilterPatientAppointmentsInput) ([]domain.Appointment, error)
}

func (s *stubPatientService) Register(ctx context.Context, in ports.RegisterPatientInput) (*domain.Patient, error) {
	return s.registerFn(ctx, in)
}

func (s *stubPatientService) Login(context.Context, string, string) (string, *domain.Patient, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubPatientService) Profile(ctx context.Context, email string) (*domain.Patient, error) {
	return s.profileFn(ctx, email)
}

func (s *stubPatientService) Appointments(ctx context.Context, patientID int64, caller ports.Caller) ([]domain.Appointment, error) {
	return s.appointmentsFn(ctx, patientID, caller)
}

func (s *stubPatientService) FilterAppointments(ctx context.Context, in ports.FilterPatientAppointmentsInput) ([]domain.Appointment, error) {
	return s.filterFn(ctx, in)
}

type stubAppointmentService struct {
	bookFn       func(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error)
	rescheduleFn func(ctx context.Context, in ports.RescheduleAppointmentInput) (*domain.Appointment, error)
	cancelFn     func(ctx context.Context, id int64, patientEmail string) error
	statusFn     func(ctx context.Context, id int64, status int, doctorEmail string) (*domain.Appointment, error)
	listFn       func(ctx context.Context, in ports.DoctorAppointmentsInput) ([]domain.Appointment, error)
}

func (s *stubAppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	return s.bookFn(ctx, in)
}

func (s *stubAppointmentService) Reschedule(ctx context.Context, in ports.RescheduleAppointmentInput) (*domain.Appointment, error) {
	return s.rescheduleFn(ctx, in)
}

func (s *stubAppointmentService) Cancel(ctx context.Context, id int64, patientEmail string) error {
	return s.cancelFn(ctx, id, patientEmail)
}

func (s *stubAppointmentService) UpdateStatus(ctx context.Context, id int64, status int, doctorEmail string) (*domain.Appointment, error) {
	return s.statusFn(ctx, id, status, doctorEmail)
}

func (s *stubAppointmentService) ListForDoctor(ctx context.Context, in ports.DoctorAppointmentsInput) ([]domain.Appointment, error) {
	return s.listFn(ctx, in)
}

type stubPrescriptionService struct {
	saveFn func(ctx context.Context, in ports.SavePrescriptionInput) (*domain.Prescription, error)
	getFn  func(ctx context.Context, appointmentID int64, caller ports.Caller) (*domain.Prescription, error)
}

func (s *stubPrescriptionService) Save(ctx context.Context, in ports.SavePrescriptionInput) (*domain.Prescription, error) {
	return s.saveFn(ctx, in)
}

func (s *stubPrescriptionService) GetByAppointment(ctx context.Context, appointmentID int64, caller ports.Caller) (*domain.Prescription, error) {
	return s.getFn(ctx, appointmentID, caller)
}
