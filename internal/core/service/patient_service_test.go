package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

func TestPatientService_Register(t *testing.T) {
	patients := newStubPatientRepo()
	svc := NewPatientService(patients, newStubDoctorRepo(), newStubAppointmentRepo(), &stubIssuer{}, zerolog.Nop())
	ctx := context.Background()

	p, err := svc.Register(ctx, ports.RegisterPatientInput{
		Name: "Ana", Email: "ana@clinic.test", Password: "secret1", Phone: "5550000001",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if p.ID == 0 || !checkPassword(p.PasswordHash, "secret1") {
		t.Fatalf("unexpected patient: %+v", p)
	}

	dupes := []ports.RegisterPatientInput{
		{Email: "ana@clinic.test", Phone: "5550000009", Password: "x"},
		{Email: "other@clinic.test", Phone: "5550000001", Password: "x"},
	}
	for _, in := range dupes {
		if _, err := svc.Register(ctx, in); !errors.Is(err, domain.ErrPatientExists) {
			t.Errorf("Register(%s, %s): expected ErrPatientExists, got %v", in.Email, in.Phone, err)
		}
	}
}

func TestPatientService_LoginAndProfile(t *testing.T) {
	patients := newStubPatientRepo()
	patients.seed(domain.Patient{Name: "Ana", Email: "ana@clinic.test", PasswordHash: mustHash("secret1")})
	svc := NewPatientService(patients, newStubDoctorRepo(), newStubAppointmentRepo(), &stubIssuer{}, zerolog.Nop())
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "ana@clinic.test", "secret1")
	if err != nil || token != "token-for-ana@clinic.test" {
		t.Fatalf("unexpected login result: %q %v", token, err)
	}
	if _, _, err := svc.Login(ctx, "ghost@clinic.test", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	p, err := svc.Profile(ctx, "ana@clinic.test")
	if err != nil || p.Name != "Ana" {
		t.Fatalf("unexpected profile: %+v %v", p, err)
	}
}

func TestPatientService_AppointmentsAccess(t *testing.T) {
	patients := newStubPatientRepo()
	doctors := newStubDoctorRepo()
	appts := newStubAppointmentRepo()
	ana := patients.seed(domain.Patient{Email: "ana@clinic.test"})
	patients.seed(domain.Patient{Email: "bo@clinic.test"})
	gray := doctors.seed(domain.Doctor{Email: "gray@clinic.test"})
	house := doctors.seed(domain.Doctor{Email: "house@clinic.test"})
	day := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	appts.seed(domain.Appointment{DoctorID: gray.ID, PatientID: ana.ID, Time: day})
	appts.seed(domain.Appointment{DoctorID: house.ID, PatientID: ana.ID, Time: day})
	svc := NewPatientService(patients, doctors, appts, &stubIssuer{}, zerolog.Nop())
	ctx := context.Background()

	own, err := svc.Appointments(ctx, ana.ID, ports.Caller{Role: domain.RolePatient, Subject: "ana@clinic.test"})
	if err != nil || len(own) != 2 {
		t.Fatalf("expected both own appointments, got %d (%v)", len(own), err)
	}

	byDoctor, err := svc.Appointments(ctx, ana.ID, ports.Caller{Role: domain.RoleDoctor, Subject: "gray@clinic.test"})
	if err != nil || len(byDoctor) != 1 || byDoctor[0].DoctorID != gray.ID {
		t.Fatalf("expected only Dr Gray's appointment, got %+v (%v)", byDoctor, err)
	}

	_, err = svc.Appointments(ctx, ana.ID, ports.Caller{Role: domain.RolePatient, Subject: "bo@clinic.test"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another patient, got %v", err)
	}
	_, err = svc.Appointments(ctx, ana.ID, ports.Caller{Role: domain.RoleAdmin, Subject: "root"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin, got %v", err)
	}
}

func TestPatientService_FilterAppointments(t *testing.T) {
	patients := newStubPatientRepo()
	appts := newStubAppointmentRepo()
	ana := patients.seed(domain.Patient{Email: "ana@clinic.test"})
	day := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	appts.seed(domain.Appointment{DoctorID: 1, PatientID: ana.ID, Time: day, Status: domain.StatusCompleted})
	appts.seed(domain.Appointment{DoctorID: 1, PatientID: ana.ID, Time: day.Add(time.Hour)})
	appts.seed(domain.Appointment{DoctorID: 1, PatientID: 99, Time: day})
	svc := NewPatientService(patients, newStubDoctorRepo(), appts, &stubIssuer{}, zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		condition string
		want      int
	}{
		{"", 2},
		{"past", 1},
		{"FUTURE", 1},
	}
	for _, tc := range cases {
		got, err := svc.FilterAppointments(ctx, ports.FilterPatientAppointmentsInput{
			PatientEmail: "ana@clinic.test", Condition: tc.condition, DoctorName: "gray",
		})
		if err != nil {
			t.Fatalf("condition %q: %v", tc.condition, err)
		}
		if len(got) != tc.want {
			t.Errorf("condition %q: expected %d, got %d", tc.condition, tc.want, len(got))
		}
		if appts.lastList.DoctorName != "gray" {
			t.Errorf("expected doctor name filter forwarded")
		}
	}

	_, err := svc.FilterAppointments(ctx, ports.FilterPatientAppointmentsInput{PatientEmail: "ana@clinic.test", Condition: "someday"})
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}
