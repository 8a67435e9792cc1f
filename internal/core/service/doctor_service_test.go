package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

func newDoctorSvc(doctors *stubDoctorRepo, appts *stubAppointmentRepo, audit *stubAuditQueue) *DoctorService {
	return NewDoctorService(doctors, appts, &stubIssuer{}, audit, time.UTC, zerolog.Nop())
}

func TestDoctorService_Save(t *testing.T) {
	doctors := newStubDoctorRepo()
	svc := newDoctorSvc(doctors, newStubAppointmentRepo(), &stubAuditQueue{})

	d, err := svc.Save(context.Background(), ports.CreateDoctorInput{
		Name:           "Dr Gray",
		Specialty:      "Cardiology",
		Email:          "gray@clinic.test",
		Password:       "secret1",
		Phone:          "5551234567",
		AvailableTimes: []string{" 09:00-10:00", "10:00-11:00", "09:00-10:00", ""},
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if d.ID == 0 {
		t.Fatalf("expected an assigned ID")
	}
	want := []string{"09:00-10:00", "10:00-11:00"}
	if !reflect.DeepEqual(d.AvailableTimes, want) {
		t.Fatalf("expected normalized slots %v, got %v", want, d.AvailableTimes)
	}
	if !checkPassword(d.PasswordHash, "secret1") {
		t.Fatalf("expected hashed password")
	}

	_, err = svc.Save(context.Background(), ports.CreateDoctorInput{Email: "gray@clinic.test", Password: "x"})
	if !errors.Is(err, domain.ErrDoctorExists) {
		t.Fatalf("expected ErrDoctorExists, got %v", err)
	}
}

func TestDoctorService_UpdateKeepsPasswordWhenBlank(t *testing.T) {
	doctors := newStubDoctorRepo()
	seeded := doctors.seed(domain.Doctor{Name: "Dr Gray", Email: "gray@clinic.test", PasswordHash: mustHash("secret1")})
	doctors.seed(domain.Doctor{Name: "Dr House", Email: "house@clinic.test"})
	svc := newDoctorSvc(doctors, newStubAppointmentRepo(), &stubAuditQueue{})

	updated, err := svc.Update(context.Background(), ports.UpdateDoctorInput{
		ID:             seeded.ID,
		Name:           "Dr Meredith Gray",
		Specialty:      "Surgery",
		Email:          "gray@clinic.test",
		AvailableTimes: []string{"14:00-15:00"},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Dr Meredith Gray" || !checkPassword(updated.PasswordHash, "secret1") {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	_, err = svc.Update(context.Background(), ports.UpdateDoctorInput{ID: seeded.ID, Email: "house@clinic.test"})
	if !errors.Is(err, domain.ErrDoctorExists) {
		t.Fatalf("expected ErrDoctorExists when taking another doctor's email, got %v", err)
	}
	_, err = svc.Update(context.Background(), ports.UpdateDoctorInput{ID: 99, Email: "x@clinic.test"})
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestDoctorService_DeleteAuditsCascade(t *testing.T) {
	doctors := newStubDoctorRepo()
	d := doctors.seed(domain.Doctor{Email: "gray@clinic.test"})
	doctors.deleted = []domain.Appointment{{ID: 7, DoctorID: d.ID, PatientID: 3}, {ID: 8, DoctorID: d.ID, PatientID: 4}}
	audit := &stubAuditQueue{}
	svc := newDoctorSvc(doctors, newStubAppointmentRepo(), audit)

	if err := svc.Delete(context.Background(), d.ID, "root"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	kinds := audit.kinds()
	if len(kinds) != 2 || kinds[0] != domain.EventDoctorRemoved {
		t.Fatalf("expected two doctor_removed events, got %v", kinds)
	}
	if err := svc.Delete(context.Background(), d.ID, "root"); !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound on second delete, got %v", err)
	}
}

func TestDoctorService_Filter(t *testing.T) {
	doctors := newStubDoctorRepo()
	doctors.seed(domain.Doctor{Name: "Dr Gray", Specialty: "Cardiology", AvailableTimes: []string{"09:00-10:00"}})
	doctors.seed(domain.Doctor{Name: "Dr Grey", Specialty: "Cardiology", AvailableTimes: []string{"15:00-16:00"}})
	doctors.seed(domain.Doctor{Name: "Dr House", Specialty: "Diagnostics", AvailableTimes: []string{"10:00-11:00"}})
	svc := newDoctorSvc(doctors, newStubAppointmentRepo(), &stubAuditQueue{})
	ctx := context.Background()

	names := func(ds []*domain.Doctor) []string {
		out := []string{}
		for _, d := range ds {
			out = append(out, d.Name)
		}
		return out
	}

	cases := []struct {
		in   ports.FilterDoctorsInput
		want []string
	}{
		{ports.FilterDoctorsInput{}, []string{"Dr Gray", "Dr Grey", "Dr House"}},
		{ports.FilterDoctorsInput{Name: "gr"}, []string{"Dr Gray", "Dr Grey"}},
		{ports.FilterDoctorsInput{Specialty: "cardiology", Period: "pm"}, []string{"Dr Grey"}},
		{ports.FilterDoctorsInput{Period: "AM"}, []string{"Dr Gray", "Dr House"}},
	}
	for _, tc := range cases {
		got, err := svc.Filter(ctx, tc.in)
		if err != nil {
			t.Fatalf("Filter(%+v): %v", tc.in, err)
		}
		if !reflect.DeepEqual(names(got), tc.want) {
			t.Errorf("Filter(%+v): expected %v, got %v", tc.in, tc.want, names(got))
		}
	}

	if _, err := svc.Filter(ctx, ports.FilterDoctorsInput{Period: "noon"}); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestDoctorService_Login(t *testing.T) {
	doctors := newStubDoctorRepo()
	doctors.seed(domain.Doctor{Email: "gray@clinic.test", PasswordHash: mustHash("secret1")})
	svc := newDoctorSvc(doctors, newStubAppointmentRepo(), &stubAuditQueue{})

	token, _, err := svc.Login(context.Background(), "gray@clinic.test", "secret1")
	if err != nil || token != "token-for-gray@clinic.test" {
		t.Fatalf("unexpected login result: %q %v", token, err)
	}
	if _, _, err := svc.Login(context.Background(), "gray@clinic.test", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDoctorService_AvailableSlots(t *testing.T) {
	doctors := newStubDoctorRepo()
	d := doctors.seed(domain.Doctor{AvailableTimes: []string{"09:00", "10:00", "11:00"}})
	empty := doctors.seed(domain.Doctor{})
	appts := newStubAppointmentRepo()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	appts.seed(domain.Appointment{DoctorID: d.ID, PatientID: 1, Time: day.Add(9 * time.Hour)})
	appts.seed(domain.Appointment{DoctorID: d.ID, PatientID: 1, Time: day.AddDate(0, 0, 1).Add(10 * time.Hour)})
	svc := newDoctorSvc(doctors, appts, &stubAuditQueue{})

	got, err := svc.AvailableSlots(context.Background(), d.ID, day)
	if err != nil {
		t.Fatalf("AvailableSlots returned error: %v", err)
	}
	if want := []string{"10:00", "11:00"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got, err = svc.AvailableSlots(context.Background(), empty.ID, day)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v (%v)", got, err)
	}

	if _, err := svc.AvailableSlots(context.Background(), 99, day); !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}
