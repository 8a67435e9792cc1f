package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

type stubAuditRepo struct {
	insertErr error
	inserted  []*domain.AppointmentEvent
}

func (r *stubAuditRepo) InsertEvent(_ context.Context, e *domain.AppointmentEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, e)
	return nil
}

func TestAuditService_RecordStampsEvent(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	err := svc.Record(context.Background(), domain.AppointmentEvent{AppointmentID: 7, Kind: domain.EventBooked})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one event inserted")
	}
	got := repo.inserted[0]
	if got.ID == "" || got.At.IsZero() {
		t.Errorf("expected ID and timestamp to be filled, got %+v", got)
	}
}

func TestAuditService_RecordKeepsProvidedFields(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())
	when := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	_ = svc.Record(context.Background(), domain.AppointmentEvent{ID: "evt-1", AppointmentID: 7, At: when})
	if got := repo.inserted[0]; got.ID != "evt-1" || !got.At.Equal(when) {
		t.Fatalf("expected provided ID and time kept, got %+v", got)
	}
}

func TestAuditService_RecordRequiresAppointment(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	err := svc.Record(context.Background(), domain.AppointmentEvent{Kind: domain.EventBooked})
	if !errors.Is(err, domain.ErrMissingReference) {
		t.Fatalf("expected ErrMissingReference, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("expected nothing inserted")
	}
}

func TestAuditService_RecordRepoFailure(t *testing.T) {
	svc := NewAuditService(&stubAuditRepo{insertErr: errStoreDown}, zerolog.Nop())

	err := svc.Record(context.Background(), domain.AppointmentEvent{AppointmentID: 7})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
