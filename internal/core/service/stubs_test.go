package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubAdminRepo struct {
	byUsername map[string]*domain.Admin
	calls      int
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{byUsername: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) Create(_ context.Context, a *domain.Admin) (*domain.Admin, error) {
	if _, ok := r.byUsername[a.Username]; ok {
		return nil, domain.ErrAdminExists
	}
	clone := *a
	clone.ID = int64(len(r.byUsername) + 1)
	r.byUsername[a.Username] = &clone
	out := clone
	return &out, nil
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	a, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.calls++
	_, ok := r.byUsername[username]
	return ok, nil
}

type stubDoctorRepo struct {
	byID      map[int64]*domain.Doctor
	nextID    int64
	deleted   []domain.Appointment
	calls     int
	existsErr error
}

func newStubDoctorRepo() *stubDoctorRepo {
	return &stubDoctorRepo{byID: make(map[int64]*domain.Doctor)}
}

func (r *stubDoctorRepo) seed(d domain.Doctor) *domain.Doctor {
	r.nextID++
	d.ID = r.nextID
	r.byID[d.ID] = &d
	return &d
}

func (r *stubDoctorRepo) Create(_ context.Context, d *domain.Doctor) error {
	r.nextID++
	d.ID = r.nextID
	clone := *d
	r.byID[d.ID] = &clone
	return nil
}

func (r *stubDoctorRepo) Update(_ context.Context, d *domain.Doctor) error {
	if _, ok := r.byID[d.ID]; !ok {
		return domain.ErrDoctorNotFound
	}
	clone := *d
	r.byID[d.ID] = &clone
	return nil
}

func (r *stubDoctorRepo) Delete(_ context.Context, id int64) ([]domain.Appointment, error) {
	if _, ok := r.byID[id]; !ok {
		return nil, domain.ErrDoctorNotFound
	}
	delete(r.byID, id)
	return r.deleted, nil
}

func (r *stubDoctorRepo) FindByID(_ context.Context, id int64) (*domain.Doctor, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDoctorRepo) FindByEmail(_ context.Context, email string) (*domain.Doctor, error) {
	for _, d := range r.byID {
		if strings.EqualFold(d.Email, email) {
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrDoctorNotFound
}

func (r *stubDoctorRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.calls++
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

// List mirrors the SQL query: partial name, exact specialty, ordered by ID.
func (r *stubDoctorRepo) List(_ context.Context, f ports.DoctorFilter) ([]*domain.Doctor, error) {
	out := []*domain.Doctor{}
	for id := int64(1); id <= r.nextID; id++ {
		d, ok := r.byID[id]
		if !ok {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Specialty != "" && !strings.EqualFold(d.Specialty, f.Specialty) {
			continue
		}
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubDoctorRepo) AvailableTimes(_ context.Context, id int64) ([]string, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	return append([]string(nil), d.AvailableTimes...), nil
}

type stubPatientRepo struct {
	byID   map[int64]*domain.Patient
	nextID int64
	calls  int
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{byID: make(map[int64]*domain.Patient)}
}

func (r *stubPatientRepo) seed(p domain.Patient) *domain.Patient {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = &p
	return &p
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) error {
	r.nextID++
	p.ID = r.nextID
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id int64) (*domain.Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) FindByEmail(_ context.Context, email string) (*domain.Patient, error) {
	for _, p := range r.byID {
		if strings.EqualFold(p.Email, email) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPatientNotFound
}

func (r *stubPatientRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.calls++
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *stubPatientRepo) ExistsByEmailOrPhone(_ context.Context, email, phone string) (bool, error) {
	for _, p := range r.byID {
		if strings.EqualFold(p.Email, email) || p.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

type stubAppointmentRepo struct {
	byID      map[int64]*domain.Appointment
	nextID    int64
	createErr error
	lastList  ports.AppointmentFilter
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{byID: make(map[int64]*domain.Appointment)}
}

func (r *stubAppointmentRepo) seed(a domain.Appointment) *domain.Appointment {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = &a
	return &a
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, b := range r.byID {
		if b.DoctorID == a.DoctorID && b.Time.Equal(a.Time) {
			return domain.ErrSlotUnavailable
		}
	}
	r.nextID++
	a.ID = r.nextID
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubAppointmentRepo) FindByDoctorAndRange(_ context.Context, doctorID int64, start, end time.Time) ([]domain.Appointment, error) {
	out := []domain.Appointment{}
	for id := int64(1); id <= r.nextID; id++ {
		a, ok := r.byID[id]
		if !ok || a.DoctorID != doctorID {
			continue
		}
		if a.Time.Before(start) || !a.Time.Before(end) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

// List honours the ID, status and range fields; name filters are recorded
// in lastList for assertions.
func (r *stubAppointmentRepo) List(_ context.Context, f ports.AppointmentFilter) ([]domain.Appointment, error) {
	r.lastList = f
	out := []domain.Appointment{}
	for id := int64(1); id <= r.nextID; id++ {
		a, ok := r.byID[id]
		if !ok {
			continue
		}
		if f.DoctorID != 0 && a.DoctorID != f.DoctorID {
			continue
		}
		if f.PatientID != 0 && a.PatientID != f.PatientID {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		if !f.From.IsZero() && a.Time.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !a.Time.Before(f.To) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

type stubPrescriptionRepo struct {
	byAppointment map[int64]*domain.Prescription
}

func newStubPrescriptionRepo() *stubPrescriptionRepo {
	return &stubPrescriptionRepo{byAppointment: make(map[int64]*domain.Prescription)}
}

func (r *stubPrescriptionRepo) Create(_ context.Context, p *domain.Prescription) error {
	if _, ok := r.byAppointment[p.AppointmentID]; ok {
		return domain.ErrPrescriptionExists
	}
	p.ID = "rx-1"
	clone := *p
	r.byAppointment[p.AppointmentID] = &clone
	return nil
}

func (r *stubPrescriptionRepo) FindByAppointmentID(_ context.Context, id int64) (*domain.Prescription, error) {
	p, ok := r.byAppointment[id]
	if !ok {
		return nil, domain.ErrPrescriptionNotFound
	}
	clone := *p
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Other collaborators
// ---------------------------------------------------------------------------

type stubAuditQueue struct {
	mu     sync.Mutex
	events []domain.AppointmentEvent
}

func (q *stubAuditQueue) Enqueue(e domain.AppointmentEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

func (q *stubAuditQueue) kinds() []domain.AppointmentEventKind {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]domain.AppointmentEventKind, 0, len(q.events))
	for _, e := range q.events {
		out = append(out, e.Kind)
	}
	return out
}

type stubLocker struct {
	err      error
	acquired int
	released int
}

func (l *stubLocker) Acquire(_ context.Context, _ int64, _ time.Time) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.acquired++
	return func() { l.released++ }, nil
}

type stubIssuer struct {
	subjects []string
	err      error
}

func (i *stubIssuer) Issue(subject string) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	i.subjects = append(i.subjects, subject)
	return "token-for-" + subject, nil
}

var errStoreDown = errors.New("store down")

func mustHash(password string) string {
	h, err := hashPassword(password)
	if err != nil {
		panic(err)
	}
	return h
}
