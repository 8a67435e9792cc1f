package ports

import (
	"context"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

// AdminRepository persists administrators. Username is the unique subject.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// DoctorFilter narrows doctor listings. Empty fields do not filter.
type DoctorFilter struct {
	Name      string // case-insensitive partial match
	Specialty string // case-insensitive exact match
}

// DoctorRepository persists doctors and their slot templates.
type DoctorRepository interface {
	Create(ctx context.Context, d *domain.Doctor) error
	Update(ctx context.Context, d *domain.Doctor) error
	// Delete removes the doctor together with all of its appointments and
	// returns the appointments that were removed.
	Delete(ctx context.Context, id int64) ([]domain.Appointment, error)
	FindByID(ctx context.Context, id int64) (*domain.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*domain.Doctor, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter DoctorFilter) ([]*domain.Doctor, error)
	// AvailableTimes returns the doctor's slot labels in configured order.
	AvailableTimes(ctx context.Context, id int64) ([]string, error)
}

// PatientRepository persists patients. Email is the unique subject.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) error
	FindByID(ctx context.Context, id int64) (*domain.Patient, error)
	FindByEmail(ctx context.Context, email string) (*domain.Patient, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
}
