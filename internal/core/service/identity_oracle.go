package service

import (
	"context"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// IdentityOracle answers existence questions against exactly one of the three
// identity stores, chosen by role.
type IdentityOracle struct {
	admins   ports.AdminRepository
	doctors  ports.DoctorRepository
	patients ports.PatientRepository
}

func NewIdentityOracle(admins ports.AdminRepository, doctors ports.DoctorRepository, patients ports.PatientRepository) *IdentityOracle {
	return &IdentityOracle{admins: admins, doctors: doctors, patients: patients}
}

// Exists reports whether an identity of role with subject exists. Any role
// outside the three known ones has no identities.
func (o *IdentityOracle) Exists(ctx context.Context, role domain.Role, subject string) (bool, error) {
	switch role {
	case domain.RoleAdmin:
		return o.admins.ExistsByUsername(ctx, subject)
	case domain.RoleDoctor:
		return o.doctors.ExistsByEmail(ctx, subject)
	case domain.RolePatient:
		return o.patients.ExistsByEmail(ctx, subject)
	default:
		return false, nil
	}
}

// ExistsByRoleName is Exists for an untyped role string.
func (o *IdentityOracle) ExistsByRoleName(ctx context.Context, role, subject string) (bool, error) {
	r, ok := domain.ParseRole(role)
	if !ok {
		return false, nil
	}
	return o.Exists(ctx, r, subject)
}
