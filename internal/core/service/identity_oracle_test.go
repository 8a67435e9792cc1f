package service

import (
	"context"
	"testing"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

func TestIdentityOracle_ConsultsOnlyTheRoleStore(t *testing.T) {
	admins := newStubAdminRepo()
	doctors := newStubDoctorRepo()
	patients := newStubPatientRepo()
	// Same subject registered as a patient only.
	patients.seed(domain.Patient{Email: "ana@clinic.test"})

	o := NewIdentityOracle(admins, doctors, patients)
	ctx := context.Background()

	found, err := o.Exists(ctx, domain.RoleDoctor, "ana@clinic.test")
	if err != nil || found {
		t.Fatalf("expected doctor lookup to miss, got found=%v err=%v", found, err)
	}
	found, err = o.Exists(ctx, domain.RolePatient, "ana@clinic.test")
	if err != nil || !found {
		t.Fatalf("expected patient lookup to hit, got found=%v err=%v", found, err)
	}
	if admins.calls != 0 || doctors.calls != 1 || patients.calls != 1 {
		t.Fatalf("unexpected store calls: admins=%d doctors=%d patients=%d", admins.calls, doctors.calls, patients.calls)
	}
}

func TestIdentityOracle_UnknownRoleNeverExists(t *testing.T) {
	admins := newStubAdminRepo()
	admins.byUsername["root"] = &domain.Admin{Username: "root"}
	o := NewIdentityOracle(admins, newStubDoctorRepo(), newStubPatientRepo())
	ctx := context.Background()

	for _, role := range []string{"", "nurse", "root", "administrator"} {
		found, err := o.ExistsByRoleName(ctx, role, "root")
		if err != nil || found {
			t.Errorf("role %q: expected false, got found=%v err=%v", role, found, err)
		}
	}
	if found, _ := o.Exists(ctx, domain.Role(42), "root"); found {
		t.Errorf("expected out-of-range role to have no identities")
	}
	if admins.calls != 0 {
		t.Errorf("expected no store access for unknown roles, got %d", admins.calls)
	}
}

func TestIdentityOracle_AdminByUsername(t *testing.T) {
	admins := newStubAdminRepo()
	admins.byUsername["root"] = &domain.Admin{Username: "root"}
	o := NewIdentityOracle(admins, newStubDoctorRepo(), newStubPatientRepo())

	found, err := o.ExistsByRoleName(context.Background(), "Admin", "root")
	if err != nil || !found {
		t.Fatalf("expected admin root to exist, got found=%v err=%v", found, err)
	}
}
