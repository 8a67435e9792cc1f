package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{"admin", RoleAdmin, true},
		{"Doctor", RoleDoctor, true},
		{" PATIENT ", RolePatient, true},
		{"nurse", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseRole(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	if Role(0).Valid() {
		t.Fatalf("zero role must not be valid")
	}
	if !RolePatient.Valid() || RolePatient.String() != "patient" {
		t.Fatalf("unexpected patient role: %v", RolePatient)
	}
}

func TestOutcome(t *testing.T) {
	ok := Valid(RoleDoctor, "house@clinic.test")
	if !ok.IsValid() || ok.Reason() != "" || ok.Subject() != "house@clinic.test" || ok.Role() != RoleDoctor {
		t.Fatalf("unexpected valid outcome: %v", ok)
	}

	rej := Rejected(ReasonExpired)
	if rej.IsValid() || rej.Reason() != ReasonExpired {
		t.Fatalf("unexpected rejected outcome: %v", rej)
	}

	var zero Outcome
	if zero.IsValid() {
		t.Fatalf("zero outcome must not be valid")
	}
}
