package domain

import "strings"

// Role selects which identity store backs an authorization check. The zero
// value is not a valid role.
type Role int

const (
	RoleAdmin Role = iota + 1
	RoleDoctor
	RolePatient
)

var roleNames = map[Role]string{
	RoleAdmin:   "admin",
	RoleDoctor:  "doctor",
	RolePatient: "patient",
}

// ParseRole matches s case-insensitively against the known role names.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, true
	case "doctor":
		return RoleDoctor, true
	case "patient":
		return RolePatient, true
	default:
		return 0, false
	}
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether r is one of the three identity roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}
