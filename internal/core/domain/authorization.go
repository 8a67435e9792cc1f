package domain

import "fmt"

// Reason identifies why a token was rejected. It is meant for logs, metrics
// and tests; clients only ever see a generic "not authorized".
type Reason string

const (
	ReasonMalformed          Reason = "malformed"
	ReasonMissingToken       Reason = "missing_token"
	ReasonInvalidSignature   Reason = "invalid_signature"
	ReasonExpired            Reason = "expired"
	ReasonSubjectMissing     Reason = "subject_missing"
	ReasonNoMatchingIdentity Reason = "no_matching_identity"
	// ReasonUnsupportedRole is only produced when the gate runs with strict roles.
	ReasonUnsupportedRole Reason = "unsupported_role"
)

// TokenError is returned by the token codec for every expected parse failure.
type TokenError struct {
	Reason Reason
	Err    error
}

func (e *TokenError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("token rejected: %s", e.Reason)
	}
	return fmt.Sprintf("token rejected: %s: %v", e.Reason, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

type outcomeKind uint8

const (
	outcomeRejected outcomeKind = iota
	outcomeValid
)

// Outcome is the result of an authorization check: either Valid, carrying the
// resolved identity, or Rejected with exactly one Reason.
type Outcome struct {
	kind    outcomeKind
	role    Role
	subject string
	reason  Reason
}

// Valid builds a successful outcome for subject acting as role.
func Valid(role Role, subject string) Outcome {
	return Outcome{kind: outcomeValid, role: role, subject: subject}
}

// Rejected builds a failed outcome.
func Rejected(reason Reason) Outcome {
	return Outcome{kind: outcomeRejected, reason: reason}
}

func (o Outcome) IsValid() bool   { return o.kind == outcomeValid }
func (o Outcome) Role() Role      { return o.role }
func (o Outcome) Subject() string { return o.subject }

// Reason is empty for a valid outcome.
func (o Outcome) Reason() Reason { return o.reason }

func (o Outcome) String() string {
	if o.IsValid() {
		return fmt.Sprintf("valid(%s:%s)", o.role, o.subject)
	}
	return fmt.Sprintf("rejected(%s)", o.reason)
}
