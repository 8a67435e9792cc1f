package ports

import (
	"context"
	"time"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

// TokenClaims is what a parsed session token carries.
type TokenClaims struct {
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer mints signed session tokens for a subject whose credentials
// were already verified.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenParser verifies and decodes a token. Every expected failure is a
// *domain.TokenError.
type TokenParser interface {
	Parse(token string) (*TokenClaims, error)
}

// IdentityOracle answers whether an identity of the given role exists.
type IdentityOracle interface {
	Exists(ctx context.Context, role domain.Role, subject string) (bool, error)
}

// Authorizer is the gate every protected operation passes through. A non-nil
// error means an unexpected failure, never a rejection.
type Authorizer interface {
	Validate(ctx context.Context, token, role string) (domain.Outcome, error)
	ValidateRole(ctx context.Context, token string, role domain.Role) (domain.Outcome, error)
}

// AdminService authenticates administrators.
type AdminService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
	Create(ctx context.Context, username, password string) (*domain.Admin, error)
}
