package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// AuthorizationGate validates a session token against the identity store of
// the role the caller claims. It holds no mutable state and never caches, so
// an identity removed a moment ago fails on its next use.
type AuthorizationGate struct {
	tokens      ports.TokenParser
	oracle      ports.IdentityOracle
	strictRoles bool
	log         zerolog.Logger
}

// GateOption configures an AuthorizationGate.
type GateOption func(*AuthorizationGate)

// WithStrictRoles makes an unrecognized role string yield ReasonUnsupportedRole
// instead of ReasonNoMatchingIdentity.
func WithStrictRoles(strict bool) GateOption {
	return func(g *AuthorizationGate) { g.strictRoles = strict }
}

func NewAuthorizationGate(tokens ports.TokenParser, oracle ports.IdentityOracle, log zerolog.Logger, opts ...GateOption) *AuthorizationGate {
	g := &AuthorizationGate{tokens: tokens, oracle: oracle, log: log}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Validate checks token for role, in order: token (structure, signature,
// expiry), subject, role, identity existence. Rejections are returned as an
// Outcome; the error is reserved for store failures.
func (g *AuthorizationGate) Validate(ctx context.Context, token, role string) (domain.Outcome, error) {
	subject, rejected, err := g.subject(token)
	if err != nil {
		return domain.Outcome{}, err
	}
	if rejected != nil {
		return *rejected, nil
	}

	r, ok := domain.ParseRole(role)
	if !ok {
		return g.unknownRole(role), nil
	}
	return g.exists(ctx, r, subject)
}

// ValidateRole is Validate for callers that already hold a typed role.
func (g *AuthorizationGate) ValidateRole(ctx context.Context, token string, role domain.Role) (domain.Outcome, error) {
	subject, rejected, err := g.subject(token)
	if err != nil {
		return domain.Outcome{}, err
	}
	if rejected != nil {
		return *rejected, nil
	}
	if !role.Valid() {
		return g.unknownRole(fmt.Sprintf("Role(%d)", int(role))), nil
	}
	return g.exists(ctx, role, subject)
}

// unknownRole has no identity store to ask. It is rejected as having no
// matching identity unless strict roles are on.
func (g *AuthorizationGate) unknownRole(role string) domain.Outcome {
	g.log.Warn().Str("role", role).Bool("strict", g.strictRoles).Msg("authorization requested for unrecognized role")
	if g.strictRoles {
		return domain.Rejected(domain.ReasonUnsupportedRole)
	}
	return domain.Rejected(domain.ReasonNoMatchingIdentity)
}

// subject returns the token subject, or the rejection that stops validation.
func (g *AuthorizationGate) subject(token string) (string, *domain.Outcome, error) {
	claims, err := g.tokens.Parse(token)
	if err != nil {
		var te *domain.TokenError
		if errors.As(err, &te) {
			rejected := domain.Rejected(te.Reason)
			return "", &rejected, nil
		}
		return "", nil, fmt.Errorf("parse token: %w", err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		rejected := domain.Rejected(domain.ReasonSubjectMissing)
		return "", &rejected, nil
	}
	return claims.Subject, nil, nil
}

func (g *AuthorizationGate) exists(ctx context.Context, role domain.Role, subject string) (domain.Outcome, error) {
	found, err := g.oracle.Exists(ctx, role, subject)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("identity lookup (%s): %w", role, err)
	}
	if !found {
		return domain.Rejected(domain.ReasonNoMatchingIdentity), nil
	}
	return domain.Valid(role, subject), nil
}
