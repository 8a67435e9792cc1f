package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenCodec issues and verifies HS256 session tokens. The secret is fixed at
// construction and never changes, so a codec is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec returns a codec signing with secret. TTLs below one second
// fall back to 24h.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("token codec: signing secret is required")
	}
	if ttl < time.Second {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for subject expiring ttl from now.
func (c *TokenCodec) Issue(subject string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns its claims. An undecodable token is
// Malformed; a decodable one is checked for signature before expiry.
func (c *TokenCodec) Parse(token string) (*ports.TokenClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, &domain.TokenError{Reason: domain.ReasonMissingToken}
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, c.key,
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, &domain.TokenError{Reason: tokenReason(err), Err: err}
	}

	out := &ports.TokenClaims{ID: claims.ID, Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (c *TokenCodec) key(t *jwt.Token) (any, error) {
	// block alg confusion
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("unsupported signing method %q", t.Method.Alg())
	}
	return c.secret, nil
}

func tokenReason(err error) domain.Reason {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ReasonInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ReasonExpired
	default:
		// ErrTokenMalformed, ErrTokenUnverifiable, missing exp and anything else
		// the parser refuses to read.
		return domain.ReasonMalformed
	}
}
