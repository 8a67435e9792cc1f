package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AuthService implements administrator creation and login.
type AuthService struct {
	admins ports.AdminRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(admins ports.AdminRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{admins: admins, tokens: tokens, log: log}
}

// Create stores a new administrator. Used by the create-admin command.
func (s *AuthService) Create(ctx context.Context, username, password string) (*domain.Admin, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	created, err := s.admins.Create(ctx, &domain.Admin{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Msg("admin created")
	return created, nil
}

// Login checks the credentials and issues a token whose subject is the username.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrAdminNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !checkPassword(admin.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.Username)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}
