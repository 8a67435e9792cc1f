package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

func TestAuthService_CreateHashesPassword(t *testing.T) {
	repo := newStubAdminRepo()
	svc := NewAuthService(repo, &stubIssuer{}, zerolog.Nop())

	admin, err := svc.Create(context.Background(), "root", "s3cret")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if admin.PasswordHash == "s3cret" || !checkPassword(admin.PasswordHash, "s3cret") {
		t.Fatalf("expected bcrypt hash of the password")
	}
}

func TestAuthService_CreateDuplicate(t *testing.T) {
	svc := NewAuthService(newStubAdminRepo(), &stubIssuer{}, zerolog.Nop())
	if _, err := svc.Create(context.Background(), "root", "a"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "root", "b"); !errors.Is(err, domain.ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubAdminRepo()
	repo.byUsername["root"] = &domain.Admin{ID: 1, Username: "root", PasswordHash: mustHash("s3cret")}
	issuer := &stubIssuer{}
	svc := NewAuthService(repo, issuer, zerolog.Nop())

	token, admin, err := svc.Login(context.Background(), "root", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token != "token-for-root" || admin.Username != "root" {
		t.Fatalf("unexpected login result: %q %+v", token, admin)
	}
	if len(issuer.subjects) != 1 || issuer.subjects[0] != "root" {
		t.Fatalf("expected token subject root, got %v", issuer.subjects)
	}
}

func TestAuthService_LoginFailuresLookAlike(t *testing.T) {
	repo := newStubAdminRepo()
	repo.byUsername["root"] = &domain.Admin{ID: 1, Username: "root", PasswordHash: mustHash("s3cret")}
	svc := NewAuthService(repo, &stubIssuer{}, zerolog.Nop())

	cases := []struct{ user, pass string }{
		{"root", "wrong"},
		{"nobody", "s3cret"},
		{"", "s3cret"},
		{"root", ""},
	}
	for _, tc := range cases {
		if _, _, err := svc.Login(context.Background(), tc.user, tc.pass); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tc.user, tc.pass, err)
		}
	}
}
