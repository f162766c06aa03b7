package services

import (
	"testing"
	"time"

	"donation-backend/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T, now func() time.Time) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return AuthService{
		Username:     "admin",
		PasswordHash: string(hash),
		Secret:       []byte("jwt-test-secret"),
		TTL:          time.Hour,
		Now:          now,
	}
}

func TestLoginAndParseToken(t *testing.T) {
	svc := newAuth(t, nil)
	token, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	sub, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub != "admin" {
		t.Fatalf("subject got %q", sub)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuth(t, nil)
	if _, err := svc.Login("admin", "nope"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := svc.Login("root", "s3cret"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	svc := newAuth(t, func() time.Time { return issued })
	token, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.Now = time.Now
	_, err = svc.ParseToken(token)
	if !domain.IsUnauthorized(err) || err.Error() != "token expired" {
		t.Fatalf("expected expired token, got %v", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	svc := newAuth(t, nil)
	token, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Secret = []byte("other")
	if _, err := svc.ParseToken(token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthDisabledWithoutSecret(t *testing.T) {
	svc := AuthService{Username: "admin"}
	if svc.Enabled() {
		t.Fatalf("auth should be disabled without secret and hash")
	}
	if _, err := svc.Login("admin", "x"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestHashPassword(t *testing.T) {
	if _, err := HashPassword(""); !domain.IsValidation(err) {
		t.Fatalf("empty password should be rejected, got %v", err)
	}
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")) != nil {
		t.Fatalf("hash does not match password")
	}
}
