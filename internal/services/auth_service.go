package services

import (
	"errors"
	"strings"
	"time"

	"donation-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const roleAdmin = "admin"

// AdminClaims is the JWT payload for the single back-office account.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService checks the admin credential from config and issues HS256 tokens.
type AuthService struct {
	Username     string
	PasswordHash string
	Secret       []byte
	TTL          time.Duration
	Now          func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Enabled is false when no secret or password hash is configured.
func (s AuthService) Enabled() bool {
	return len(s.Secret) > 0 && s.PasswordHash != ""
}

func (s AuthService) Login(username, password string) (string, error) {
	if !s.Enabled() {
		return "", domain.UnauthorizedError{Msg: "admin login is disabled"}
	}
	if strings.TrimSpace(username) != s.Username {
		return "", domain.UnauthorizedError{Msg: "invalid username or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)); err != nil {
		return "", domain.UnauthorizedError{Msg: "invalid username or password"}
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Role: roleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(s.Secret)
}

// ParseToken returns the subject of a valid admin token.
func (s AuthService) ParseToken(raw string) (string, error) {
	if !s.Enabled() {
		return "", domain.UnauthorizedError{Msg: "admin access is disabled"}
	}
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.UnauthorizedError{Msg: "token expired"}
		}
		return "", domain.UnauthorizedError{Msg: "invalid token"}
	}
	if claims.Role != roleAdmin {
		return "", domain.UnauthorizedError{Msg: "admin role required"}
	}
	return claims.Subject, nil
}

// HashPassword produces the value expected in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", domain.ValidationError{Field: "password", Msg: "is required"}
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
