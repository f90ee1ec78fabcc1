package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", 20*time.Minute)

	user := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}
	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	principal, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if principal.UserID != "u1" || principal.Username != "alice" || principal.Role != domain.RoleUser {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret", time.Minute).Issue(&domain.User{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewTokenService("other", time.Minute).Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)

	claims := tokenClaims{
		UserID: "u1",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)

	claims := tokenClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	// Signed with the right secret but a different HMAC variant; verification
	// must reject it without negotiating.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS384 token, got %v", err)
	}
}

func TestTokenService_MissingIdentityClaims(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)

	claims := tokenClaims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing sub/id, got %v", err)
	}
}

func TestTokenService_ExpiryWindow(t *testing.T) {
	// A token with ttl=20min carries exp = now+20min: still valid just before,
	// invalid just after.
	svc := NewTokenService("secret", 20*time.Minute)
	token, err := svc.Issue(&domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := &tokenClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	exp := claims.ExpiresAt.Time
	if until := time.Until(exp); until < 19*time.Minute || until > 21*time.Minute {
		t.Fatalf("expected ~20m expiry, got %v", until)
	}
}
