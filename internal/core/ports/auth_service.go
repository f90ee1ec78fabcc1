package ports

import (
	"context"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

// AuthService implements the registration and login flows.
type AuthService interface {
	Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenVerifier turns a raw bearer credential into a Principal. It is the
// single point every protected route passes through and has no knowledge of
// authorization policy.
type TokenVerifier interface {
	Verify(raw string) (domain.Principal, error)
}

// LoginThrottle limits repeated login attempts per username. Implementations
// must fail open: an unavailable backing store never blocks logins.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) bool
}
