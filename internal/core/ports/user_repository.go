package ports

import (
	"context"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
//
// Create must treat the store's unique-constraint violation as the
// authoritative duplicate signal and map it to ErrEmailExists or
// ErrUsernameExists; the service-layer pre-checks are a convenience only and
// are racy under concurrent registration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	// Delete removes the user. Returns ErrUserNotFound when no row matched.
	Delete(ctx context.Context, id string) error
}
