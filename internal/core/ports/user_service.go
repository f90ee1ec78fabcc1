package ports

import (
	"context"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

// UserService defines use-case operations for users.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	// Delete removes a user; allowed for the user themself or an admin.
	Delete(ctx context.Context, principal domain.Principal, id string) error
}
