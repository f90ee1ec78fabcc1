package ports

import (
	"context"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Order, error)
	// ListByUser returns orders owned by userID or assigned to it as courier.
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Order, error)
	// UpdateStatus atomically sets the new status and appends a history entry.
	UpdateStatus(ctx context.Context, id string, change domain.StatusChange) (*domain.Order, error)
	// AssignCourier sets the courier and moves the order to assigned,
	// appending a history entry.
	AssignCourier(ctx context.Context, id, courierID string, change domain.StatusChange) (*domain.Order, error)
	// Delete removes the order. Returns ErrOrderNotFound when no row matched.
	Delete(ctx context.Context, id string) error
}
