package ports

import (
	"context"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

// CreateOrderInput carries the data needed to place a new order.
type CreateOrderInput struct {
	CourierID   string
	Description string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Order, error)
	// ListMine returns the orders the principal owns or works as courier.
	ListMine(ctx context.Context, principal domain.Principal, skip, limit int) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, principal domain.Principal, id string, status domain.OrderStatus) (*domain.Order, error)
	// AssignCourier assigns the calling courier to the order (self-assignment).
	AssignCourier(ctx context.Context, principal domain.Principal, id string) (*domain.Order, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}
