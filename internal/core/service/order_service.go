package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trashgo/delivery-api/internal/core/domain"
	"github.com/trashgo/delivery-api/internal/core/ports"
)

// OrderService implements order creation, lookup, assignment, and status
// tracking.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// Create places a new order owned by the principal.
func (s *OrderService) Create(ctx context.Context, principal domain.Principal, input ports.CreateOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		ID:          uuid.NewString(),
		UserID:      principal.UserID,
		CourierID:   input.CourierID,
		Status:      domain.StatusCreated,
		Description: input.Description,
		CreatedAt:   now,
		StatusHistory: []domain.StatusChange{
			{Status: domain.StatusCreated, Timestamp: now, ActorID: principal.UserID},
		},
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Str("user_id", principal.UserID).Msg("order created")
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context, skip, limit int) ([]*domain.Order, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *OrderService) ListMine(ctx context.Context, principal domain.Principal, skip, limit int) ([]*domain.Order, error) {
	return s.repo.ListByUser(ctx, principal.UserID, skip, limit)
}

// UpdateStatus sets a new status on the order. Couriers and admins only.
// Any enumerated status is accepted regardless of the current one (the legacy
// behavior); transitions outside the typical ordering are logged.
func (s *OrderService) UpdateStatus(ctx context.Context, principal domain.Principal, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if err := domain.Authorize(principal, domain.ActionOrderUpdateStatus, ""); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.TypicalTransition(status) {
		s.logger.Warn().
			Str("order_id", id).
			Str("from", string(current.Status)).
			Str("to", string(status)).
			Msg("out-of-order status transition")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, domain.StatusChange{
		Status:    status,
		Timestamp: time.Now().UTC(),
		ActorID:   principal.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Str("status", string(status)).Str("actor", principal.UserID).Msg("order status updated")
	return updated, nil
}

// AssignCourier assigns the calling courier to the order. Couriers claim
// orders for themselves; nobody assigns someone else.
func (s *OrderService) AssignCourier(ctx context.Context, principal domain.Principal, id string) (*domain.Order, error) {
	if err := domain.Authorize(principal, domain.ActionOrderAssign, ""); err != nil {
		return nil, err
	}

	updated, err := s.repo.AssignCourier(ctx, id, principal.UserID, domain.StatusChange{
		Status:    domain.StatusAssigned,
		Timestamp: time.Now().UTC(),
		ActorID:   principal.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Str("courier_id", principal.UserID).Msg("courier assigned")
	return updated, nil
}

// Delete removes an order; allowed for the owning user or an admin.
func (s *OrderService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(principal, domain.ActionOrderDelete, order.UserID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("order_id", id).Str("deleted_by", principal.UserID).Msg("order deleted")
	return nil
}
