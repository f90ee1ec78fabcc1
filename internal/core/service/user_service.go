package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/trashgo/delivery-api/internal/core/domain"
	"github.com/trashgo/delivery-api/internal/core/ports"
)

// UserService implements user queries and deletion.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return s.repo.List(ctx, skip, limit)
}

// Delete removes the user with the given id. Only the user themself or an
// admin may delete an account.
func (s *UserService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if err := domain.Authorize(principal, domain.ActionUserDelete, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("deleted_by", principal.UserID).Msg("user deleted")
	return nil
}
