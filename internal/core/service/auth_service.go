package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/trashgo/delivery-api/internal/core/domain"
	"github.com/trashgo/delivery-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	tokens   *TokenService
	throttle ports.LoginThrottle // optional
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, logger: logger}
}

// Register creates a new user with a bcrypt-hashed password. Email is checked
// before username so a request that duplicates both reports the email first.
// The pre-checks are best-effort; the repository's unique indexes remain the
// final authority on duplicates.
func (s *AuthService) Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", username).Str("role", string(role)).Msg("user registered")

	return user, nil
}

// Login verifies credentials and mints an access token. A missing user and a
// wrong password produce the same error so responses never reveal which part
// of the credentials was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.throttle != nil && !s.throttle.Allow(ctx, username) {
		s.logger.Warn().Str("username", username).Msg("login throttled")
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", username).Msg("login succeeded")

	return token, nil
}
