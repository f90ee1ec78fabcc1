package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	throttleWindow      = time.Minute
	throttleMaxAttempts = 10
)

// LoginThrottle limits repeated login attempts per username using a counter
// with a rolling expiry. Key format: login_attempts:<username>
//
// It fails open: if Redis is unavailable the attempt is allowed, so a broken
// cache never locks users out.
type LoginThrottle struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client, log zerolog.Logger) *LoginThrottle {
	return &LoginThrottle{client: client, log: log}
}

// Allow records one attempt for username and reports whether it is within the
// window budget.
func (t *LoginThrottle) Allow(ctx context.Context, username string) bool {
	key := fmt.Sprintf("login_attempts:%s", username)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		t.log.Warn().Err(err).Str("username", username).Msg("login throttle unavailable, allowing attempt")
		return true
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, throttleWindow).Err(); err != nil {
			t.log.Warn().Err(err).Str("username", username).Msg("failed to set throttle expiry")
		}
	}
	return n <= throttleMaxAttempts
}
