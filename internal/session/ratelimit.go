package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mazadWeb/internal/models"
)

// Limiter counts failed sign-in attempts per account within a rolling
// window. The platform rate-limits too; this keeps obvious bursts from
// ever leaving the building.
type Limiter struct {
	rdb    *redis.Client
	max    int64
	window time.Duration
}

func NewLimiter(rdb *redis.Client, max int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, max: int64(max), window: window}
}

func attemptKey(email string) string {
	return "signin_attempts:" + strings.ToLower(strings.TrimSpace(email))
}

// Allow records one attempt and fails with ErrTooManyAttempts once the
// account exceeds the allowed attempts for the window.
func (l *Limiter) Allow(ctx context.Context, email string) error {
	key := attemptKey(email)

	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("rate limit expire: %w", err)
		}
	}
	if n > l.max {
		return models.ErrTooManyAttempts
	}
	return nil
}

// Reset clears the counter after a successful sign-in.
func (l *Limiter) Reset(ctx context.Context, email string) error {
	if err := l.rdb.Del(ctx, attemptKey(email)).Err(); err != nil {
		return fmt.Errorf("rate limit reset: %w", err)
	}
	return nil
}
