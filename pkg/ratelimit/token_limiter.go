package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// TokenLimiter limits the number of model tokens spent per minute.
type TokenLimiter struct {
	limiter *rate.Limiter
	max     int
}

// NewTokenLimiter creates a limiter that refills maxPerMinute tokens every minute.
// A non-positive maxPerMinute disables limiting.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	if maxPerMinute <= 0 {
		return &TokenLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	perToken := time.Minute / time.Duration(maxPerMinute)
	return &TokenLimiter{
		limiter: rate.NewLimiter(rate.Every(perToken), maxPerMinute),
		max:     maxPerMinute,
	}
}

// Wait blocks until tokens are available or ctx is done.
func (l *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	if l.max > 0 && tokens > l.max {
		return fmt.Errorf("requested %d tokens exceeds the per-minute budget of %d", tokens, l.max)
	}
	if tokens <= 0 {
		return nil
	}
	return l.limiter.WaitN(ctx, tokens)
}

// GetRemaining returns the tokens currently available.
func (l *TokenLimiter) GetRemaining() int {
	if l.max <= 0 {
		return -1
	}
	return int(l.limiter.Tokens())
}
