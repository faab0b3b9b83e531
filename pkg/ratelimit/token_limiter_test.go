package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLimiter_WithinBudget(t *testing.T) {
	l := NewTokenLimiter(600)

	require.NoError(t, l.Wait(context.Background(), 100))
	assert.InDelta(t, 500, l.GetRemaining(), 5)
}

func TestTokenLimiter_ExceedsBudget(t *testing.T) {
	l := NewTokenLimiter(10)
	assert.Error(t, l.Wait(context.Background(), 11))
}

func TestTokenLimiter_ContextDeadline(t *testing.T) {
	l := NewTokenLimiter(60)
	require.NoError(t, l.Wait(context.Background(), 60))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx, 30))
}

func TestTokenLimiter_Disabled(t *testing.T) {
	l := NewTokenLimiter(0)
	assert.NoError(t, l.Wait(context.Background(), 1_000_000))
	assert.Equal(t, -1, l.GetRemaining())
}
