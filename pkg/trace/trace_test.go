package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledTracing(t *testing.T) {
	require.NoError(t, Init(Config{Enabled: false}))
	assert.False(t, Enabled())

	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()

	_, _, ok := GetTraceFields(ctx)
	assert.False(t, ok)
}

func TestEnabledTracing(t *testing.T) {
	require.NoError(t, Init(Config{Enabled: true, ServiceName: "test", Version: "0.0.0"}))
	defer func() {
		_ = Shutdown(context.Background())
		enabled = false
	}()

	ctx, span := StartSpan(context.Background(), "work")
	defer span.End()

	traceID, spanID, ok := GetTraceFields(ctx)
	require.True(t, ok)
	assert.NotEmpty(t, traceID)
	assert.NotEmpty(t, spanID)
}
