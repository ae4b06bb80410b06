package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAttemptCounterExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	counter := NewMemoryAttemptCounter()
	counter.now = func() time.Time { return now }

	for i := 1; i <= MaxLoginFailures; i++ {
		count, err := counter.Increment(ctx, "archer", LoginLockout)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
	count, err := counter.Count(ctx, "archer")
	require.NoError(t, err)
	assert.Equal(t, MaxLoginFailures, count)

	other, err := counter.Count(ctx, "someone-else")
	require.NoError(t, err)
	assert.Zero(t, other)

	now = now.Add(LoginLockout + time.Second)
	count, err = counter.Count(ctx, "archer")
	require.NoError(t, err)
	assert.Zero(t, count, "failures are forgotten after the lockout window")

	_, err = counter.Increment(ctx, "archer", LoginLockout)
	require.NoError(t, err)
	require.NoError(t, counter.Reset(ctx, "archer"))
	count, err = counter.Count(ctx, "archer")
	require.NoError(t, err)
	assert.Zero(t, count)
}
