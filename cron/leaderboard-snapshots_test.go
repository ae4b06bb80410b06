package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) RefreshSnapshots() error {
	r.calls.Add(1)
	return r.err
}

func TestSnapshotLoopRunsUntilCancelled(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("db down")}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		SnapshotLoop(ctx, refresher, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 3 }, time.Second, time.Millisecond,
		"failed runs must not stop the loop")
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestSnapshotLoopDisabledWithoutInterval(t *testing.T) {
	refresher := &countingRefresher{}
	SnapshotLoop(context.Background(), refresher, 0)
	assert.Equal(t, int32(0), refresher.calls.Load())
}
