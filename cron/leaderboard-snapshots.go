package cron

import (
	"context"
	"time"

	"archery/logger"
	"archery/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type SnapshotRefresher interface {
	RefreshSnapshots() error
}

// SnapshotLoop refreshes the stored leaderboards once immediately and then on
// every tick until ctx is cancelled. A failed run is logged and retried on the next tick.
func SnapshotLoop(ctx context.Context, refresher SnapshotRefresher, interval time.Duration) {
	log := logger.Named("cron")
	if interval <= 0 {
		log.Warnw("snapshot loop disabled", "interval", interval)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		refresh(refresher, log.Errorw)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func refresh(refresher SnapshotRefresher, logError func(msg string, keysAndValues ...interface{})) {
	timer := prometheus.NewTimer(metrics.SnapshotDuration)
	defer timer.ObserveDuration()
	if err := refresher.RefreshSnapshots(); err != nil {
		logError("leaderboard snapshot failed", "error", err)
	}
}
