package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReviewDecisionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "archery_review_decisions_total",
	Help: "Number of review decisions by request kind and outcome",
}, []string{"kind", "outcome"})

var ReviewSubmissionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "archery_review_submissions_total",
	Help: "Number of submitted review requests by kind",
}, []string{"kind"})

var ScoresRecordedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "archery_scores_recorded_total",
	Help: "Number of recorded ends by score type",
}, []string{"type"})

var LoginFailureCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "archery_login_failures_total",
	Help: "Number of failed login attempts",
})

var NotificationErrorCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "archery_notification_errors_total",
	Help: "Number of failed best-effort side effects by channel",
}, []string{"channel"})

var ScoreSubscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "archery_score_subscribers",
	Help: "Current number of open score websocket connections",
})

var SnapshotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "archery_leaderboard_snapshot_duration_s",
	Help: "Duration of a leaderboard snapshot refresh",
	Buckets: []float64{
		0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10,
	},
})

var UploadBytes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "archery_upload_bytes_total",
	Help: "Bytes uploaded to object storage by prefix",
}, []string{"prefix"})
