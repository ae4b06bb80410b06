package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// queryDuration is labelled by repository method, e.g. "ListCompetitionScores".
var queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "archery",
	Subsystem: "repository",
	Name:      "query_duration_seconds",
	Help:      "Duration of repository queries in seconds",
	Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
}, []string{"query"})
