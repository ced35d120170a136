package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync pipeline metrics, exported on /metrics next to the fiber
// request metrics.
var (
	SyncRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "missioncontrol_sync_runs_total",
		Help: "Total number of sync pipeline runs",
	})

	SyncSourceOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "missioncontrol_sync_source_outcomes_total",
		Help: "Per-source sync outcomes by status",
	}, []string{"source", "status"})

	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "missioncontrol_sync_duration_seconds",
		Help:    "Wall time of a full sync pipeline run",
		Buckets: prometheus.DefBuckets,
	})

	SyncLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "missioncontrol_sync_last_success_timestamp",
		Help: "Unix timestamp of the last sync run with zero failed sources",
	})
)
