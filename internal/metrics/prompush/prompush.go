// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package.
//
// It adapts the generic metrics.Backend interface to Prometheus by mapping
// the pipeline labels (subject, stage, status) onto Prometheus labels and
// pushing collected metrics to a Pushgateway instead of exposing a scrape
// endpoint, which suits short-lived batch runs. All Prometheus-specific
// dependencies stay in this package so the pipeline can swap backends without
// touching core logic.
package prompush

import (
	"fmt"

	"shopetl/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string // e.g. http://pushgateway:9091
	jobName    string // Pushgateway "job" group
	reg        *prometheus.Registry

	stageCounter  *prometheus.CounterVec // "analytics_stage_total"
	stageDuration *prometheus.SummaryVec // "analytics_stage_duration_seconds"
	rowCounter    *prometheus.CounterVec // "analytics_rows_total"
	objectCounter *prometheus.CounterVec // "analytics_objects_total"
}

// NewBackend constructs a Prometheus Pushgateway backend.
// jobName: the Pushgateway "job" name. gatewayURL: base URL of the server.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "analytics"
	}

	reg := prometheus.NewRegistry()

	stageCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_stage_total",
			Help: "Total pipeline stage executions, partitioned by subject, stage, and status.",
		},
		[]string{"subject", "stage", "status"},
	)
	stageDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "analytics_stage_duration_seconds",
			Help:       "Duration of pipeline stages in seconds, partitioned by subject, stage, and status.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"subject", "stage", "status"},
	)
	rowCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_rows_total",
			Help: "Row-level counts per subject and kind (extracted, transformed, exported).",
		},
		[]string{"subject", "kind"},
	)
	objectCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_objects_total",
			Help: "Storage objects written per subject.",
		},
		[]string{"subject"},
	)

	if err := reg.Register(stageCounter); err != nil {
		return nil, fmt.Errorf("prompush: register stage counter: %w", err)
	}
	if err := reg.Register(stageDuration); err != nil {
		return nil, fmt.Errorf("prompush: register stage summary: %w", err)
	}
	if err := reg.Register(rowCounter); err != nil {
		return nil, fmt.Errorf("prompush: register row counter: %w", err)
	}
	if err := reg.Register(objectCounter); err != nil {
		return nil, fmt.Errorf("prompush: register object counter: %w", err)
	}

	return &Backend{
		gatewayURL:    gatewayURL,
		jobName:       jobName,
		reg:           reg,
		stageCounter:  stageCounter,
		stageDuration: stageDuration,
		rowCounter:    rowCounter,
		objectCounter: objectCounter,
	}, nil
}

func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "analytics_stage_total":
		b.stageCounter.WithLabelValues(labels["subject"], labels["stage"], labels["status"]).Add(delta)

	case "analytics_rows_total":
		b.rowCounter.WithLabelValues(labels["subject"], labels["kind"]).Add(delta)

	case "analytics_objects_total":
		b.objectCounter.WithLabelValues(labels["subject"]).Add(delta)

	default:
		// unknown metric name: ignore
	}
}

func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name != "analytics_stage_duration_seconds" {
		return
	}
	b.stageDuration.WithLabelValues(labels["subject"], labels["stage"], labels["status"]).Observe(value)
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}
