// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from the analytics pipeline.
//
// It exposes a narrow Backend interface focused on counters and timings, with
// a global, pluggable backend defaulting to a no-op implementation, so metric
// calls are always safe even when nothing is configured. Concrete systems
// (Prometheus Pushgateway) live in subpackages; the rest of the codebase
// depends only on this interface.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it (e.g. Pushgateway).
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing backend.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordStage measures latency plus success/failure for a pipeline stage
// (extract, transform, export) of one analytics subject.
func RecordStage(subject, stage string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	lbls := Labels{
		"subject": subject,
		"stage":   stage,
		"status":  status,
	}

	backend.IncCounter("analytics_stage_total", 1, lbls)
	backend.ObserveHistogram("analytics_stage_duration_seconds", d.Seconds(), lbls)
}

// RecordRows counts rows flowing through one subject, by kind.
//
// Typical kinds mirror the run summary fields:
//   - "extracted"
//   - "transformed"
//   - "exported"
func RecordRows(subject, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("analytics_rows_total", float64(delta), Labels{
		"subject": subject,
		"kind":    kind,
	})
}

// RecordObjects counts storage objects written for one subject.
func RecordObjects(subject string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("analytics_objects_total", float64(delta), Labels{
		"subject": subject,
	})
}
