package metrics

import (
	"errors"
	"testing"
	"time"
)

// captureBackend records every call for assertions.
type captureBackend struct {
	counters   []string
	histograms []string
	labels     []Labels
	flushed    int
}

func (c *captureBackend) IncCounter(name string, delta float64, labels Labels) {
	c.counters = append(c.counters, name)
	c.labels = append(c.labels, labels)
}

func (c *captureBackend) ObserveHistogram(name string, value float64, labels Labels) {
	c.histograms = append(c.histograms, name)
}

func (c *captureBackend) Flush() error {
	c.flushed++
	return nil
}

func withBackend(t *testing.T, b Backend) {
	t.Helper()
	prev := backend
	SetBackend(b)
	t.Cleanup(func() { backend = prev })
}

func TestRecordStage_StatusLabel(t *testing.T) {
	c := &captureBackend{}
	withBackend(t, c)

	RecordStage("customers", "extract", nil, 10*time.Millisecond)
	RecordStage("customers", "extract", errors.New("boom"), time.Millisecond)

	if len(c.counters) != 2 || len(c.histograms) != 2 {
		t.Fatalf("counters=%d histograms=%d, want 2/2", len(c.counters), len(c.histograms))
	}
	if c.labels[0]["status"] != "success" {
		t.Errorf("first status = %q", c.labels[0]["status"])
	}
	if c.labels[1]["status"] != "failure" {
		t.Errorf("second status = %q", c.labels[1]["status"])
	}
	if c.labels[0]["subject"] != "customers" || c.labels[0]["stage"] != "extract" {
		t.Errorf("labels = %v", c.labels[0])
	}
}

func TestRecordRows_SkipsNonPositive(t *testing.T) {
	c := &captureBackend{}
	withBackend(t, c)

	RecordRows("sales", "extracted", 0)
	RecordRows("sales", "extracted", -5)
	RecordRows("sales", "extracted", 3)

	if len(c.counters) != 1 {
		t.Fatalf("counters = %d, want 1", len(c.counters))
	}
	if c.labels[0]["kind"] != "extracted" {
		t.Errorf("kind label = %q", c.labels[0]["kind"])
	}
}

func TestSetBackend_NilKeepsCurrent(t *testing.T) {
	c := &captureBackend{}
	withBackend(t, c)

	SetBackend(nil)
	RecordObjects("customers", 1)

	if len(c.counters) != 1 {
		t.Fatalf("nil SetBackend replaced the backend")
	}
}

func TestFlush_Delegates(t *testing.T) {
	c := &captureBackend{}
	withBackend(t, c)

	if err := Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if c.flushed != 1 {
		t.Errorf("flushed = %d, want 1", c.flushed)
	}
}
