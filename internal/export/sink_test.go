package export

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"shopetl/pkg/records"
)

// fakePutter records uploads in memory.
type fakePutter struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newFakePutter() *fakePutter {
	return &fakePutter{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakePutter) Put(_ context.Context, key, contentType string, body io.Reader) error {
	if f.err != nil {
		return &StorageError{Key: key, Err: f.err}
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = b
	f.types[key] = contentType
	return nil
}

func TestPutJSON_ContentType(t *testing.T) {
	p := newFakePutter()
	err := PutJSON(context.Background(), p, "a/b.json", []records.Record{{"id": 1}})
	if err != nil {
		t.Fatalf("PutJSON: %v", err)
	}
	if p.types["a/b.json"] != "application/json" {
		t.Errorf("content type = %q", p.types["a/b.json"])
	}
}

/*
TestPut_OverwriteIsIdempotent verifies the run-level idempotency contract:
writing the same key twice leaves exactly the second body.
*/
func TestPut_OverwriteIsIdempotent(t *testing.T) {
	p := newFakePutter()
	ctx := context.Background()

	if err := PutText(ctx, p, "k", "first"); err != nil {
		t.Fatalf("PutText: %v", err)
	}
	if err := PutText(ctx, p, "k", "second"); err != nil {
		t.Fatalf("PutText: %v", err)
	}
	if got := string(p.objects["k"]); got != "second" {
		t.Errorf("body = %q, want %q", got, "second")
	}
	if len(p.objects) != 1 {
		t.Errorf("object count = %d, want 1", len(p.objects))
	}
}

func TestPut_StorageErrorClassified(t *testing.T) {
	p := newFakePutter()
	p.err = errors.New("boom")

	err := PutText(context.Background(), p, "k", "x")
	if err == nil {
		t.Fatal("want error")
	}
	if !IsStorage(err) {
		t.Errorf("IsStorage = false for %v", err)
	}
	var se *StorageError
	if !errors.As(err, &se) || se.Key != "k" {
		t.Errorf("StorageError key = %v", err)
	}
}

func TestKeyLayouts(t *testing.T) {
	ts := RunTimestamp(time.Date(2024, 5, 1, 8, 30, 15, 0, time.UTC))
	if ts != "20240501_083015" {
		t.Fatalf("RunTimestamp = %q", ts)
	}

	cases := []struct{ got, want string }{
		{AnalyticsKey("lake", "customers", ts), "lake/analytics/customers/20240501_083015/part-00000.parquet"},
		{RawKey("lake", "orders", ts), "lake/raw/orders/20240501_083015/part-00000.parquet"},
		{QueryKey("analytics", "sales", "monthly_sales", ts), "analytics/sales/monthly_sales_20240501_083015.json"},
		{SummaryKey(ts), "processing_summary_20240501_083015.json"},
		{MetadataKey("customer_segments"), "metadata/athena_tables/customer_segments_definition.sql"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("key = %q, want %q", c.got, c.want)
		}
	}
}

/*
TestKeys_DistinctRunsNeverCollide spells out why the timestamp is part of
every key: two runs a second apart write disjoint object sets.
*/
func TestKeys_DistinctRunsNeverCollide(t *testing.T) {
	t1 := RunTimestamp(time.Date(2024, 5, 1, 8, 30, 15, 0, time.UTC))
	t2 := RunTimestamp(time.Date(2024, 5, 1, 8, 30, 16, 0, time.UTC))
	if AnalyticsKey("lake", "customers", t1) == AnalyticsKey("lake", "customers", t2) {
		t.Fatal("keys for distinct runs collide")
	}
}
