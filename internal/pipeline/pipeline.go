// Package pipeline orchestrates the batch analytics run: extract the source
// tables once, derive per-subject metric tables, project them to their output
// columns, and export Parquet partitions plus raw table copies.
//
// Failure policy: a subject that cannot be processed is recorded and skipped
// while its siblings continue. Only a failure to reach the database at all
// terminates the run.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"shopetl/internal/export"
	"shopetl/internal/metrics"
	"shopetl/internal/project"
	"shopetl/internal/schema"
	"shopetl/internal/source"
	"shopetl/internal/transform"
)

// State is the lifecycle position of a run.
type State int

const (
	StateInit State = iota
	StateExtracting
	StateTransforming
	StateExporting
	StateDone
	StatePartialFailure
	StateFatal
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateExtracting:
		return "extracting"
	case StateTransforming:
		return "transforming"
	case StateExporting:
		return "exporting"
	case StateDone:
		return "done"
	case StatePartialFailure:
		return "partial_failure"
	case StateFatal:
		return "fatal"
	}
	return "unknown"
}

// Flags selects the subjects a run processes. Export controls whether any
// object is written; with it off the run is a dry extract+transform.
type Flags struct {
	Customers bool
	Products  bool
	Sales     bool
	Payments  bool
	Export    bool
}

// AllFlags enables every subject and the export stage.
func AllFlags() Flags {
	return Flags{Customers: true, Products: true, Sales: true, Payments: true, Export: true}
}

// Result is the outcome for one subject.
type Result struct {
	Subject  string
	Rows     int
	Exported []string
	Err      error
}

// Summary is the end-of-run report.
type Summary struct {
	State     State
	Timestamp string
	Results   []Result
	RawKeys   []string
	FatalErr  error
}

// Pipeline wires an extraction adapter to an object sink.
type Pipeline struct {
	Source source.Adapter
	Sink   export.ObjectPutter
	// Base is the key prefix for every object the run writes,
	// e.g. "output" yields output/analytics/... and output/raw/...
	Base string
}

// dataset caches each entity fetched during a run so subjects that share an
// entity never trigger a second query.
type dataset struct {
	customers  []schema.Customer
	orders     []schema.Order
	products   []schema.Product
	orderItems []schema.OrderItem
	reviews    []schema.Review
	payments   []schema.Payment

	fetched map[schema.Entity]bool
	failed  map[schema.Entity]error
}

// entitiesFor maps a subject to the tables it reads.
func entitiesFor(subject string) []schema.Entity {
	switch subject {
	case "customers":
		return []schema.Entity{schema.EntityCustomers}
	case "products":
		return []schema.Entity{schema.EntityProducts, schema.EntityOrderItems, schema.EntityReviews}
	case "sales":
		return []schema.Entity{schema.EntityOrders, schema.EntityOrderItems}
	case "payments":
		return []schema.Entity{schema.EntityPayments}
	}
	return nil
}

// Run executes the batch pipeline. The returned summary is always populated,
// including on fatal errors.
func (p *Pipeline) Run(ctx context.Context, flags Flags, now time.Time) Summary {
	ts := export.RunTimestamp(now)
	summary := Summary{State: StateInit, Timestamp: ts}

	log.Printf("starting analytics run %s", ts)

	if err := p.Source.Ping(ctx); err != nil {
		summary.State = StateFatal
		summary.FatalErr = &source.ConnectionError{Err: err}
		log.Printf("FATAL: database unreachable: %v", err)
		return summary
	}

	subjects := enabledSubjects(flags)

	summary.State = StateExtracting
	ds := p.extract(ctx, subjects)

	summary.State = StateTransforming
	for _, subject := range subjects {
		summary.Results = append(summary.Results, p.processSubject(ctx, ds, subject, flags.Export, ts, now))
	}

	if flags.Export {
		summary.State = StateExporting
		summary.RawKeys = p.exportRaw(ctx, ds, ts)
	}

	summary.State = StateDone
	for _, r := range summary.Results {
		if r.Err != nil {
			summary.State = StatePartialFailure
			break
		}
	}

	logSummary(summary)
	return summary
}

func enabledSubjects(flags Flags) []string {
	var out []string
	if flags.Customers {
		out = append(out, "customers")
	}
	if flags.Products {
		out = append(out, "products")
	}
	if flags.Sales {
		out = append(out, "sales")
	}
	if flags.Payments {
		out = append(out, "payments")
	}
	return out
}

// extract fetches every entity the enabled subjects need, once each.
func (p *Pipeline) extract(ctx context.Context, subjects []string) *dataset {
	ds := &dataset{
		fetched: map[schema.Entity]bool{},
		failed:  map[schema.Entity]error{},
	}

	need := map[schema.Entity]bool{}
	for _, s := range subjects {
		for _, e := range entitiesFor(s) {
			need[e] = true
		}
	}

	for _, e := range schema.Entities() {
		if !need[e] {
			continue
		}
		start := time.Now()
		n, err := ds.fetch(ctx, p.Source, e)
		metrics.RecordStage(string(e), "extract", err, time.Since(start))
		if err != nil {
			ds.failed[e] = err
			log.Printf("ERROR: extract %s: %v", e, err)
			continue
		}
		ds.fetched[e] = true
		metrics.RecordRows(string(e), "extracted", int64(n))
		log.Printf("extracted %d %s", n, e)
	}
	return ds
}

func (ds *dataset) fetch(ctx context.Context, a source.Adapter, e schema.Entity) (int, error) {
	var err error
	var n int
	switch e {
	case schema.EntityCustomers:
		ds.customers, err = a.Customers(ctx)
		n = len(ds.customers)
	case schema.EntityOrders:
		ds.orders, err = a.Orders(ctx)
		n = len(ds.orders)
	case schema.EntityProducts:
		ds.products, err = a.Products(ctx)
		n = len(ds.products)
	case schema.EntityOrderItems:
		ds.orderItems, err = a.OrderItems(ctx)
		n = len(ds.orderItems)
	case schema.EntityReviews:
		ds.reviews, err = a.Reviews(ctx)
		n = len(ds.reviews)
	case schema.EntityPayments:
		ds.payments, err = a.Payments(ctx)
		n = len(ds.payments)
	default:
		err = fmt.Errorf("unknown entity %q", e)
	}
	return n, err
}

// missingEntity returns the first extraction error blocking a subject, if any.
func (ds *dataset) missingEntity(subject string) error {
	for _, e := range entitiesFor(subject) {
		if err, ok := ds.failed[e]; ok {
			return fmt.Errorf("entity %s unavailable: %w", e, err)
		}
		if !ds.fetched[e] {
			return fmt.Errorf("entity %s not extracted", e)
		}
	}
	return nil
}

func logSummary(s Summary) {
	log.Printf("run %s finished: state=%s", s.Timestamp, s.State)
	for _, r := range s.Results {
		if r.Err != nil {
			log.Printf("  %-10s FAILED: %v", r.Subject, r.Err)
			continue
		}
		log.Printf("  %-10s %d rows, %d objects", r.Subject, r.Rows, len(r.Exported))
	}
	if n := len(s.RawKeys); n > 0 {
		log.Printf("  raw copies: %d objects", n)
	}
}

// Derived metric tables per subject. Transform failures cannot occur past
// extraction (pure in-memory computation), so the subject error surface is
// extraction plus export.
func (p *Pipeline) processSubject(ctx context.Context, ds *dataset, subject string, doExport bool, ts string, now time.Time) Result {
	res := Result{Subject: subject}

	if err := ds.missingEntity(subject); err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	var exportErr error
	switch subject {
	case "customers":
		rows := transform.Customers(ds.customers, now)
		res.Rows = len(rows)
		if doExport {
			exportErr = putSubject(ctx, p, subject, ts, project.Customers(rows))
		}
	case "products":
		rows := transform.Products(ds.products, ds.orderItems, ds.reviews)
		res.Rows = len(rows)
		if doExport {
			exportErr = putSubject(ctx, p, subject, ts, project.Products(rows))
		}
	case "sales":
		rows := transform.Orders(ds.orders, ds.orderItems)
		res.Rows = len(rows)
		if doExport {
			exportErr = putSubject(ctx, p, subject, ts, project.Sales(rows))
		}
	case "payments":
		rows := transform.PaymentMethods(ds.payments)
		res.Rows = len(rows)
		if doExport {
			exportErr = putSubject(ctx, p, subject, ts, project.Payments(rows))
		}
	}
	metrics.RecordStage(subject, "transform", nil, time.Since(start))
	metrics.RecordRows(subject, "transformed", int64(res.Rows))

	if exportErr != nil {
		res.Err = exportErr
		log.Printf("ERROR: export %s: %v", subject, exportErr)
		return res
	}
	if doExport {
		res.Exported = append(res.Exported, export.AnalyticsKey(p.Base, subject, ts))
		metrics.RecordRows(subject, "exported", int64(res.Rows))
		metrics.RecordObjects(subject, 1)
	}
	return res
}

// putSubject writes one subject's Parquet partition.
func putSubject[T any](ctx context.Context, p *Pipeline, subject, ts string, rows []T) error {
	start := time.Now()
	key := export.AnalyticsKey(p.Base, subject, ts)
	err := export.PutParquet(ctx, p.Sink, key, rows)
	metrics.RecordStage(subject, "export", err, time.Since(start))
	return err
}

// exportRaw writes unmodified copies of every fetched entity table.
func (p *Pipeline) exportRaw(ctx context.Context, ds *dataset, ts string) []string {
	var keys []string

	put := func(e schema.Entity, write func(key string) error) {
		if !ds.fetched[e] {
			return
		}
		key := export.RawKey(p.Base, string(e), ts)
		if err := write(key); err != nil {
			log.Printf("ERROR: raw export %s: %v", e, err)
			return
		}
		metrics.RecordObjects("raw_"+string(e), 1)
		keys = append(keys, key)
	}

	put(schema.EntityCustomers, func(key string) error {
		return export.PutParquet(ctx, p.Sink, key, export.RawCustomers(ds.customers))
	})
	put(schema.EntityOrders, func(key string) error {
		return export.PutParquet(ctx, p.Sink, key, export.RawOrders(ds.orders))
	})
	put(schema.EntityProducts, func(key string) error {
		return export.PutParquet(ctx, p.Sink, key, export.RawProducts(ds.products))
	})
	put(schema.EntityOrderItems, func(key string) error {
		return export.PutParquet(ctx, p.Sink, key, export.RawOrderItems(ds.orderItems))
	})
	put(schema.EntityReviews, func(key string) error {
		return export.PutParquet(ctx, p.Sink, key, export.RawReviews(ds.reviews))
	})
	put(schema.EntityPayments, func(key string) error {
		return export.PutParquet(ctx, p.Sink, key, export.RawPayments(ds.payments))
	})

	return keys
}
