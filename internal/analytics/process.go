package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"shopetl/internal/export"
	"shopetl/internal/metrics"
	"shopetl/pkg/records"
)

// Flags selects which subjects the handler processes and whether results
// leave the process at all. Every flag defaults to on.
type Flags struct {
	Customers bool
	Products  bool
	Sales     bool
	Payments  bool
	Export    bool
}

// AllFlags enables everything.
func AllFlags() Flags {
	return Flags{Customers: true, Products: true, Sales: true, Payments: true, Export: true}
}

func (f Flags) enabled(subject string) bool {
	switch subject {
	case "customers":
		return f.Customers
	case "products":
		return f.Products
	case "sales":
		return f.Sales
	case "payments":
		return f.Payments
	}
	return false
}

// Summary is the run report the handler both uploads and returns from.
type Summary struct {
	ProcessingTimestamp string   `json:"processing_timestamp"`
	Status              string   `json:"status"`
	FilesProcessed      []string `json:"files_processed"`
	S3Bucket            string   `json:"s3_bucket"`
	Errors              []string `json:"errors,omitempty"`
}

// QueryRunner executes one analytical query. *Runner is the production
// implementation; tests substitute a canned one.
type QueryRunner interface {
	Run(ctx context.Context, q Query) ([]records.Record, error)
}

// Processor runs the analytical query set and exports each result set as a
// timestamped JSON object, one file per query.
type Processor struct {
	Runner QueryRunner
	Sink   export.ObjectPutter
	Bucket string
	Prefix string // key prefix for query exports, e.g. "analytics"
}

// Process executes every enabled query. A failing query is logged, counted in
// the summary, and never blocks its siblings. After the query sweep it writes
// the Athena table DDL and the processing summary.
func (p *Processor) Process(ctx context.Context, flags Flags, now time.Time) Summary {
	ts := export.RunTimestamp(now)
	summary := Summary{
		ProcessingTimestamp: ts,
		Status:              "success",
		FilesProcessed:      []string{},
		S3Bucket:            p.Bucket,
	}

	for _, q := range Queries() {
		if !flags.enabled(q.Subject) {
			continue
		}

		start := time.Now()
		rows, err := p.Runner.Run(ctx, q)
		metrics.RecordStage(q.Subject, "query", err, time.Since(start))
		if err != nil {
			log.Printf("ERROR: %s: %v", q.Name, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", q.Name, err))
			continue
		}
		metrics.RecordRows(q.Subject, "extracted", int64(len(rows)))

		if !flags.Export {
			log.Printf("%s: %d rows (export disabled)", q.Name, len(rows))
			summary.FilesProcessed = append(summary.FilesProcessed, q.Name)
			continue
		}

		key := export.QueryKey(p.Prefix, q.Subject, q.Name, ts)
		if err := export.PutJSON(ctx, p.Sink, key, rows); err != nil {
			log.Printf("ERROR: %s: %v", q.Name, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", q.Name, err))
			continue
		}
		metrics.RecordObjects(q.Subject, 1)
		log.Printf("%s: exported %d rows to %s", q.Name, len(rows), key)
		summary.FilesProcessed = append(summary.FilesProcessed, q.Name)
	}

	if flags.Export {
		p.writeMetadata(ctx, &summary)

		if err := export.PutJSON(ctx, p.Sink, export.SummaryKey(ts), summary); err != nil {
			log.Printf("ERROR: summary upload: %v", err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("summary: %v", err))
		}
	}

	if len(summary.Errors) > 0 {
		summary.Status = "partial_failure"
	}
	return summary
}

// writeMetadata stores the Athena external-table definitions for reference.
// Failures here are recorded but never fatal; the DDL is documentation, not
// part of the data path.
func (p *Processor) writeMetadata(ctx context.Context, summary *Summary) {
	for _, def := range TableDefinitions(p.Bucket) {
		key := export.MetadataKey(def.Name)
		if err := export.PutText(ctx, p.Sink, key, def.DDL()); err != nil {
			log.Printf("ERROR: athena metadata %s: %v", def.Name, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("metadata %s: %v", def.Name, err))
		}
	}
}
