package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"shopetl/pkg/records"
)

// Runner executes analytical queries against a live database connection and
// materializes each result set as generic records.
type Runner struct {
	db *sql.DB
}

// NewRunner wraps an open connection pool. The caller owns the pool and its
// lifecycle; the runner never closes it.
func NewRunner(db *sql.DB) *Runner {
	return &Runner{db: db}
}

// Run executes one query and returns every row as a Record keyed by the
// result-set column names.
func (r *Runner) Run(ctx context.Context, q Query) ([]records.Record, error) {
	rows, err := r.db.QueryContext(ctx, q.SQL)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", q.Name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query %q: columns: %w", q.Name, err)
	}

	out := []records.Record{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("query %q: scan: %w", q.Name, err)
		}

		rec := records.Record{}
		for i, c := range cols {
			rec[c] = normalize(vals[i])
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %q: rows: %w", q.Name, err)
	}
	return out, nil
}

// normalize converts driver-specific scan values into JSON-friendly ones.
// The MySQL driver hands back []byte for strings and DECIMAL columns.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
