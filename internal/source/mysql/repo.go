// Package mysql implements the source.Adapter over database/sql with the
// go-sql-driver. The DSN must carry parseTime=true so DATE/DATETIME columns
// scan into time.Time.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"shopetl/internal/schema"
	"shopetl/internal/source"
)

func init() {
	source.Register("mysql", func(ctx context.Context, cfg source.Config) (source.Adapter, error) {
		r, closeFn, err := NewRepository(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})
}

// wrappedRepo adapts *Repository to source.Adapter and provides Close.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() { w.closeFn() }

// Repository reads entity tables from a MySQL database.
type Repository struct {
	db *sql.DB
}

// NewRepository opens a pooled connection and returns a close function for
// cleanup. Opening does not dial; connectivity is checked by Ping.
func NewRepository(_ context.Context, dsn string) (*Repository, func(), error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, &source.ConnectionError{Err: fmt.Errorf("open mysql: %w", err)}
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	closeFn := func() { _ = db.Close() }
	return &Repository{db: db}, closeFn, nil
}

// Ping verifies connectivity; a failure is a ConnectionError.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return &source.ConnectionError{Err: err}
	}
	return nil
}

// query runs the contract SELECT for an entity and returns its rows.
func (r *Repository) query(ctx context.Context, e schema.Entity) (*sql.Rows, error) {
	rows, err := r.db.QueryContext(ctx, source.SelectFor(e))
	if err != nil {
		return nil, &source.QueryError{Entity: e, Err: err}
	}
	return rows, nil
}

func (r *Repository) Customers(ctx context.Context) ([]schema.Customer, error) {
	rows, err := r.query(ctx, schema.EntityCustomers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := source.ScanCustomers(rows)
	if err != nil {
		return nil, &source.QueryError{Entity: schema.EntityCustomers, Err: err}
	}
	return out, nil
}

func (r *Repository) Orders(ctx context.Context) ([]schema.Order, error) {
	rows, err := r.query(ctx, schema.EntityOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := source.ScanOrders(rows)
	if err != nil {
		return nil, &source.QueryError{Entity: schema.EntityOrders, Err: err}
	}
	return out, nil
}

func (r *Repository) Products(ctx context.Context) ([]schema.Product, error) {
	rows, err := r.query(ctx, schema.EntityProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := source.ScanProducts(rows)
	if err != nil {
		return nil, &source.QueryError{Entity: schema.EntityProducts, Err: err}
	}
	return out, nil
}

func (r *Repository) OrderItems(ctx context.Context) ([]schema.OrderItem, error) {
	rows, err := r.query(ctx, schema.EntityOrderItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := source.ScanOrderItems(rows)
	if err != nil {
		return nil, &source.QueryError{Entity: schema.EntityOrderItems, Err: err}
	}
	return out, nil
}

func (r *Repository) Reviews(ctx context.Context) ([]schema.Review, error) {
	rows, err := r.query(ctx, schema.EntityReviews)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := source.ScanReviews(rows)
	if err != nil {
		return nil, &source.QueryError{Entity: schema.EntityReviews, Err: err}
	}
	return out, nil
}

func (r *Repository) Payments(ctx context.Context) ([]schema.Payment, error) {
	rows, err := r.query(ctx, schema.EntityPayments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := source.ScanPayments(rows)
	if err != nil {
		return nil, &source.QueryError{Entity: schema.EntityPayments, Err: err}
	}
	return out, nil
}

// DB exposes the underlying handle for the analytical query runner, which
// issues raw SQL instead of entity extraction.
func (r *Repository) DB() *sql.DB { return r.db }
