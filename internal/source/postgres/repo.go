// Package postgres implements the source.Adapter using pgx v5 connection
// pools.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopetl/internal/schema"
	"shopetl/internal/source"
)

func init() {
	source.Register("postgres", func(ctx context.Context, cfg source.Config) (source.Adapter, error) {
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

// Repository reads entity tables from a Postgres database.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository and returns a close function for
// cleanup.
func NewRepository(ctx context.Context, dsn string) (*Repository, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, &source.ConnectionError{Err: err}
	}
	closeFn := func() { pool.Close() }
	return &Repository{pool: pool}, closeFn, nil
}

// Ping verifies connectivity; a failure is a ConnectionError.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return &source.ConnectionError{Err: err}
	}
	return nil
}

// fetch runs the contract SELECT for an entity and scans it with scan,
// wrapping any failure as a QueryError for that entity.
func fetch[T any](ctx context.Context, r *Repository, e schema.Entity, scan func(source.Rows) ([]T, error)) ([]T, error) {
	rows, err := r.pool.Query(ctx, source.SelectFor(e))
	if err != nil {
		return nil, &source.QueryError{Entity: e, Err: err}
	}
	defer rows.Close()
	out, err := scan(rows)
	if err != nil {
		return nil, &source.QueryError{Entity: e, Err: err}
	}
	return out, nil
}

func (r *Repository) Customers(ctx context.Context) ([]schema.Customer, error) {
	return fetch(ctx, r, schema.EntityCustomers, source.ScanCustomers)
}

func (r *Repository) Orders(ctx context.Context) ([]schema.Order, error) {
	return fetch(ctx, r, schema.EntityOrders, source.ScanOrders)
}

func (r *Repository) Products(ctx context.Context) ([]schema.Product, error) {
	return fetch(ctx, r, schema.EntityProducts, source.ScanProducts)
}

func (r *Repository) OrderItems(ctx context.Context) ([]schema.OrderItem, error) {
	return fetch(ctx, r, schema.EntityOrderItems, source.ScanOrderItems)
}

func (r *Repository) Reviews(ctx context.Context) ([]schema.Review, error) {
	return fetch(ctx, r, schema.EntityReviews, source.ScanReviews)
}

func (r *Repository) Payments(ctx context.Context) ([]schema.Payment, error) {
	return fetch(ctx, r, schema.EntityPayments, source.ScanPayments)
}
