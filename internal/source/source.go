// Package source contains the storage-agnostic contract for extracting typed
// entity rows from the relational store, plus the factory that concrete
// adapters (mysql, postgres) register themselves with.
//
// Error taxonomy: a ConnectionError is fatal to the whole run; a QueryError is
// isolated to the subjects that depend on the failed entity, which are logged
// and skipped while sibling subjects proceed.
package source

import (
	"context"
	"errors"
	"fmt"

	"shopetl/internal/schema"
)

// Config selects and parameterizes a concrete adapter.
type Config struct {
	// Kind selects the adapter implementation: "mysql" or "postgres".
	Kind string
	// DSN is the driver-specific connection string.
	DSN string
}

// Adapter fetches typed rows for each source entity. Implementations own a
// single connection pool acquired at construction and released by Close; the
// orchestrator guarantees Close runs on every exit path.
type Adapter interface {
	Customers(ctx context.Context) ([]schema.Customer, error)
	Orders(ctx context.Context) ([]schema.Order, error)
	Products(ctx context.Context) ([]schema.Product, error)
	OrderItems(ctx context.Context) ([]schema.OrderItem, error)
	Reviews(ctx context.Context) ([]schema.Review, error)
	Payments(ctx context.Context) ([]schema.Payment, error)

	// Ping verifies connectivity. A failure here is a ConnectionError and the
	// run must terminate Fatal.
	Ping(ctx context.Context) error
	Close()
}

// ConnectionError wraps a failure to reach the database at all.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string { return fmt.Sprintf("connection: %v", e.Err) }
func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError wraps a failure to extract one entity. It does not abort the
// run; subjects that need the entity are skipped.
type QueryError struct {
	Entity schema.Entity
	Err    error
}

func (e *QueryError) Error() string { return fmt.Sprintf("query %s: %v", e.Entity, e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

// IsConnection reports whether err is (or wraps) a ConnectionError.
func IsConnection(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsQuery reports whether err is (or wraps) a QueryError.
func IsQuery(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

// Factory builds an Adapter for a registered kind.
type Factory func(ctx context.Context, cfg Config) (Adapter, error)

var factories = map[string]Factory{}

// Register installs a factory under kind. Concrete adapters call this from
// init; importing source/all makes every built-in kind available.
func Register(kind string, f Factory) {
	factories[kind] = f
}

// New constructs the adapter selected by cfg.Kind.
func New(ctx context.Context, cfg Config) (Adapter, error) {
	f, ok := factories[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
	return f(ctx, cfg)
}
