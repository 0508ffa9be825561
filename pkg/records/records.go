// Package records defines the generic row type passed between pipeline stages
// that deal with dynamically shaped result sets (analytical queries, exports).
// Entity tables use typed structs from internal/schema; Record exists for the
// places where the column set is defined by a query, not by a contract.
package records

import (
	"fmt"
	"time"
)

// Record is a single row keyed by column name.
type Record map[string]any

// String returns the string value for key, or "" when missing or nil.
// Non-string values are formatted with fmt.Sprint.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int64 returns the integer value for key, accepting the common numeric types
// database drivers produce. Returns 0, false when missing or not numeric.
func (r Record) Int64(key string) (int64, bool) {
	switch n := r[key].(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// Float64 returns the float value for key. Returns 0, false when missing or
// not numeric.
func (r Record) Float64(key string) (float64, bool) {
	switch n := r[key].(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// Time returns the time value for key. Returns zero, false when missing or
// not a time.
func (r Record) Time(key string) (time.Time, bool) {
	if t, ok := r[key].(time.Time); ok {
		return t, true
	}
	return time.Time{}, false
}
