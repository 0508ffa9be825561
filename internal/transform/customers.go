// Package transform computes the derived metric tables from typed entity
// rows. Every function is pure: full tables in, augmented or aggregated
// tables out, no I/O and no shared state. Callers pass the reference time so
// that date arithmetic is reproducible in tests.
package transform

import (
	"time"

	"shopetl/internal/schema"
)

// CustomerMetrics is a customer row augmented with the derived columns.
type CustomerMetrics struct {
	schema.Customer

	FullName              string
	CustomerLifespanDays  int
	DaysSinceLastPurchase *int
	IsActiveCustomer      bool
	ValueTier             string
}

// Customers derives per-customer metrics.
//
//	full_name                 = first_name + " " + last_name
//	customer_lifespan_days    = days(now - registration_date)
//	days_since_last_purchase  = days(now - last_purchase_date), nil if never purchased
//	is_active_customer        = days_since_last_purchase <= 90 (false when nil)
//	value_tier                = >=2000 High, >=1000 Medium, >=500 Low, else Very Low
//
// Tier thresholds are evaluated top-down, first match wins, so a customer at
// exactly 2000 is High Value and one at 1999.99 is Medium Value.
func Customers(in []schema.Customer, now time.Time) []CustomerMetrics {
	out := make([]CustomerMetrics, 0, len(in))
	for _, c := range in {
		m := CustomerMetrics{
			Customer:             c,
			FullName:             c.FirstName + " " + c.LastName,
			CustomerLifespanDays: daysBetween(c.RegistrationDate, now),
			ValueTier:            valueTier(c.TotalSpent),
		}
		if c.LastPurchaseDate != nil {
			d := daysBetween(*c.LastPurchaseDate, now)
			m.DaysSinceLastPurchase = &d
			m.IsActiveCustomer = d <= 90
		}
		out = append(out, m)
	}
	return out
}

func valueTier(totalSpent float64) string {
	switch {
	case totalSpent >= 2000:
		return "High Value"
	case totalSpent >= 1000:
		return "Medium Value"
	case totalSpent >= 500:
		return "Low Value"
	default:
		return "Very Low Value"
	}
}

// daysBetween counts whole calendar days from a to b, ignoring the time of
// day on either side.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}
