package transform

import (
	"time"

	"shopetl/internal/schema"
)

// OrderMetrics is the per-order aggregation of an order joined with its line
// items, plus the calendar bucketing columns.
//
// Item aggregates stay nullable: an order with no line items carries a nil
// TotalItems and AvgItemPrice and a zero UniqueProducts, mirroring how a sum
// or average over an empty group is null while a count is zero.
type OrderMetrics struct {
	OrderID        int
	CustomerID     int
	OrderDate      time.Time
	Status         string
	TotalAmount    float64
	ShippingCost   float64
	TaxAmount      float64
	DiscountAmount float64

	TotalItems     *int
	UniqueProducts int
	AvgItemPrice   *float64

	OrderYear      int
	OrderMonth     int
	OrderQuarter   int
	OrderDayOfWeek int // 1 = Sunday .. 7 = Saturday
	OrderHour      int
}

// Orders left-joins orders to order_items and aggregates per order id.
//
// Scalar columns come straight from the orders row, which holds exactly one
// value per order id, so the result is deterministic regardless of line-item
// order.
func Orders(orders []schema.Order, items []schema.OrderItem) []OrderMetrics {
	type itemAgg struct {
		quantity int
		products int
		priceSum float64
	}
	byOrder := make(map[int]*itemAgg, len(orders))
	for _, it := range items {
		a := byOrder[it.OrderID]
		if a == nil {
			a = &itemAgg{}
			byOrder[it.OrderID] = a
		}
		a.quantity += it.Quantity
		a.products++
		a.priceSum += it.UnitPrice
	}

	out := make([]OrderMetrics, 0, len(orders))
	for _, o := range orders {
		m := OrderMetrics{
			OrderID:        o.OrderID,
			CustomerID:     o.CustomerID,
			OrderDate:      o.OrderDate,
			Status:         o.Status,
			TotalAmount:    o.TotalAmount,
			ShippingCost:   o.ShippingCost,
			TaxAmount:      o.TaxAmount,
			DiscountAmount: o.DiscountAmount,

			OrderYear:      o.OrderDate.Year(),
			OrderMonth:     int(o.OrderDate.Month()),
			OrderQuarter:   quarterOf(o.OrderDate),
			OrderDayOfWeek: int(o.OrderDate.Weekday()) + 1,
			OrderHour:      o.OrderDate.Hour(),
		}
		if a, ok := byOrder[o.OrderID]; ok {
			q := a.quantity
			avg := a.priceSum / float64(a.products)
			m.TotalItems = &q
			m.UniqueProducts = a.products
			m.AvgItemPrice = &avg
		}
		out = append(out, m)
	}
	return out
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
