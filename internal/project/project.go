// Package project narrows the transformed metric tables down to the final
// output column set for each analytics subject. No computation happens here,
// only column selection; nulls pass through untouched. The row structs carry
// parquet and json tags so the sink can serialize them in either format.
package project

import (
	"time"

	"shopetl/internal/transform"
)

// DateLayout is how timestamps are rendered in exported rows.
const DateLayout = "2006-01-02 15:04:05"

// CustomerAnalytics is the exported customer subject row.
type CustomerAnalytics struct {
	CustomerID            int32   `parquet:"name=customer_id, type=INT32" json:"customer_id"`
	FullName              string  `parquet:"name=full_name, type=BYTE_ARRAY, convertedtype=UTF8" json:"full_name"`
	CustomerSegment       string  `parquet:"name=customer_segment, type=BYTE_ARRAY, convertedtype=UTF8" json:"customer_segment"`
	TotalSpent            float64 `parquet:"name=total_spent, type=DOUBLE" json:"total_spent"`
	CustomerLifespanDays  int32   `parquet:"name=customer_lifespan_days, type=INT32" json:"customer_lifespan_days"`
	DaysSinceLastPurchase *int32  `parquet:"name=days_since_last_purchase, type=INT32, repetitiontype=OPTIONAL" json:"days_since_last_purchase"`
	IsActiveCustomer      bool    `parquet:"name=is_active_customer, type=BOOLEAN" json:"is_active_customer"`
	ValueTier             string  `parquet:"name=value_tier, type=BYTE_ARRAY, convertedtype=UTF8" json:"value_tier"`
}

// ProductAnalytics is the exported product subject row.
type ProductAnalytics struct {
	ProductID         int32    `parquet:"name=product_id, type=INT32" json:"product_id"`
	ProductName       string   `parquet:"name=product_name, type=BYTE_ARRAY, convertedtype=UTF8" json:"product_name"`
	Category          string   `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8" json:"category"`
	Brand             string   `parquet:"name=brand, type=BYTE_ARRAY, convertedtype=UTF8" json:"brand"`
	Price             float64  `parquet:"name=price, type=DOUBLE" json:"price"`
	TotalQuantitySold *int64   `parquet:"name=total_quantity_sold, type=INT64, repetitiontype=OPTIONAL" json:"total_quantity_sold"`
	TotalRevenue      *float64 `parquet:"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL" json:"total_revenue"`
	AvgRating         *float64 `parquet:"name=avg_rating, type=DOUBLE, repetitiontype=OPTIONAL" json:"avg_rating"`
	TotalReviews      int64    `parquet:"name=total_reviews, type=INT64" json:"total_reviews"`
	ProfitMargin      float64  `parquet:"name=profit_margin, type=DOUBLE" json:"profit_margin"`
	InventoryTurnover *float64 `parquet:"name=inventory_turnover, type=DOUBLE, repetitiontype=OPTIONAL" json:"inventory_turnover"`
	IsBestseller      bool     `parquet:"name=is_bestseller, type=BOOLEAN" json:"is_bestseller"`
	RatingCategory    string   `parquet:"name=rating_category, type=BYTE_ARRAY, convertedtype=UTF8" json:"rating_category"`
}

// SalesAnalytics is the exported sales subject row, one per order.
type SalesAnalytics struct {
	OrderID        int32    `parquet:"name=order_id, type=INT32" json:"order_id"`
	CustomerID     int32    `parquet:"name=customer_id, type=INT32" json:"customer_id"`
	OrderDate      string   `parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8" json:"order_date"`
	OrderYear      int32    `parquet:"name=order_year, type=INT32" json:"order_year"`
	OrderMonth     int32    `parquet:"name=order_month, type=INT32" json:"order_month"`
	OrderQuarter   int32    `parquet:"name=order_quarter, type=INT32" json:"order_quarter"`
	Status         string   `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8" json:"status"`
	TotalAmount    float64  `parquet:"name=total_amount, type=DOUBLE" json:"total_amount"`
	TotalItems     *int64   `parquet:"name=total_items, type=INT64, repetitiontype=OPTIONAL" json:"total_items"`
	UniqueProducts int64    `parquet:"name=unique_products, type=INT64" json:"unique_products"`
	AvgItemPrice   *float64 `parquet:"name=avg_item_price, type=DOUBLE, repetitiontype=OPTIONAL" json:"avg_item_price"`
}

// PaymentAnalytics is the exported payments subject row, one per method.
type PaymentAnalytics struct {
	PaymentMethod          string  `parquet:"name=payment_method, type=BYTE_ARRAY, convertedtype=UTF8" json:"payment_method"`
	TotalTransactions      int64   `parquet:"name=total_transactions, type=INT64" json:"total_transactions"`
	SuccessfulTransactions int64   `parquet:"name=successful_transactions, type=INT64" json:"successful_transactions"`
	TotalAmount            float64 `parquet:"name=total_amount, type=DOUBLE" json:"total_amount"`
	AvgAmount              float64 `parquet:"name=avg_amount, type=DOUBLE" json:"avg_amount"`
	TotalRefunded          float64 `parquet:"name=total_refunded, type=DOUBLE" json:"total_refunded"`
	SuccessRate            float64 `parquet:"name=success_rate, type=DOUBLE" json:"success_rate"`
}

// Customers selects the customer analytics columns.
func Customers(in []transform.CustomerMetrics) []CustomerAnalytics {
	out := make([]CustomerAnalytics, 0, len(in))
	for _, m := range in {
		row := CustomerAnalytics{
			CustomerID:           int32(m.CustomerID),
			FullName:             m.FullName,
			CustomerSegment:      m.CustomerSegment,
			TotalSpent:           m.TotalSpent,
			CustomerLifespanDays: int32(m.CustomerLifespanDays),
			IsActiveCustomer:     m.IsActiveCustomer,
			ValueTier:            m.ValueTier,
		}
		if m.DaysSinceLastPurchase != nil {
			d := int32(*m.DaysSinceLastPurchase)
			row.DaysSinceLastPurchase = &d
		}
		out = append(out, row)
	}
	return out
}

// Products selects the product analytics columns.
func Products(in []transform.ProductMetrics) []ProductAnalytics {
	out := make([]ProductAnalytics, 0, len(in))
	for _, m := range in {
		row := ProductAnalytics{
			ProductID:         int32(m.ProductID),
			ProductName:       m.ProductName,
			Category:          m.Category,
			Brand:             m.Brand,
			Price:             m.Price,
			TotalRevenue:      m.TotalRevenue,
			AvgRating:         m.AvgRating,
			TotalReviews:      int64(m.TotalReviews),
			ProfitMargin:      m.ProfitMargin,
			InventoryTurnover: m.InventoryTurnover,
			IsBestseller:      m.IsBestseller,
			RatingCategory:    m.RatingCategory,
		}
		if m.TotalQuantitySold != nil {
			q := int64(*m.TotalQuantitySold)
			row.TotalQuantitySold = &q
		}
		out = append(out, row)
	}
	return out
}

// Sales selects the sales analytics columns.
func Sales(in []transform.OrderMetrics) []SalesAnalytics {
	out := make([]SalesAnalytics, 0, len(in))
	for _, m := range in {
		row := SalesAnalytics{
			OrderID:        int32(m.OrderID),
			CustomerID:     int32(m.CustomerID),
			OrderDate:      m.OrderDate.UTC().Format(DateLayout),
			OrderYear:      int32(m.OrderYear),
			OrderMonth:     int32(m.OrderMonth),
			OrderQuarter:   int32(m.OrderQuarter),
			Status:         m.Status,
			TotalAmount:    m.TotalAmount,
			UniqueProducts: int64(m.UniqueProducts),
			AvgItemPrice:   m.AvgItemPrice,
		}
		if m.TotalItems != nil {
			t := int64(*m.TotalItems)
			row.TotalItems = &t
		}
		out = append(out, row)
	}
	return out
}

// Payments selects the payment analytics columns.
func Payments(in []transform.PaymentMethodStats) []PaymentAnalytics {
	out := make([]PaymentAnalytics, 0, len(in))
	for _, m := range in {
		out = append(out, PaymentAnalytics{
			PaymentMethod:          m.PaymentMethod,
			TotalTransactions:      int64(m.TotalTransactions),
			SuccessfulTransactions: int64(m.SuccessfulTransactions),
			TotalAmount:            m.TotalAmount,
			AvgAmount:              m.AvgAmount,
			TotalRefunded:          m.TotalRefunded,
			SuccessRate:            m.SuccessRate,
		})
	}
	return out
}

// FormatTime renders t for export, or returns nil for a nil time so JSON
// null survives projection.
func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateLayout)
	return &s
}
