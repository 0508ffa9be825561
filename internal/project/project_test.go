package project

import (
	"testing"
	"time"

	"shopetl/internal/schema"
	"shopetl/internal/transform"
)

/*
TestCustomers_ProjectionPreservesIdentity verifies that projection only
selects columns: the id and the derived tier arrive in the output unchanged.
*/
func TestCustomers_ProjectionPreservesIdentity(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	in := transform.Customers([]schema.Customer{
		{
			CustomerID:       1,
			FirstName:        "Grace",
			LastName:         "Hopper",
			RegistrationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			TotalSpent:       2500,
		},
	}, now)

	out := Customers(in)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	row := out[0]

	if row.CustomerID != 1 {
		t.Errorf("CustomerID = %d, want 1", row.CustomerID)
	}
	if row.FullName != "Grace Hopper" {
		t.Errorf("FullName = %q", row.FullName)
	}
	if row.ValueTier != "High Value" {
		t.Errorf("ValueTier = %q, want High Value", row.ValueTier)
	}
	if row.TotalSpent != 2500 {
		t.Errorf("TotalSpent = %v, want 2500", row.TotalSpent)
	}
}

func TestCustomers_NullPassesThrough(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	in := transform.Customers([]schema.Customer{
		{CustomerID: 2, RegistrationDate: now},
	}, now)

	row := Customers(in)[0]
	if row.DaysSinceLastPurchase != nil {
		t.Errorf("DaysSinceLastPurchase = %v, want nil", *row.DaysSinceLastPurchase)
	}
}

func TestSales_NullItemAggregates(t *testing.T) {
	in := transform.Orders([]schema.Order{
		{OrderID: 5, OrderDate: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
	}, nil)

	row := Sales(in)[0]
	if row.TotalItems != nil {
		t.Errorf("TotalItems = %v, want nil", *row.TotalItems)
	}
	if row.AvgItemPrice != nil {
		t.Errorf("AvgItemPrice = %v, want nil", *row.AvgItemPrice)
	}
	if row.OrderDate != "2024-03-01 09:00:00" {
		t.Errorf("OrderDate = %q", row.OrderDate)
	}
	if row.OrderQuarter != 1 {
		t.Errorf("OrderQuarter = %d, want 1", row.OrderQuarter)
	}
}

func TestProducts_NullAggregates(t *testing.T) {
	in := transform.Products([]schema.Product{
		{ProductID: 3, ProductName: "Widget", Price: 10, StockQuantity: 4},
	}, nil, nil)

	row := Products(in)[0]
	if row.TotalQuantitySold != nil {
		t.Errorf("TotalQuantitySold = %v, want nil", *row.TotalQuantitySold)
	}
	if row.AvgRating != nil {
		t.Errorf("AvgRating = %v, want nil", *row.AvgRating)
	}
	if row.RatingCategory != "Poor" {
		t.Errorf("RatingCategory = %q, want Poor", row.RatingCategory)
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(nil); got != nil {
		t.Fatalf("FormatTime(nil) = %v, want nil", *got)
	}
	d := time.Date(2024, 2, 29, 13, 5, 0, 0, time.UTC)
	if got := FormatTime(&d); got == nil || *got != "2024-02-29 13:05:00" {
		t.Fatalf("FormatTime = %v", got)
	}
}
