package transform

import (
	"testing"

	"shopetl/internal/schema"
)

func TestProducts_ProfitMargin(t *testing.T) {
	in := []schema.Product{
		{ProductID: 1, Price: 100, Cost: 60, StockQuantity: 10},
		{ProductID: 2, Price: 0, Cost: 60, StockQuantity: 10}, // zero price guard
	}

	out := Products(in, nil, nil)
	if got := out[0].ProfitMargin; got != 0.4 {
		t.Errorf("ProfitMargin = %v, want 0.4", got)
	}
	if got := out[1].ProfitMargin; got != 0 {
		t.Errorf("ProfitMargin with zero price = %v, want 0", got)
	}
}

/*
TestProducts_InventoryTurnover covers the three-way split: zero stock forces a
zero turnover regardless of sales, positive stock with sales divides, and
positive stock with no sales stays null.
*/
func TestProducts_InventoryTurnover(t *testing.T) {
	products := []schema.Product{
		{ProductID: 1, Price: 10, StockQuantity: 0},
		{ProductID: 2, Price: 10, StockQuantity: 5},
		{ProductID: 3, Price: 10, StockQuantity: 5},
	}
	items := []schema.OrderItem{
		{OrderItemID: 1, OrderID: 1, ProductID: 1, Quantity: 4, UnitPrice: 10, TotalPrice: 40},
		{OrderItemID: 2, OrderID: 1, ProductID: 2, Quantity: 10, UnitPrice: 10, TotalPrice: 100},
	}

	out := Products(products, items, nil)

	if out[0].InventoryTurnover == nil || *out[0].InventoryTurnover != 0 {
		t.Errorf("zero stock: turnover = %v, want 0", out[0].InventoryTurnover)
	}
	if out[1].InventoryTurnover == nil || *out[1].InventoryTurnover != 2 {
		t.Errorf("sold 10 of stock 5: turnover = %v, want 2", out[1].InventoryTurnover)
	}
	if out[2].InventoryTurnover != nil {
		t.Errorf("never sold: turnover = %v, want nil", *out[2].InventoryTurnover)
	}
}

func TestProducts_Bestseller(t *testing.T) {
	products := []schema.Product{
		{ProductID: 1, Price: 10, StockQuantity: 100},
		{ProductID: 2, Price: 10, StockQuantity: 100},
		{ProductID: 3, Price: 10, StockQuantity: 100},
	}
	items := []schema.OrderItem{
		{OrderItemID: 1, OrderID: 1, ProductID: 1, Quantity: 10, UnitPrice: 10, TotalPrice: 100},
		{OrderItemID: 2, OrderID: 1, ProductID: 2, Quantity: 9, UnitPrice: 10, TotalPrice: 90},
	}

	out := Products(products, items, nil)
	if !out[0].IsBestseller {
		t.Errorf("10 sold should be a bestseller")
	}
	if out[1].IsBestseller {
		t.Errorf("9 sold should not be a bestseller")
	}
	if out[2].IsBestseller {
		t.Errorf("never sold should not be a bestseller")
	}
}

func TestRatingCategory(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	cases := []struct {
		avg  *float64
		want string
	}{
		{f(4.5), "Excellent"},
		{f(4.49), "Good"},
		{f(4.0), "Good"},
		{f(3.5), "Average"},
		{f(3.0), "Below Average"},
		{f(2.99), "Poor"},
		{nil, "Poor"},
	}
	for _, c := range cases {
		if got := ratingCategory(c.avg); got != c.want {
			t.Errorf("ratingCategory(%v) = %q, want %q", c.avg, got, c.want)
		}
	}
}

func TestProducts_ReviewAggregates(t *testing.T) {
	products := []schema.Product{{ProductID: 1, Price: 10, StockQuantity: 1}}
	reviews := []schema.Review{
		{ReviewID: 1, ProductID: 1, Rating: 5, HelpfulVotes: 3},
		{ReviewID: 2, ProductID: 1, Rating: 4, HelpfulVotes: 1},
	}

	m := Products(products, nil, reviews)[0]
	if m.AvgRating == nil || *m.AvgRating != 4.5 {
		t.Errorf("AvgRating = %v, want 4.5", m.AvgRating)
	}
	if m.TotalReviews != 2 {
		t.Errorf("TotalReviews = %d, want 2", m.TotalReviews)
	}
	if m.TotalHelpfulVotes == nil || *m.TotalHelpfulVotes != 4 {
		t.Errorf("TotalHelpfulVotes = %v, want 4", m.TotalHelpfulVotes)
	}
	if m.RatingCategory != "Excellent" {
		t.Errorf("RatingCategory = %q, want Excellent", m.RatingCategory)
	}
}
