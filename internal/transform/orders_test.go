package transform

import (
	"testing"
	"time"

	"shopetl/internal/schema"
)

func TestOrders_Aggregates(t *testing.T) {
	orders := []schema.Order{
		{
			OrderID:     10,
			CustomerID:  1,
			OrderDate:   time.Date(2024, 5, 12, 14, 30, 0, 0, time.UTC), // a Sunday
			Status:      "Delivered",
			TotalAmount: 120,
		},
	}
	items := []schema.OrderItem{
		{OrderItemID: 1, OrderID: 10, ProductID: 7, Quantity: 2, UnitPrice: 10, TotalPrice: 20},
		{OrderItemID: 2, OrderID: 10, ProductID: 8, Quantity: 1, UnitPrice: 30, TotalPrice: 30},
	}

	out := Orders(orders, items)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	m := out[0]

	if m.TotalItems == nil || *m.TotalItems != 3 {
		t.Errorf("TotalItems = %v, want 3", m.TotalItems)
	}
	if m.UniqueProducts != 2 {
		t.Errorf("UniqueProducts = %d, want 2", m.UniqueProducts)
	}
	if m.AvgItemPrice == nil || *m.AvgItemPrice != 20 {
		t.Errorf("AvgItemPrice = %v, want 20", m.AvgItemPrice)
	}
}

/*
TestOrders_NoItems verifies the null semantics of the left join: sums and
averages over an empty item group stay nil while the distinct count is zero.
*/
func TestOrders_NoItems(t *testing.T) {
	orders := []schema.Order{
		{OrderID: 11, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	m := Orders(orders, nil)[0]
	if m.TotalItems != nil {
		t.Errorf("TotalItems = %v, want nil", *m.TotalItems)
	}
	if m.AvgItemPrice != nil {
		t.Errorf("AvgItemPrice = %v, want nil", *m.AvgItemPrice)
	}
	if m.UniqueProducts != 0 {
		t.Errorf("UniqueProducts = %d, want 0", m.UniqueProducts)
	}
}

func TestOrders_CalendarColumns(t *testing.T) {
	// 2024-05-12 is a Sunday; day-of-week numbering is 1=Sunday..7=Saturday.
	d := time.Date(2024, 5, 12, 14, 30, 0, 0, time.UTC)
	m := Orders([]schema.Order{{OrderID: 1, OrderDate: d}}, nil)[0]

	if m.OrderYear != 2024 || m.OrderMonth != 5 || m.OrderQuarter != 2 {
		t.Errorf("year/month/quarter = %d/%d/%d, want 2024/5/2", m.OrderYear, m.OrderMonth, m.OrderQuarter)
	}
	if m.OrderDayOfWeek != 1 {
		t.Errorf("OrderDayOfWeek = %d, want 1 (Sunday)", m.OrderDayOfWeek)
	}
	if m.OrderHour != 14 {
		t.Errorf("OrderHour = %d, want 14", m.OrderHour)
	}
}

func TestQuarterOf(t *testing.T) {
	cases := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1}, {time.March, 1},
		{time.April, 2}, {time.June, 2},
		{time.July, 3}, {time.September, 3},
		{time.October, 4}, {time.December, 4},
	}
	for _, c := range cases {
		d := time.Date(2024, c.month, 15, 0, 0, 0, 0, time.UTC)
		if got := quarterOf(d); got != c.want {
			t.Errorf("quarterOf(%s) = %d, want %d", c.month, got, c.want)
		}
	}
}
