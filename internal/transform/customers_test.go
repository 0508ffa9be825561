package transform

import (
	"testing"
	"time"

	"shopetl/internal/schema"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

/*
TestValueTier verifies the spending tier thresholds, including the exact
boundary values: the thresholds are checked top-down, so 2000.00 is High Value
while 1999.99 is Medium Value.
*/
func TestValueTier(t *testing.T) {
	cases := []struct {
		spent float64
		want  string
	}{
		{2500, "High Value"},
		{2000, "High Value"},
		{1999.99, "Medium Value"},
		{1000, "Medium Value"},
		{999.99, "Low Value"},
		{500, "Low Value"},
		{499.99, "Very Low Value"},
		{0, "Very Low Value"},
	}
	for _, c := range cases {
		if got := valueTier(c.spent); got != c.want {
			t.Errorf("valueTier(%v) = %q, want %q", c.spent, got, c.want)
		}
	}
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)
	if got := daysBetween(a, b); got != 1 {
		t.Fatalf("daysBetween = %d, want 1", got)
	}
}

func TestCustomers_DerivedColumns(t *testing.T) {
	now := date(2024, 6, 1)
	last := date(2024, 5, 1) // 31 days ago
	in := []schema.Customer{
		{
			CustomerID:       1,
			FirstName:        "Ada",
			LastName:         "Lovelace",
			RegistrationDate: date(2024, 1, 1),
			TotalSpent:       2500,
			LastPurchaseDate: &last,
		},
	}

	out := Customers(in, now)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	m := out[0]

	if m.FullName != "Ada Lovelace" {
		t.Errorf("FullName = %q", m.FullName)
	}
	if m.CustomerLifespanDays != 152 {
		t.Errorf("CustomerLifespanDays = %d, want 152", m.CustomerLifespanDays)
	}
	if m.DaysSinceLastPurchase == nil || *m.DaysSinceLastPurchase != 31 {
		t.Errorf("DaysSinceLastPurchase = %v, want 31", m.DaysSinceLastPurchase)
	}
	if !m.IsActiveCustomer {
		t.Errorf("IsActiveCustomer = false, want true")
	}
	if m.ValueTier != "High Value" {
		t.Errorf("ValueTier = %q", m.ValueTier)
	}
}

/*
TestCustomers_NeverPurchased verifies that a customer with no purchase history
keeps a nil DaysSinceLastPurchase and counts as inactive.
*/
func TestCustomers_NeverPurchased(t *testing.T) {
	now := date(2024, 6, 1)
	in := []schema.Customer{
		{CustomerID: 2, FirstName: "No", LastName: "Orders", RegistrationDate: date(2023, 6, 1)},
	}

	m := Customers(in, now)[0]
	if m.DaysSinceLastPurchase != nil {
		t.Errorf("DaysSinceLastPurchase = %v, want nil", *m.DaysSinceLastPurchase)
	}
	if m.IsActiveCustomer {
		t.Errorf("IsActiveCustomer = true, want false")
	}
}

func TestCustomers_ActivityBoundary(t *testing.T) {
	now := date(2024, 6, 1)
	at90 := date(2024, 3, 3) // exactly 90 days before now
	at91 := date(2024, 3, 2) // 91 days
	in := []schema.Customer{
		{CustomerID: 1, RegistrationDate: date(2023, 1, 1), LastPurchaseDate: &at90},
		{CustomerID: 2, RegistrationDate: date(2023, 1, 1), LastPurchaseDate: &at91},
	}

	out := Customers(in, now)
	if !out[0].IsActiveCustomer {
		t.Errorf("customer at 90 days should be active")
	}
	if out[1].IsActiveCustomer {
		t.Errorf("customer at 91 days should be inactive")
	}
}
