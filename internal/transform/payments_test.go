package transform

import (
	"testing"

	"shopetl/internal/schema"
)

func TestPaymentMethods_SuccessRate(t *testing.T) {
	in := []schema.Payment{
		{PaymentID: 1, PaymentMethod: "Credit Card", PaymentStatus: "Completed", Amount: 100},
		{PaymentID: 2, PaymentMethod: "Credit Card", PaymentStatus: "Completed", Amount: 50},
		{PaymentID: 3, PaymentMethod: "Credit Card", PaymentStatus: "Failed", Amount: 25},
	}

	out := PaymentMethods(in)
	if len(out) != 1 {
		t.Fatalf("got %d methods, want 1", len(out))
	}
	s := out[0]

	if s.TotalTransactions != 3 || s.SuccessfulTransactions != 2 {
		t.Errorf("transactions = %d/%d, want 3/2", s.TotalTransactions, s.SuccessfulTransactions)
	}
	// 2/3 * 100 rounded to two decimals.
	if s.SuccessRate != 66.67 {
		t.Errorf("SuccessRate = %v, want 66.67", s.SuccessRate)
	}
	if s.TotalAmount != 175 {
		t.Errorf("TotalAmount = %v, want 175", s.TotalAmount)
	}
}

func TestPaymentMethods_Refunds(t *testing.T) {
	refund := 30.0
	in := []schema.Payment{
		{PaymentID: 1, PaymentMethod: "PayPal", PaymentStatus: "Refunded", Amount: 60, RefundAmount: &refund},
		{PaymentID: 2, PaymentMethod: "PayPal", PaymentStatus: "Completed", Amount: 40},
	}

	s := PaymentMethods(in)[0]
	if s.TotalRefunded != 30 {
		t.Errorf("TotalRefunded = %v, want 30", s.TotalRefunded)
	}
	if s.AvgAmount != 50 {
		t.Errorf("AvgAmount = %v, want 50", s.AvgAmount)
	}
}

/*
TestPaymentMethods_SortedByMethod verifies the deterministic output ordering:
map iteration order must never leak into the export.
*/
func TestPaymentMethods_SortedByMethod(t *testing.T) {
	in := []schema.Payment{
		{PaymentID: 1, PaymentMethod: "PayPal", PaymentStatus: "Completed", Amount: 1},
		{PaymentID: 2, PaymentMethod: "Credit Card", PaymentStatus: "Completed", Amount: 1},
		{PaymentID: 3, PaymentMethod: "Gift Card", PaymentStatus: "Completed", Amount: 1},
	}

	out := PaymentMethods(in)
	want := []string{"Credit Card", "Gift Card", "PayPal"}
	for i, w := range want {
		if out[i].PaymentMethod != w {
			t.Fatalf("out[%d] = %q, want %q", i, out[i].PaymentMethod, w)
		}
	}
}

func TestPaymentMethods_Empty(t *testing.T) {
	if out := PaymentMethods(nil); len(out) != 0 {
		t.Fatalf("got %d methods, want 0", len(out))
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{66.666666, 66.67},
		{33.333333, 33.33},
		{100, 100},
		{0, 0},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Errorf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
