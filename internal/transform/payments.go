package transform

import (
	"math"
	"sort"

	"shopetl/internal/schema"
)

// PaymentMethodStats aggregates payments per method.
type PaymentMethodStats struct {
	PaymentMethod          string
	TotalTransactions      int
	SuccessfulTransactions int
	TotalAmount            float64
	AvgAmount              float64
	TotalRefunded          float64
	SuccessRate            float64 // percent, rounded to 2 decimals
}

// statusCompleted marks a successful payment in the source data.
const statusCompleted = "Completed"

// PaymentMethods groups payments by method and computes per-method success
// rates. success_rate = successful / total * 100, rounded to two decimals; a
// group with zero transactions yields 0 rather than dividing by zero. Output
// is sorted by method name.
func PaymentMethods(in []schema.Payment) []PaymentMethodStats {
	byMethod := map[string]*PaymentMethodStats{}
	for _, p := range in {
		s := byMethod[p.PaymentMethod]
		if s == nil {
			s = &PaymentMethodStats{PaymentMethod: p.PaymentMethod}
			byMethod[p.PaymentMethod] = s
		}
		s.TotalTransactions++
		if p.PaymentStatus == statusCompleted {
			s.SuccessfulTransactions++
		}
		s.TotalAmount += p.Amount
		if p.RefundAmount != nil {
			s.TotalRefunded += *p.RefundAmount
		}
	}

	out := make([]PaymentMethodStats, 0, len(byMethod))
	for _, s := range byMethod {
		if s.TotalTransactions > 0 {
			s.AvgAmount = s.TotalAmount / float64(s.TotalTransactions)
			s.SuccessRate = round2(float64(s.SuccessfulTransactions) / float64(s.TotalTransactions) * 100)
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentMethod < out[j].PaymentMethod })
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
