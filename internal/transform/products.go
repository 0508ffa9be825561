package transform

import "shopetl/internal/schema"

// ProductMetrics is a product row left-joined with its aggregated sales and
// review facts plus the derived profitability columns.
//
// Sales and review aggregates are nullable for products that were never
// ordered or reviewed; counts are zero in that case.
type ProductMetrics struct {
	ProductID     int
	ProductName   string
	Category      string
	Subcategory   string
	Brand         string
	Price         float64
	Cost          float64
	StockQuantity int
	IsActive      bool

	TotalQuantitySold *int
	TotalRevenue      *float64
	AvgSellingPrice   *float64
	TimesOrdered      int

	AvgRating         *float64
	TotalReviews      int
	TotalHelpfulVotes *int

	ProfitMargin      float64
	InventoryTurnover *float64
	IsBestseller      bool
	RatingCategory    string
}

// Products aggregates order_items and reviews per product and joins the
// results onto products.
//
//	profit_margin      = (price - cost) / price when price > 0, else 0
//	inventory_turnover = total_quantity_sold / stock_quantity when stock > 0,
//	                     else 0; nil when the product never sold and stock > 0
//	is_bestseller      = total_quantity_sold >= 10 (false when never sold)
//	rating_category    = avg rating bucketed at 4.5 / 4.0 / 3.5 / 3.0, top-down
//	                     first match; an unreviewed product falls through to "Poor"
func Products(products []schema.Product, items []schema.OrderItem, reviews []schema.Review) []ProductMetrics {
	type salesAgg struct {
		quantity int
		revenue  float64
		priceSum float64
		orders   int
	}
	sales := make(map[int]*salesAgg)
	for _, it := range items {
		a := sales[it.ProductID]
		if a == nil {
			a = &salesAgg{}
			sales[it.ProductID] = a
		}
		a.quantity += it.Quantity
		a.revenue += it.TotalPrice
		a.priceSum += it.UnitPrice
		a.orders++
	}

	type reviewAgg struct {
		ratingSum int
		count     int
		votes     int
	}
	revs := make(map[int]*reviewAgg)
	for _, r := range reviews {
		a := revs[r.ProductID]
		if a == nil {
			a = &reviewAgg{}
			revs[r.ProductID] = a
		}
		a.ratingSum += r.Rating
		a.count++
		a.votes += r.HelpfulVotes
	}

	out := make([]ProductMetrics, 0, len(products))
	for _, p := range products {
		m := ProductMetrics{
			ProductID:     p.ProductID,
			ProductName:   p.ProductName,
			Category:      p.Category,
			Subcategory:   p.Subcategory,
			Brand:         p.Brand,
			Price:         p.Price,
			Cost:          p.Cost,
			StockQuantity: p.StockQuantity,
			IsActive:      p.IsActive,
		}

		if a, ok := sales[p.ProductID]; ok {
			q := a.quantity
			rev := a.revenue
			avg := a.priceSum / float64(a.orders)
			m.TotalQuantitySold = &q
			m.TotalRevenue = &rev
			m.AvgSellingPrice = &avg
			m.TimesOrdered = a.orders
		}
		if a, ok := revs[p.ProductID]; ok {
			avg := float64(a.ratingSum) / float64(a.count)
			votes := a.votes
			m.AvgRating = &avg
			m.TotalReviews = a.count
			m.TotalHelpfulVotes = &votes
		}

		if p.Price > 0 {
			m.ProfitMargin = (p.Price - p.Cost) / p.Price
		}

		switch {
		case p.StockQuantity <= 0:
			zero := 0.0
			m.InventoryTurnover = &zero
		case m.TotalQuantitySold != nil:
			t := float64(*m.TotalQuantitySold) / float64(p.StockQuantity)
			m.InventoryTurnover = &t
		}

		m.IsBestseller = m.TotalQuantitySold != nil && *m.TotalQuantitySold >= 10
		m.RatingCategory = ratingCategory(m.AvgRating)

		out = append(out, m)
	}
	return out
}

func ratingCategory(avg *float64) string {
	if avg == nil {
		return "Poor"
	}
	switch {
	case *avg >= 4.5:
		return "Excellent"
	case *avg >= 4.0:
		return "Good"
	case *avg >= 3.5:
		return "Average"
	case *avg >= 3.0:
		return "Below Average"
	default:
		return "Poor"
	}
}
