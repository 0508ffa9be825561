package source

import (
	"strings"

	"shopetl/internal/schema"
)

// Rows is the subset of row-iteration behavior shared by database/sql and
// pgx result sets. Adapters hand their concrete rows to the Scan* helpers so
// that the column-to-field mapping lives in exactly one place.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// SelectFor builds the SELECT statement for an entity from its column
// contract. Scan targets below are ordered to match schema.Columns.
func SelectFor(e schema.Entity) string {
	return "SELECT " + strings.Join(schema.Columns(e), ", ") + " FROM " + string(e)
}

func ScanCustomers(rows Rows) ([]schema.Customer, error) {
	var out []schema.Customer
	for rows.Next() {
		var c schema.Customer
		if err := rows.Scan(
			&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.Address, &c.City, &c.State, &c.ZipCode, &c.Country,
			&c.RegistrationDate, &c.CustomerSegment, &c.TotalSpent, &c.LastPurchaseDate,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func ScanOrders(rows Rows) ([]schema.Order, error) {
	var out []schema.Order
	for rows.Next() {
		var o schema.Order
		if err := rows.Scan(
			&o.OrderID, &o.CustomerID, &o.OrderDate, &o.Status, &o.TotalAmount,
			&o.ShippingAddress, &o.ShippingCity, &o.ShippingState, &o.ShippingZip,
			&o.ShippingCost, &o.TaxAmount, &o.DiscountAmount, &o.PromoCode,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func ScanProducts(rows Rows) ([]schema.Product, error) {
	var out []schema.Product
	for rows.Next() {
		var p schema.Product
		if err := rows.Scan(
			&p.ProductID, &p.ProductName, &p.Category, &p.Subcategory, &p.Brand,
			&p.Price, &p.Cost, &p.StockQuantity, &p.Description, &p.CreatedDate, &p.IsActive,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func ScanOrderItems(rows Rows) ([]schema.OrderItem, error) {
	var out []schema.OrderItem
	for rows.Next() {
		var it schema.OrderItem
		if err := rows.Scan(
			&it.OrderItemID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func ScanReviews(rows Rows) ([]schema.Review, error) {
	var out []schema.Review
	for rows.Next() {
		var r schema.Review
		if err := rows.Scan(
			&r.ReviewID, &r.CustomerID, &r.ProductID, &r.OrderID, &r.Rating,
			&r.ReviewTitle, &r.ReviewText, &r.ReviewDate, &r.IsVerifiedPurchase, &r.HelpfulVotes,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func ScanPayments(rows Rows) ([]schema.Payment, error) {
	var out []schema.Payment
	for rows.Next() {
		var p schema.Payment
		if err := rows.Scan(
			&p.PaymentID, &p.OrderID, &p.PaymentMethod, &p.PaymentStatus, &p.Amount,
			&p.PaymentDate, &p.TransactionID, &p.RefundAmount, &p.RefundDate,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
