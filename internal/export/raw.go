package export

import (
	"time"

	"shopetl/internal/schema"
)

// Raw entity mirrors for the data-lake partitions. The batch job writes every
// extracted table unmodified alongside the analytics output, so each entity
// gets a parquet-tagged shape with dates rendered as UTF8 strings.

const (
	rawDateLayout     = "2006-01-02"
	rawDatetimeLayout = "2006-01-02 15:04:05"
)

type RawCustomer struct {
	CustomerID       int32   `parquet:"name=customer_id, type=INT32"`
	FirstName        string  `parquet:"name=first_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	LastName         string  `parquet:"name=last_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Email            string  `parquet:"name=email, type=BYTE_ARRAY, convertedtype=UTF8"`
	Phone            string  `parquet:"name=phone, type=BYTE_ARRAY, convertedtype=UTF8"`
	Address          string  `parquet:"name=address, type=BYTE_ARRAY, convertedtype=UTF8"`
	City             string  `parquet:"name=city, type=BYTE_ARRAY, convertedtype=UTF8"`
	State            string  `parquet:"name=state, type=BYTE_ARRAY, convertedtype=UTF8"`
	ZipCode          string  `parquet:"name=zip_code, type=BYTE_ARRAY, convertedtype=UTF8"`
	Country          string  `parquet:"name=country, type=BYTE_ARRAY, convertedtype=UTF8"`
	RegistrationDate string  `parquet:"name=registration_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerSegment  string  `parquet:"name=customer_segment, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalSpent       float64 `parquet:"name=total_spent, type=DOUBLE"`
	LastPurchaseDate *string `parquet:"name=last_purchase_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

type RawOrder struct {
	OrderID         int32   `parquet:"name=order_id, type=INT32"`
	CustomerID      int32   `parquet:"name=customer_id, type=INT32"`
	OrderDate       string  `parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status          string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalAmount     float64 `parquet:"name=total_amount, type=DOUBLE"`
	ShippingAddress string  `parquet:"name=shipping_address, type=BYTE_ARRAY, convertedtype=UTF8"`
	ShippingCity    string  `parquet:"name=shipping_city, type=BYTE_ARRAY, convertedtype=UTF8"`
	ShippingState   string  `parquet:"name=shipping_state, type=BYTE_ARRAY, convertedtype=UTF8"`
	ShippingZip     string  `parquet:"name=shipping_zip, type=BYTE_ARRAY, convertedtype=UTF8"`
	ShippingCost    float64 `parquet:"name=shipping_cost, type=DOUBLE"`
	TaxAmount       float64 `parquet:"name=tax_amount, type=DOUBLE"`
	DiscountAmount  float64 `parquet:"name=discount_amount, type=DOUBLE"`
	PromoCode       *string `parquet:"name=promo_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

type RawProduct struct {
	ProductID     int32   `parquet:"name=product_id, type=INT32"`
	ProductName   string  `parquet:"name=product_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category      string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	Subcategory   string  `parquet:"name=subcategory, type=BYTE_ARRAY, convertedtype=UTF8"`
	Brand         string  `parquet:"name=brand, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price         float64 `parquet:"name=price, type=DOUBLE"`
	Cost          float64 `parquet:"name=cost, type=DOUBLE"`
	StockQuantity int32   `parquet:"name=stock_quantity, type=INT32"`
	Description   string  `parquet:"name=description, type=BYTE_ARRAY, convertedtype=UTF8"`
	CreatedDate   string  `parquet:"name=created_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsActive      bool    `parquet:"name=is_active, type=BOOLEAN"`
}

type RawOrderItem struct {
	OrderItemID int32   `parquet:"name=order_item_id, type=INT32"`
	OrderID     int32   `parquet:"name=order_id, type=INT32"`
	ProductID   int32   `parquet:"name=product_id, type=INT32"`
	Quantity    int32   `parquet:"name=quantity, type=INT32"`
	UnitPrice   float64 `parquet:"name=unit_price, type=DOUBLE"`
	TotalPrice  float64 `parquet:"name=total_price, type=DOUBLE"`
}

type RawReview struct {
	ReviewID           int32  `parquet:"name=review_id, type=INT32"`
	CustomerID         int32  `parquet:"name=customer_id, type=INT32"`
	ProductID          int32  `parquet:"name=product_id, type=INT32"`
	OrderID            int32  `parquet:"name=order_id, type=INT32"`
	Rating             int32  `parquet:"name=rating, type=INT32"`
	ReviewTitle        string `parquet:"name=review_title, type=BYTE_ARRAY, convertedtype=UTF8"`
	ReviewText         string `parquet:"name=review_text, type=BYTE_ARRAY, convertedtype=UTF8"`
	ReviewDate         string `parquet:"name=review_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsVerifiedPurchase bool   `parquet:"name=is_verified_purchase, type=BOOLEAN"`
	HelpfulVotes       int32  `parquet:"name=helpful_votes, type=INT32"`
}

type RawPayment struct {
	PaymentID     int32    `parquet:"name=payment_id, type=INT32"`
	OrderID       int32    `parquet:"name=order_id, type=INT32"`
	PaymentMethod string   `parquet:"name=payment_method, type=BYTE_ARRAY, convertedtype=UTF8"`
	PaymentStatus string   `parquet:"name=payment_status, type=BYTE_ARRAY, convertedtype=UTF8"`
	Amount        float64  `parquet:"name=amount, type=DOUBLE"`
	PaymentDate   string   `parquet:"name=payment_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	TransactionID string   `parquet:"name=transaction_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RefundAmount  *float64 `parquet:"name=refund_amount, type=DOUBLE, repetitiontype=OPTIONAL"`
	RefundDate    *string  `parquet:"name=refund_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

func RawCustomers(in []schema.Customer) []RawCustomer {
	out := make([]RawCustomer, 0, len(in))
	for _, c := range in {
		out = append(out, RawCustomer{
			CustomerID:       int32(c.CustomerID),
			FirstName:        c.FirstName,
			LastName:         c.LastName,
			Email:            c.Email,
			Phone:            c.Phone,
			Address:          c.Address,
			City:             c.City,
			State:            c.State,
			ZipCode:          c.ZipCode,
			Country:          c.Country,
			RegistrationDate: c.RegistrationDate.Format(rawDateLayout),
			CustomerSegment:  c.CustomerSegment,
			TotalSpent:       c.TotalSpent,
			LastPurchaseDate: formatDate(c.LastPurchaseDate, rawDateLayout),
		})
	}
	return out
}

func RawOrders(in []schema.Order) []RawOrder {
	out := make([]RawOrder, 0, len(in))
	for _, o := range in {
		out = append(out, RawOrder{
			OrderID:         int32(o.OrderID),
			CustomerID:      int32(o.CustomerID),
			OrderDate:       o.OrderDate.Format(rawDatetimeLayout),
			Status:          o.Status,
			TotalAmount:     o.TotalAmount,
			ShippingAddress: o.ShippingAddress,
			ShippingCity:    o.ShippingCity,
			ShippingState:   o.ShippingState,
			ShippingZip:     o.ShippingZip,
			ShippingCost:    o.ShippingCost,
			TaxAmount:       o.TaxAmount,
			DiscountAmount:  o.DiscountAmount,
			PromoCode:       o.PromoCode,
		})
	}
	return out
}

func RawProducts(in []schema.Product) []RawProduct {
	out := make([]RawProduct, 0, len(in))
	for _, p := range in {
		out = append(out, RawProduct{
			ProductID:     int32(p.ProductID),
			ProductName:   p.ProductName,
			Category:      p.Category,
			Subcategory:   p.Subcategory,
			Brand:         p.Brand,
			Price:         p.Price,
			Cost:          p.Cost,
			StockQuantity: int32(p.StockQuantity),
			Description:   p.Description,
			CreatedDate:   p.CreatedDate.Format(rawDateLayout),
			IsActive:      p.IsActive,
		})
	}
	return out
}

func RawOrderItems(in []schema.OrderItem) []RawOrderItem {
	out := make([]RawOrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, RawOrderItem{
			OrderItemID: int32(it.OrderItemID),
			OrderID:     int32(it.OrderID),
			ProductID:   int32(it.ProductID),
			Quantity:    int32(it.Quantity),
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return out
}

func RawReviews(in []schema.Review) []RawReview {
	out := make([]RawReview, 0, len(in))
	for _, r := range in {
		out = append(out, RawReview{
			ReviewID:           int32(r.ReviewID),
			CustomerID:         int32(r.CustomerID),
			ProductID:          int32(r.ProductID),
			OrderID:            int32(r.OrderID),
			Rating:             int32(r.Rating),
			ReviewTitle:        r.ReviewTitle,
			ReviewText:         r.ReviewText,
			ReviewDate:         r.ReviewDate.Format(rawDatetimeLayout),
			IsVerifiedPurchase: r.IsVerifiedPurchase,
			HelpfulVotes:       int32(r.HelpfulVotes),
		})
	}
	return out
}

func RawPayments(in []schema.Payment) []RawPayment {
	out := make([]RawPayment, 0, len(in))
	for _, p := range in {
		out = append(out, RawPayment{
			PaymentID:     int32(p.PaymentID),
			OrderID:       int32(p.OrderID),
			PaymentMethod: p.PaymentMethod,
			PaymentStatus: p.PaymentStatus,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate.Format(rawDatetimeLayout),
			TransactionID: p.TransactionID,
			RefundAmount:  p.RefundAmount,
			RefundDate:    formatDate(p.RefundDate, rawDatetimeLayout),
		})
	}
	return out
}

func formatDate(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}
