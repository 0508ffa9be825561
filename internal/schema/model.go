// Package schema declares the typed entity records for the six source tables
// and the column contracts the source adapters select against. Nullable
// columns use pointer fields; everything else is scanned as NOT NULL and a
// NULL there surfaces as a query error at the adapter boundary.
package schema

import "time"

// Customer is one row of the customers table.
type Customer struct {
	CustomerID       int        `db:"customer_id" json:"customer_id"`
	FirstName        string     `db:"first_name" json:"first_name"`
	LastName         string     `db:"last_name" json:"last_name"`
	Email            string     `db:"email" json:"email"`
	Phone            string     `db:"phone" json:"phone"`
	Address          string     `db:"address" json:"address"`
	City             string     `db:"city" json:"city"`
	State            string     `db:"state" json:"state"`
	ZipCode          string     `db:"zip_code" json:"zip_code"`
	Country          string     `db:"country" json:"country"`
	RegistrationDate time.Time  `db:"registration_date" json:"registration_date"`
	CustomerSegment  string     `db:"customer_segment" json:"customer_segment"`
	TotalSpent       float64    `db:"total_spent" json:"total_spent"`
	LastPurchaseDate *time.Time `db:"last_purchase_date" json:"last_purchase_date"`
}

// Order is one row of the orders table.
type Order struct {
	OrderID         int       `db:"order_id" json:"order_id"`
	CustomerID      int       `db:"customer_id" json:"customer_id"`
	OrderDate       time.Time `db:"order_date" json:"order_date"`
	Status          string    `db:"status" json:"status"`
	TotalAmount     float64   `db:"total_amount" json:"total_amount"`
	ShippingAddress string    `db:"shipping_address" json:"shipping_address"`
	ShippingCity    string    `db:"shipping_city" json:"shipping_city"`
	ShippingState   string    `db:"shipping_state" json:"shipping_state"`
	ShippingZip     string    `db:"shipping_zip" json:"shipping_zip"`
	ShippingCost    float64   `db:"shipping_cost" json:"shipping_cost"`
	TaxAmount       float64   `db:"tax_amount" json:"tax_amount"`
	DiscountAmount  float64   `db:"discount_amount" json:"discount_amount"`
	PromoCode       *string   `db:"promo_code" json:"promo_code"`
}

// Product is one row of the products table.
type Product struct {
	ProductID     int       `db:"product_id" json:"product_id"`
	ProductName   string    `db:"product_name" json:"product_name"`
	Category      string    `db:"category" json:"category"`
	Subcategory   string    `db:"subcategory" json:"subcategory"`
	Brand         string    `db:"brand" json:"brand"`
	Price         float64   `db:"price" json:"price"`
	Cost          float64   `db:"cost" json:"cost"`
	StockQuantity int       `db:"stock_quantity" json:"stock_quantity"`
	Description   string    `db:"description" json:"description"`
	CreatedDate   time.Time `db:"created_date" json:"created_date"`
	IsActive      bool      `db:"is_active" json:"is_active"`
}

// OrderItem is one row of the order_items table. Many-to-one to both Order
// and Product.
type OrderItem struct {
	OrderItemID int     `db:"order_item_id" json:"order_item_id"`
	OrderID     int     `db:"order_id" json:"order_id"`
	ProductID   int     `db:"product_id" json:"product_id"`
	Quantity    int     `db:"quantity" json:"quantity"`
	UnitPrice   float64 `db:"unit_price" json:"unit_price"`
	TotalPrice  float64 `db:"total_price" json:"total_price"`
}

// Review is one row of the reviews table. Rating is expected in 1..5 but the
// source does not enforce it.
type Review struct {
	ReviewID           int       `db:"review_id" json:"review_id"`
	CustomerID         int       `db:"customer_id" json:"customer_id"`
	ProductID          int       `db:"product_id" json:"product_id"`
	OrderID            int       `db:"order_id" json:"order_id"`
	Rating             int       `db:"rating" json:"rating"`
	ReviewTitle        string    `db:"review_title" json:"review_title"`
	ReviewText         string    `db:"review_text" json:"review_text"`
	ReviewDate         time.Time `db:"review_date" json:"review_date"`
	IsVerifiedPurchase bool      `db:"is_verified_purchase" json:"is_verified_purchase"`
	HelpfulVotes       int       `db:"helpful_votes" json:"helpful_votes"`
}

// Payment is one row of the payments table.
type Payment struct {
	PaymentID     int        `db:"payment_id" json:"payment_id"`
	OrderID       int        `db:"order_id" json:"order_id"`
	PaymentMethod string     `db:"payment_method" json:"payment_method"`
	PaymentStatus string     `db:"payment_status" json:"payment_status"`
	Amount        float64    `db:"amount" json:"amount"`
	PaymentDate   time.Time  `db:"payment_date" json:"payment_date"`
	TransactionID string     `db:"transaction_id" json:"transaction_id"`
	RefundAmount  *float64   `db:"refund_amount" json:"refund_amount"`
	RefundDate    *time.Time `db:"refund_date" json:"refund_date"`
}
