package schema

// Entity names the six source tables. The adapter rejects anything else.
type Entity string

const (
	EntityCustomers  Entity = "customers"
	EntityOrders     Entity = "orders"
	EntityProducts   Entity = "products"
	EntityOrderItems Entity = "order_items"
	EntityReviews    Entity = "reviews"
	EntityPayments   Entity = "payments"
)

// Entities lists the source tables in extraction order.
func Entities() []Entity {
	return []Entity{
		EntityCustomers,
		EntityOrders,
		EntityProducts,
		EntityOrderItems,
		EntityReviews,
		EntityPayments,
	}
}

// Columns returns the ordered column list for an entity. The adapters build
// their SELECTs from this so that scan targets and columns can never drift.
// Returns nil for an unknown entity.
func Columns(e Entity) []string {
	switch e {
	case EntityCustomers:
		return []string{
			"customer_id", "first_name", "last_name", "email", "phone",
			"address", "city", "state", "zip_code", "country",
			"registration_date", "customer_segment", "total_spent", "last_purchase_date",
		}
	case EntityOrders:
		return []string{
			"order_id", "customer_id", "order_date", "status", "total_amount",
			"shipping_address", "shipping_city", "shipping_state", "shipping_zip",
			"shipping_cost", "tax_amount", "discount_amount", "promo_code",
		}
	case EntityProducts:
		return []string{
			"product_id", "product_name", "category", "subcategory", "brand",
			"price", "cost", "stock_quantity", "description", "created_date", "is_active",
		}
	case EntityOrderItems:
		return []string{
			"order_item_id", "order_id", "product_id", "quantity", "unit_price", "total_price",
		}
	case EntityReviews:
		return []string{
			"review_id", "customer_id", "product_id", "order_id", "rating",
			"review_title", "review_text", "review_date", "is_verified_purchase", "helpful_votes",
		}
	case EntityPayments:
		return []string{
			"payment_id", "order_id", "payment_method", "payment_status", "amount",
			"payment_date", "transaction_id", "refund_amount", "refund_date",
		}
	}
	return nil
}
