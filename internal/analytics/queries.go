// Package analytics holds the on-demand analytical SQL query set and the
// runner/processor used by the serverless handler. The batch job computes its
// metrics in Go from extracted tables; this path instead pushes the
// aggregation into the database and exports the result sets as JSON.
package analytics

// Query is one analytical SQL statement exported under a subject.
type Query struct {
	Name    string
	Subject string
	SQL     string
}

// Queries returns the full query set in processing order, grouped by subject.
func Queries() []Query {
	return []Query{
		{
			Name:    "customer_segments",
			Subject: "customers",
			SQL: `
SELECT
    customer_segment,
    COUNT(*) as customer_count,
    SUM(total_spent) as total_revenue,
    AVG(total_spent) as avg_spent,
    MAX(total_spent) as max_spent,
    MIN(total_spent) as min_spent
FROM customers
GROUP BY customer_segment
ORDER BY total_revenue DESC`,
		},
		{
			Name:    "customer_lifetime_value",
			Subject: "customers",
			SQL: `
SELECT
    c.customer_id,
    CONCAT(c.first_name, ' ', c.last_name) as customer_name,
    c.customer_segment,
    COUNT(o.order_id) as total_orders,
    SUM(o.total_amount) as lifetime_value,
    AVG(o.total_amount) as avg_order_value,
    MIN(o.order_date) as first_purchase,
    MAX(o.order_date) as last_purchase
FROM customers c
LEFT JOIN orders o ON c.customer_id = o.customer_id
GROUP BY c.customer_id, c.first_name, c.last_name, c.customer_segment
ORDER BY lifetime_value DESC`,
		},
		{
			// Month-over-month growth of distinct active customers. The
			// LAG over the first month is NULL; the division propagates
			// that NULL into growth_rate_percent instead of erroring.
			Name:    "customer_retention",
			Subject: "customers",
			SQL: `
WITH monthly_customers AS (
    SELECT
        DATE_FORMAT(order_date, '%Y-%m') as month,
        COUNT(DISTINCT customer_id) as active_customers
    FROM orders
    GROUP BY DATE_FORMAT(order_date, '%Y-%m')
)
SELECT
    month,
    active_customers,
    LAG(active_customers) OVER (ORDER BY month) as prev_month_customers,
    ROUND(
        (active_customers - LAG(active_customers) OVER (ORDER BY month)) * 100.0 /
        LAG(active_customers) OVER (ORDER BY month), 2
    ) as growth_rate_percent
FROM monthly_customers
ORDER BY month`,
		},
		{
			Name:    "product_performance",
			Subject: "products",
			SQL: `
SELECT
    p.product_name,
    p.category,
    p.brand,
    COUNT(oi.order_item_id) as times_ordered,
    SUM(oi.quantity) as total_quantity_sold,
    SUM(oi.total_price) as total_revenue,
    AVG(oi.unit_price) as avg_selling_price,
    AVG(r.rating) as avg_rating,
    COUNT(r.review_id) as total_reviews
FROM products p
LEFT JOIN order_items oi ON p.product_id = oi.product_id
LEFT JOIN reviews r ON p.product_id = r.product_id
GROUP BY p.product_id, p.product_name, p.category, p.brand
ORDER BY total_revenue DESC`,
		},
		{
			Name:    "category_analysis",
			Subject: "products",
			SQL: `
SELECT
    p.category,
    COUNT(DISTINCT p.product_id) as total_products,
    COUNT(oi.order_item_id) as total_orders,
    SUM(oi.total_price) as category_revenue,
    AVG(oi.unit_price) as avg_price,
    SUM(oi.quantity) as total_quantity_sold
FROM products p
LEFT JOIN order_items oi ON p.product_id = oi.product_id
GROUP BY p.category
ORDER BY category_revenue DESC`,
		},
		{
			Name:    "inventory_turnover",
			Subject: "products",
			SQL: `
SELECT
    p.product_id,
    p.product_name,
    p.category,
    p.stock_quantity,
    COALESCE(SUM(oi.quantity), 0) as total_sold,
    CASE
        WHEN p.stock_quantity > 0 THEN
            COALESCE(SUM(oi.quantity) / p.stock_quantity, 0)
        ELSE 0
    END as turnover_ratio
FROM products p
LEFT JOIN order_items oi ON p.product_id = oi.product_id
GROUP BY p.product_id, p.product_name, p.category, p.stock_quantity
ORDER BY turnover_ratio DESC`,
		},
		{
			Name:    "monthly_sales",
			Subject: "sales",
			SQL: `
SELECT
    DATE_FORMAT(order_date, '%Y-%m') as month,
    COUNT(order_id) as total_orders,
    SUM(total_amount) as total_revenue,
    AVG(total_amount) as avg_order_value,
    SUM(shipping_cost) as total_shipping,
    SUM(tax_amount) as total_tax,
    SUM(discount_amount) as total_discounts
FROM orders
WHERE order_date >= '2023-01-01'
GROUP BY DATE_FORMAT(order_date, '%Y-%m')
ORDER BY month`,
		},
		{
			Name:    "geographic_sales",
			Subject: "sales",
			SQL: `
SELECT
    c.state,
    COUNT(DISTINCT c.customer_id) as customer_count,
    COUNT(o.order_id) as total_orders,
    SUM(o.total_amount) as total_revenue,
    AVG(o.total_amount) as avg_order_value
FROM customers c
LEFT JOIN orders o ON c.customer_id = o.customer_id
GROUP BY c.state
ORDER BY total_revenue DESC`,
		},
		{
			Name:    "payment_methods",
			Subject: "payments",
			SQL: `
SELECT
    p.payment_method,
    COUNT(p.payment_id) as transaction_count,
    SUM(p.amount) as total_amount,
    AVG(p.amount) as avg_transaction_amount,
    COUNT(p.payment_id) * 100.0 / (SELECT COUNT(*) FROM payments) as percentage_of_transactions
FROM payments p
GROUP BY p.payment_method
ORDER BY total_amount DESC`,
		},
		{
			Name:    "payment_success_rates",
			Subject: "payments",
			SQL: `
SELECT
    payment_method,
    COUNT(payment_id) as total_transactions,
    SUM(CASE WHEN payment_status = 'Completed' THEN 1 ELSE 0 END) as successful_transactions,
    ROUND(
        SUM(CASE WHEN payment_status = 'Completed' THEN 1 ELSE 0 END) * 100.0 /
        COUNT(payment_id), 2
    ) as success_rate
FROM payments
GROUP BY payment_method
ORDER BY success_rate DESC`,
		},
	}
}

// QueriesFor returns the queries belonging to one subject, preserving order.
func QueriesFor(subject string) []Query {
	var out []Query
	for _, q := range Queries() {
		if q.Subject == subject {
			out = append(out, q)
		}
	}
	return out
}
