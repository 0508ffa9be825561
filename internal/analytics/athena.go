package analytics

import "fmt"

// TableDefinition describes one Athena external table layered over the JSON
// exports, stored in S3 as reference DDL rather than executed.
type TableDefinition struct {
	Name     string
	Columns  []string
	Location string
}

// TableDefinitions returns the external-table DDL targets for the data lake.
// Locations point at the subject directories so Athena reads every run.
func TableDefinitions(bucket string) []TableDefinition {
	return []TableDefinition{
		{
			Name: "customer_segments",
			Columns: []string{
				"customer_segment STRING",
				"customer_count BIGINT",
				"total_revenue DECIMAL(10,2)",
				"avg_spent DECIMAL(10,2)",
				"max_spent DECIMAL(10,2)",
				"min_spent DECIMAL(10,2)",
			},
			Location: fmt.Sprintf("s3://%s/analytics/customers/", bucket),
		},
		{
			Name: "product_performance",
			Columns: []string{
				"product_name STRING",
				"category STRING",
				"brand STRING",
				"times_ordered BIGINT",
				"total_quantity_sold BIGINT",
				"total_revenue DECIMAL(10,2)",
				"avg_selling_price DECIMAL(10,2)",
				"avg_rating DECIMAL(3,2)",
				"total_reviews BIGINT",
			},
			Location: fmt.Sprintf("s3://%s/analytics/products/", bucket),
		},
	}
}

// DDL renders the CREATE EXTERNAL TABLE statement for one definition.
func (d TableDefinition) DDL() string {
	cols := ""
	for i, c := range d.Columns {
		if i > 0 {
			cols += ", "
		}
		cols += c
	}
	return fmt.Sprintf(
		"CREATE EXTERNAL TABLE IF NOT EXISTS ecommerce_analytics.%s (\n    %s\n)\nROW FORMAT SERDE 'org.openx.data.jsonserde.JsonSerDe'\nLOCATION '%s'\n",
		d.Name, cols, d.Location,
	)
}
