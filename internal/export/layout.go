package export

import (
	"fmt"
	"time"
)

// TimestampLayout identifies a run. Every object a run writes embeds this
// timestamp, which is what guarantees runs never overwrite each other.
const TimestampLayout = "20060102_150405"

// RunTimestamp renders t as a run identifier.
func RunTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// AnalyticsKey is the batch job's columnar partition for one subject:
// {base}/analytics/{subject}/{ts}/part-00000.parquet
func AnalyticsKey(base, subject, ts string) string {
	return fmt.Sprintf("%s/analytics/%s/%s/part-00000.parquet", base, subject, ts)
}

// RawKey is the batch job's columnar partition for one raw entity:
// {base}/raw/{entity}/{ts}/part-00000.parquet
func RawKey(base, entity, ts string) string {
	return fmt.Sprintf("%s/raw/%s/%s/part-00000.parquet", base, entity, ts)
}

// QueryKey is the on-demand handler's JSON object for one analytical query:
// {prefix}/{subject}/{query}_{ts}.json
func QueryKey(prefix, subject, query, ts string) string {
	return fmt.Sprintf("%s/%s/%s_%s.json", prefix, subject, query, ts)
}

// SummaryKey is the on-demand handler's run summary object.
func SummaryKey(ts string) string {
	return fmt.Sprintf("processing_summary_%s.json", ts)
}

// MetadataKey holds an Athena external-table definition for reference.
func MetadataKey(table string) string {
	return fmt.Sprintf("metadata/athena_tables/%s_definition.sql", table)
}
