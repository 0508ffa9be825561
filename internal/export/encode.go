package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"shopetl/pkg/records"
)

// encodeJSON marshals v with indentation. Record maps are pre-normalized so
// that values the encoder cannot handle (times, driver byte slices, anything
// exotic) are rendered as strings instead of failing the whole export.
func encodeJSON(v any) ([]byte, error) {
	return json.MarshalIndent(jsonSafe(v), "", "  ")
}

// jsonSafe recursively replaces non-serializable values with their string
// form. Primitives and nils pass through untouched.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return t
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case []byte:
		return string(t)
	case records.Record:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonSafe(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonSafe(val)
		}
		return out
	case []records.Record:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonSafe(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonSafe(val)
		}
		return out
	default:
		if _, err := json.Marshal(t); err != nil {
			return fmt.Sprint(t)
		}
		return t
	}
}

// EncodeCSV renders a header row followed by one line per record, nil values
// as empty cells.
//
// An empty result set serializes to the literal "[]" rather than a
// header-only file. Historical exports carry those exact bytes and consumers
// match on them, so the representation cannot change.
func EncodeCSV(columns []string, rows []records.Record) ([]byte, error) {
	if len(rows) == 0 {
		return []byte("[]"), nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	line := make([]string, len(columns))
	for _, r := range rows {
		for i, col := range columns {
			v, ok := r[col]
			if !ok || v == nil {
				line[i] = ""
				continue
			}
			switch t := v.(type) {
			case string:
				line[i] = t
			case time.Time:
				line[i] = t.Format("2006-01-02 15:04:05")
			case []byte:
				line[i] = string(t)
			default:
				line[i] = fmt.Sprint(t)
			}
		}
		if err := w.Write(line); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
