package export

import (
	"strings"
	"testing"
	"time"

	"shopetl/pkg/records"
)

/*
TestEncodeCSV_EmptyIsBracketLiteral pins the representation of an empty
result set: the literal "[]", not a header-only CSV. Historical exports carry
those bytes and downstream consumers match on them.
*/
func TestEncodeCSV_EmptyIsBracketLiteral(t *testing.T) {
	got, err := EncodeCSV([]string{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("empty CSV = %q, want %q", got, "[]")
	}
}

func TestEncodeCSV_HeaderAndRows(t *testing.T) {
	rows := []records.Record{
		{"id": 1, "name": "alpha", "note": nil},
		{"id": 2, "name": "beta", "note": "x,y"},
	}

	got, err := EncodeCSV([]string{"id", "name", "note"}, rows)
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), got)
	}
	if lines[0] != "id,name,note" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1,alpha," {
		t.Errorf("row 1 = %q, want nil rendered as empty cell", lines[1])
	}
	if lines[2] != `2,beta,"x,y"` {
		t.Errorf("row 2 = %q, want quoted comma value", lines[2])
	}
}

func TestEncodeCSV_TimeFormatting(t *testing.T) {
	rows := []records.Record{
		{"at": time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)},
	}
	got, err := EncodeCSV([]string{"at"}, rows)
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}
	if !strings.Contains(string(got), "2024-05-01 08:30:00") {
		t.Errorf("CSV = %q, want datetime layout", got)
	}
}

func TestJSONSafe_TimeAndBytes(t *testing.T) {
	rec := records.Record{
		"at":  time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		"raw": []byte("hello"),
		"n":   int64(7),
	}

	safe, ok := jsonSafe(rec).(map[string]any)
	if !ok {
		t.Fatalf("jsonSafe returned %T, want map", jsonSafe(rec))
	}
	if safe["at"] != "2024-05-01 08:30:00" {
		t.Errorf("at = %v", safe["at"])
	}
	if safe["raw"] != "hello" {
		t.Errorf("raw = %v", safe["raw"])
	}
	if safe["n"] != int64(7) {
		t.Errorf("n = %v, want untouched int64", safe["n"])
	}
}

func TestEncodeJSON_RecordSlice(t *testing.T) {
	rows := []records.Record{
		{"id": 1, "when": time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
	}
	got, err := encodeJSON(rows)
	if err != nil {
		t.Fatalf("encodeJSON: %v", err)
	}
	s := string(got)
	if !strings.Contains(s, `"when": "2024-01-02 03:04:05"`) {
		t.Errorf("JSON = %s", s)
	}
}
