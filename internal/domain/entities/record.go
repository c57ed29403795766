package entities

import (
	"encoding/json"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one open entity instance. Field sets vary per collection; the
// store only relies on "id". Values come straight from JSON, so numbers are
// usually float64 unless a caller stored a Go int.
type Record map[string]any

const FieldID = "id"

func (r Record) ID() int {
	id, _ := ToInt(r[FieldID])
	return id
}

// Clone copies the top-level mapping. Nested values are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return FormatValue(v)
	}
}

func (r Record) Int(key string) int {
	v, _ := ToInt(r[key])
	return v
}

func (r Record) Float(key string) float64 {
	v, _ := ToFloat(r[key])
	return v
}

// Decimal reads a monetary field. Missing or malformed values read as zero.
func (r Record) Decimal(key string) decimal.Decimal {
	return ToDecimal(r[key])
}

func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// IntSlice reads a JSON array of ids, skipping entries that are not integers.
func (r Record) IntSlice(key string) []int {
	raw, ok := r[key].([]any)
	if !ok {
		if ints, ok := r[key].([]int); ok {
			return ints
		}
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		if n, ok := ToInt(v); ok {
			out = append(out, n)
		}
	}
	return out
}

// Maps reads a JSON array of objects, skipping entries that are not objects.
func (r Record) Maps(key string) []map[string]any {
	switch raw := r[key].(type) {
	case []map[string]any:
		return raw
	case []any:
		out := make([]map[string]any, 0, len(raw))
		for _, v := range raw {
			switch m := v.(type) {
			case map[string]any:
				out = append(out, m)
			case Record:
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case decimal.Decimal:
		return n.InexactFloat64(), true
	}
	return 0, false
}

func ToDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}

// Number converts an amount back to a JSON-friendly value, keeping whole
// numbers as integers so stock counts stay integral in the document.
func Number(d decimal.Decimal) any {
	if d.IsInteger() && d.Abs().LessThan(decimal.NewFromInt(math.MaxInt32)) {
		return int(d.IntPart())
	}
	return d.InexactFloat64()
}

// FormatValue renders a field value the way equality filters compare it.
func FormatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case bool:
		return strconv.FormatBool(n)
	case json.Number:
		return n.String()
	case decimal.Decimal:
		return n.String()
	default:
		b, err := json.Marshal(n)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
