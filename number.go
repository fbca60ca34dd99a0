package housing

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var nan = math.NaN()

// Number converts a record value into a float64 the way the dashboards
// coerced values: numbers convert, booleans are 0 or 1, numeric strings
// parse, blank strings and nil are 0. Anything else is NaN.
func Number(v any) float64 {
	switch v := v.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case decimal.Decimal:
		return v.InexactFloat64()
	case Rate:
		return v.Float64()
	case Money:
		return v.value.InexactFloat64()
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// measure returns the numeric value of v for reducers, which skip nil and
// non-numeric values.
func measure(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if r, ok := v.(Rate); ok && !r.Valid() {
		return 0, false
	}
	f := Number(v)
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// isNumber reports whether v holds a Go numeric value.
func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}
