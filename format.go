package housing

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// NA is displayed in place of missing values.
const NA = "N/A"

// DefaultPercentDecimals is the number of decimals used by Rate.String.
const DefaultPercentDecimals = 1

// FormatPercent renders a fraction as a percentage with decimals places,
// like "25.5%". Missing values (nil, a nil pointer or an undefined Rate)
// render as "N/A".
func FormatPercent(value any, decimals int) string {
	f, ok := present(value)
	if !ok {
		return NA
	}
	return fixed(f*100, decimals) + "%"
}

// FormatCurrency renders a dollar amount like "$1,234.5". Missing values
// render as "N/A".
func FormatCurrency(value any) string {
	if m, ok := value.(Money); ok {
		return m.String()
	}
	if m, ok := value.(*Money); ok {
		if m == nil {
			return NA
		}
		return m.String()
	}
	f, ok := present(value)
	if !ok {
		return NA
	}
	if s, ok := nonFinite(f); ok {
		return "$" + s
	}
	return USD(f).String()
}

// present returns the numeric value of v unless v is missing.
func present(v any) (float64, bool) {
	switch v := v.(type) {
	case nil:
		return 0, false
	case Rate:
		return v.value, v.valid
	case *Rate:
		if v == nil || !v.valid {
			return 0, false
		}
		return v.value, true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	}
	return Number(v), true
}

// fixed renders f with exactly decimals places. Rounding applies to the
// exact binary value of f, half away from zero: 2.675 is stored as
// 2.67499999... and renders as "2.67".
func fixed(f float64, decimals int) string {
	if s, ok := nonFinite(f); ok {
		return s
	}
	if decimals < 0 {
		decimals = 0
	}
	return exact(f).StringFixed(int32(decimals))
}

// maxFloatDigits is enough fraction digits to write any float64 exactly.
const maxFloatDigits = 1074

// exact returns the decimal expansion of f, without the shortest
// representation rounding of decimal.NewFromFloat.
func exact(f float64) decimal.Decimal {
	d, err := decimal.NewFromString(new(big.Float).SetFloat64(f).Text('f', maxFloatDigits))
	if err != nil {
		// unreachable for finite values.
		return decimal.NewFromFloat(f)
	}
	return d
}

// nonFinite renders NaN and infinities the way the dashboards displayed them.
func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}
