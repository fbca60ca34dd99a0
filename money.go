package housing

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in US dollars, like a monthly rent or a yearly wage.
type Money struct {
	value decimal.Decimal
}

// USD returns the dollar amount value.
func USD[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float32:
		return Money{value: decimal.NewFromFloat32(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Money{value: decimal.NewFromInt32(v)}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) Decimal() decimal.Decimal { return m.value }

// maxCurrencyFraction is the largest number of fraction digits displayed.
const maxCurrencyFraction = 3

// String renders the amount the way en-US locales do: a "$", thousands
// separated by ",", at most three fraction digits and no trailing zeros.
// The sign follows the "$".
func (m Money) String() string {
	d := m.value.Round(maxCurrencyFraction)
	// String drops trailing zeros, so the fraction digits are the ones to keep.
	s := d.String()
	fraction := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		fraction = len(s) - i - 1
	}
	shifted := d.Shift(int32(fraction))
	if shifted.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return "$" + s
	}
	f := money.NewFormatter(fraction, ".", ",", "", "1")
	return "$" + f.Format(shifted.IntPart())
}

// MarshalJSON encodes the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON decodes a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
