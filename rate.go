package housing

import (
	"encoding/json"
	"math"
)

// Rate is a fraction, like a denial rate, that may be undefined.
// The zero value is undefined.
type Rate struct {
	value float64
	valid bool
}

// NewRate returns the rate v. NaN gives an undefined rate.
func NewRate(v float64) Rate {
	if math.IsNaN(v) {
		return Rate{}
	}
	return Rate{value: v, valid: true}
}

// Valid reports whether the rate is defined.
func (r Rate) Valid() bool { return r.valid }

// Float64 returns the rate value, NaN when undefined.
func (r Rate) Float64() float64 {
	if !r.valid {
		return nan
	}
	return r.value
}

// Equal compares rates with some precision. Undefined rates are equal.
func (r Rate) Equal(q Rate) bool {
	if !r.valid || !q.valid {
		return r.valid == q.valid
	}
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(r.value-q.value) < precision
}

// String renders the rate as a percentage with one decimal.
func (r Rate) String() string { return FormatPercent(r, DefaultPercentDecimals) }

// MarshalJSON encodes an undefined rate as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes a JSON number, or null as an undefined rate.
func (r *Rate) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*r = Rate{}
		return nil
	}
	*r = NewRate(*v)
	return nil
}
