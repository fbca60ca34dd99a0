package housing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatPercent(t *testing.T) {
	var nilFloat *float64
	half := 0.5
	tests := []struct {
		name     string
		value    any
		decimals int
		want     string
	}{
		{"one decimal", 0.255, 1, "25.5%"},
		{"nil", nil, 1, "N/A"},
		{"nil pointer", nilFloat, 1, "N/A"},
		{"pointer", &half, 0, "50%"},
		{"undefined rate", Rate{}, 1, "N/A"},
		{"rate", NewRate(0.125), 2, "12.50%"},
		{"zero decimals", 0.666, 0, "67%"},
		{"integer", 1, 1, "100.0%"},
		{"string", "0.1", 1, "10.0%"},
		{"not a number", "abc", 1, "NaN%"},
		{"NaN", math.NaN(), 1, "NaN%"},
		{"negative decimals", 0.5, -2, "50%"},
		{"binary below a tie", 0.01005, 2, "1.00%"},
		{"binary below a tie, 33%", 0.33345, 2, "33.34%"},
		{"exact tie", 0.125, 0, "13%"},
		{"negative tie", -0.125, 0, "-13%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercent(tt.value, tt.decimals); got != tt.want {
				t.Errorf("FormatPercent(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "N/A"},
		{"small", 950, "$950"},
		{"thousands", 1234, "$1,234"},
		{"millions", 1234567.5, "$1,234,567.5"},
		{"three fraction digits", 0.1234, "$0.123"},
		{"rounded fraction", 2.0005, "$2.001"},
		{"negative", -1500, "$-1,500"},
		{"money", USD(1250.25), "$1,250.25"},
		{"decimal", decimal.RequireFromString("1000000"), "$1,000,000"},
		{"string", "42", "$42"},
		{"NaN", math.NaN(), "$NaN"},
		{"undefined rate", Rate{}, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.value); got != tt.want {
				t.Errorf("FormatCurrency(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRate_String(t *testing.T) {
	if got := NewRate(0.5).String(); got != "50.0%" {
		t.Errorf("NewRate(0.5).String() = %q", got)
	}
	if got := NewRate(math.NaN()).String(); got != "N/A" {
		t.Errorf("NewRate(NaN).String() = %q", got)
	}
}

func TestRate_JSON(t *testing.T) {
	b, err := Rate{}.MarshalJSON()
	if err != nil || string(b) != "null" {
		t.Errorf("Rate{}.MarshalJSON() = %s, %v", b, err)
	}
	var r Rate
	if err := r.UnmarshalJSON([]byte("0.25")); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !r.Equal(NewRate(0.25)) {
		t.Errorf("UnmarshalJSON(0.25) = %v", r)
	}
	if err := r.UnmarshalJSON([]byte("null")); err != nil || r.Valid() {
		t.Errorf("UnmarshalJSON(null) = %v, %v", r, err)
	}
}
