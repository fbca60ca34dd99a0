package housing

import (
	"math"
	"reflect"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		value any
		want  float64
	}{
		{nil, 0},
		{true, 1},
		{false, 0},
		{3, 3},
		{int64(4), 4},
		{float32(0.5), 0.5},
		{"2.5", 2.5},
		{" ", 0},
		{NewRate(0.25), 0.25},
		{USD(12), 12},
	}
	for _, tt := range tests {
		if got := Number(tt.value); got != tt.want {
			t.Errorf("Number(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
	for _, v := range []any{"abc", []int{1}, Rate{}} {
		if got := Number(v); !math.IsNaN(got) {
			t.Errorf("Number(%#v) = %v, want NaN", v, got)
		}
	}
}

func TestRecord_With(t *testing.T) {
	r := Record{"a": 1}
	c := r.With("b", 2)
	if _, ok := r["b"]; ok {
		t.Error("With() modified the receiver")
	}
	if !reflect.DeepEqual(c, Record{"a": 1, "b": 2}) {
		t.Errorf("With() = %v", c)
	}
}

func TestRecord_Number(t *testing.T) {
	r := Record{"n": nil, "s": "7"}
	if got := r.Number("s"); got != 7 {
		t.Errorf("Number(s) = %v", got)
	}
	if got := r.Number("n"); got != 0 {
		t.Errorf("Number(n) = %v, want 0", got)
	}
	if got := r.Number("missing"); !math.IsNaN(got) {
		t.Errorf("Number(missing) = %v, want NaN", got)
	}
}

func TestDataset_Where(t *testing.T) {
	got := evictions().Where("year", 2023.0)
	if len(got) != 1 || got[0]["county"] != "Wake" {
		t.Errorf("Where(year, 2023) = %v", got)
	}
}

func TestDataset_Fields(t *testing.T) {
	data := Dataset{{"b": 1, "a": 2}, {"c": 3, "a": 1}}
	if got, want := data.Fields(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}
