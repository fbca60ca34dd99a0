package housing

import (
	"reflect"
	"testing"
)

func TestRollupCount1(t *testing.T) {
	got := RollupCount1(evictions(), "county", "cases")
	want := Dataset{
		{"county": "Wake", "cases": 4},
		{"county": "Durham", "cases": 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RollupCount1() = %v, want %v", got, want)
	}
}

func TestRollupCount_SumEqualsLength(t *testing.T) {
	datasets := map[string]Dataset{
		"evictions": evictions(),
		"empty":     {},
		"missing keys": {
			{"county": "Wake"},
			{"other": 1},
			{"county": nil},
		},
	}
	for name, data := range datasets {
		t.Run(name, func(t *testing.T) {
			total := 0
			for _, r := range RollupCount1(data, "county", "n") {
				total += r["n"].(int)
			}
			if total != len(data) {
				t.Errorf("sum of counts = %d, want %d", total, len(data))
			}
		})
	}
}

func TestRollupCount_Empty(t *testing.T) {
	got := RollupCount1(Dataset{}, "county", "n")
	if got == nil || len(got) != 0 {
		t.Errorf("RollupCount1(empty) = %#v, want an empty dataset", got)
	}
}

func TestRollupCount_NilKeys(t *testing.T) {
	data := Dataset{
		{"race_ethnicity": "A"},
		{"race_ethnicity": nil},
		{},
		{"race_ethnicity": "A"},
	}
	got := RollupCount1(data, "race_ethnicity", "n")
	want := Dataset{
		{"race_ethnicity": "A", "n": 2},
		{"race_ethnicity": nil, "n": 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RollupCount1() = %v, want %v", got, want)
	}
}

func TestRollupCount_NumericKeys(t *testing.T) {
	data := Dataset{
		{"year": 2022},
		{"year": 2022.0},
		{"year": int64(2023)},
	}
	got := RollupCount1(data, "year", "n")
	want := Dataset{
		{"year": 2022, "n": 2},
		{"year": int64(2023), "n": 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RollupCount1() = %v, want %v", got, want)
	}
}

func TestRollupCount2(t *testing.T) {
	got := RollupCount2(evictions(), "county", "outcome", "cases")
	want := Dataset{
		{"county": "Wake", "outcome": "judgment", "cases": 3},
		{"county": "Wake", "outcome": "dismissed", "cases": 1},
		{"county": "Durham", "outcome": "dismissed", "cases": 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RollupCount2() = %v, want %v", got, want)
	}
}

func TestRollupCount3(t *testing.T) {
	got := RollupCount3(evictions(), "county", "year", "outcome", "cases")
	want := Dataset{
		{"county": "Wake", "year": 2022, "outcome": "judgment", "cases": 2},
		{"county": "Wake", "year": 2022, "outcome": "dismissed", "cases": 1},
		{"county": "Wake", "year": 2023, "outcome": "judgment", "cases": 1},
		{"county": "Durham", "year": 2022, "outcome": "dismissed", "cases": 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RollupCount3() = %v, want %v", got, want)
	}
	// only observed combinations: Durham never had a judgment nor a 2023 case.
	for _, r := range got {
		if r["county"] == "Durham" && (r["outcome"] == "judgment" || r["year"] == 2023) {
			t.Errorf("unexpected synthesized combination %v", r)
		}
	}
}

func TestRollup_Metrics(t *testing.T) {
	data := Dataset{
		app("A", 1, 40),
		app("A", 0, 60),
		app("B", 1, 100),
		{FieldRaceEthnicity: "C", FieldDenied: nil},
	}
	got := Rollup(data, []string{FieldRaceEthnicity},
		Count("n"),
		Sum("denied_total", FieldDenied),
		Mean("avg_income", FieldIncome),
	)
	want := Dataset{
		{FieldRaceEthnicity: "A", "n": 2, "denied_total": 1.0, "avg_income": 50.0},
		{FieldRaceEthnicity: "B", "n": 1, "denied_total": 1.0, "avg_income": 100.0},
		{FieldRaceEthnicity: "C", "n": 1, "denied_total": 0.0, "avg_income": nil},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rollup() = %v, want %v", got, want)
	}
}

func TestRollup_NoKeys(t *testing.T) {
	got := Rollup(evictions(), nil, Count("n"))
	want := Dataset{{"n": 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rollup() = %v, want %v", got, want)
	}
}

func TestMeanOf(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   float64
		wantOK bool
	}{
		{"empty", nil, 0, false},
		{"only nil", []any{nil, nil}, 0, false},
		{"booleans", []any{true, false, true, false}, 0.5, true},
		{"skip non numeric", []any{1, "x", nil, 3.0}, 2, true},
		{"numeric strings", []any{"1", "0"}, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Dataset
			for _, v := range tt.values {
				d = append(d, Record{"v": v})
			}
			got, ok := MeanOf(d, "v")
			if ok != tt.wantOK {
				t.Fatalf("MeanOf() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("MeanOf() = %v, want %v", got, tt.want)
			}
		})
	}
}
