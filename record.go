package housing

import (
	"maps"
	"slices"
)

// Field names shared by the housing datasets.
const (
	FieldDenied        = "denied"
	FieldRaceEthnicity = "race_ethnicity"
	FieldIncome        = "income_1000s"
	FieldIncomeBracket = "income_bracket"
)

// Record is one observation, like a mortgage application or an eviction case.
// Values are scalars: strings, numbers, booleans or nil.
type Record map[string]any

// Dataset is an ordered sequence of records sharing the same fields.
// The schema is assumed, never validated.
type Dataset []Record

// Get returns the value of field and whether the field is present.
func (r Record) Get(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// Number returns the numeric value of field. A missing field is NaN.
func (r Record) Number(field string) float64 {
	v, ok := r[field]
	if !ok {
		return nan
	}
	return Number(v)
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	c := make(Record, len(r)+1)
	maps.Copy(c, r)
	return c
}

// With returns a copy of the record with field set to value.
// The receiver is left untouched.
func (r Record) With(field string, value any) Record {
	c := r.Clone()
	c[field] = value
	return c
}

// Fields returns the record's field names in alphabetical order.
func (r Record) Fields() []string {
	return slices.Sorted(maps.Keys(r))
}

// Filter returns the records for which keep returns true.
func (d Dataset) Filter(keep func(Record) bool) Dataset {
	res := make(Dataset, 0, len(d))
	for _, r := range d {
		if keep(r) {
			res = append(res, r)
		}
	}
	return res
}

// Where returns the records whose field equals value.
// A missing field never matches, nor does NaN.
func (d Dataset) Where(field string, value any) Dataset {
	return d.Filter(func(r Record) bool {
		v, ok := r[field]
		return ok && sameValue(v, value)
	})
}

// Map returns a new dataset made of f applied to each record.
func (d Dataset) Map(f func(Record) Record) Dataset {
	res := make(Dataset, len(d))
	for i, r := range d {
		res[i] = f(r)
	}
	return res
}

// Fields returns the union of the field names used in the dataset, in
// order of first appearance. Within a record, fields are visited in
// alphabetical order.
func (d Dataset) Fields() []string {
	seen := make(map[string]bool)
	var fields []string
	for _, r := range d {
		for _, f := range r.Fields() {
			if !seen[f] {
				seen[f] = true
				fields = append(fields, f)
			}
		}
	}
	return fields
}
