package housing

// Metric reduces the records of a group into a single value stored under Name.
type Metric struct {
	Name   string
	Reduce func(Dataset) any
}

// Count counts the records of a group.
func Count(name string) Metric {
	return Metric{Name: name, Reduce: func(d Dataset) any { return len(d) }}
}

// Sum adds up field over the records of a group, skipping non numeric values.
func Sum(name, field string) Metric {
	return Metric{Name: name, Reduce: func(d Dataset) any { return SumOf(d, field) }}
}

// Mean averages field over the records of a group, skipping non numeric
// values. It yields nil when no value is numeric.
func Mean(name, field string) Metric {
	return Metric{Name: name, Reduce: func(d Dataset) any {
		m, ok := MeanOf(d, field)
		if !ok {
			return nil
		}
		return m
	}}
}

// SumOf returns the sum of the numeric values of field.
func SumOf(d Dataset, field string) float64 {
	var sum float64
	for _, r := range d {
		if v, ok := measure(r[field]); ok {
			sum += v
		}
	}
	return sum
}

// MeanOf returns the mean of the numeric values of field, and false if there
// are none.
func MeanOf(d Dataset, field string) (float64, bool) {
	var sum float64
	var n int
	for _, r := range d {
		if v, ok := measure(r[field]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return nan, false
	}
	return sum / float64(n), true
}

// Flatten turns a group tree into one record per leaf group. The key of each
// level is stored under the name at the same position in names, then every
// metric is computed over the leaf's records.
func Flatten(groups []*Group, names []string, metrics ...Metric) Dataset {
	res := make(Dataset, 0, len(groups))
	Walk(groups, func(path []any, g *Group) {
		r := make(Record, len(path)+len(metrics))
		for i, k := range path {
			if i < len(names) {
				r[names[i]] = k
			}
		}
		for _, m := range metrics {
			r[m.Name] = m.Reduce(g.Records)
		}
		res = append(res, r)
	})
	return res
}

// Rollup groups data by keyFields and computes metrics for each observed
// combination of keys. Without key fields, the whole dataset is one group.
func Rollup(data Dataset, keyFields []string, metrics ...Metric) Dataset {
	if len(keyFields) == 0 {
		r := make(Record, len(metrics))
		for _, m := range metrics {
			r[m.Name] = m.Reduce(data)
		}
		return Dataset{r}
	}
	keys := make([]KeyFunc, len(keyFields))
	for i, f := range keyFields {
		keys[i] = Field(f)
	}
	return Flatten(GroupBy(data, keys...), keyFields, metrics...)
}

// RollupCount counts the records of data for each observed combination of
// keyFields. The count is stored under countKey.
func RollupCount(data Dataset, countKey string, keyFields ...string) Dataset {
	return Rollup(data, keyFields, Count(countKey))
}

// RollupCount1 counts records per value of k1.
func RollupCount1(data Dataset, k1, countKey string) Dataset {
	return RollupCount(data, countKey, k1)
}

// RollupCount2 counts records per observed (k1, k2) pair.
func RollupCount2(data Dataset, k1, k2, countKey string) Dataset {
	return RollupCount(data, countKey, k1, k2)
}

// RollupCount3 counts records per observed (k1, k2, k3) triple.
func RollupCount3(data Dataset, k1, k2, k3, countKey string) Dataset {
	return RollupCount(data, countKey, k1, k2, k3)
}
