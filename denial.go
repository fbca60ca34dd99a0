package housing

// Metric names of the denial tables.
const (
	MetricTotal      = "total"
	MetricDenied     = "denied"
	MetricDenialRate = "denial_rate"
)

// DenialRate returns the mean of the denied field over the records where
// filterKey equals filterValue. The rate is undefined when no record matches.
func DenialRate(data Dataset, filterKey string, filterValue any) Rate {
	m, ok := MeanOf(data.Where(filterKey, filterValue), FieldDenied)
	if !ok {
		return Rate{}
	}
	return NewRate(m)
}

// RiskRatio renders rate1/rate2 with two decimals, like "2.00". It returns
// "N/A" when rate2 is zero.
func RiskRatio(rate1, rate2 float64) string {
	if rate2 == 0 {
		return NA
	}
	return fixed(rate1/rate2, 2)
}

// DenialStats summarizes the denied field over a set of applications.
type DenialStats struct {
	Total      int     `json:"total"`       // number of applications
	Denied     float64 `json:"denied"`      // sum of the denied field
	DenialRate Rate    `json:"denial_rate"` // mean of the denied field
}

func denialStats(d Dataset) DenialStats {
	s := DenialStats{
		Total:  len(d),
		Denied: SumOf(d, FieldDenied),
	}
	if m, ok := MeanOf(d, FieldDenied); ok {
		s.DenialRate = NewRate(m)
	}
	return s
}

// DenialRow is the denial summary of one observed key combination.
type DenialRow struct {
	Keys []any
	DenialStats
}

// DenialTable holds denial summaries per group. It can be listed, in the
// order groups first appear in the data, or queried by key.
type DenialTable struct {
	fields []string
	rows   []DenialRow
	index  *Index
}

// DenialRatesBy summarizes denials for each observed combination of fields.
func DenialRatesBy(data Dataset, fields ...string) *DenialTable {
	keys := make([]KeyFunc, len(fields))
	for i, f := range fields {
		keys[i] = Field(f)
	}
	groups := GroupBy(data, keys...)
	t := &DenialTable{
		fields: fields,
		rows:   []DenialRow{},
		index:  NewIndex(groups),
	}
	Walk(groups, func(path []any, g *Group) {
		t.rows = append(t.rows, DenialRow{
			Keys:        append([]any(nil), path...),
			DenialStats: denialStats(g.Records),
		})
	})
	return t
}

// DenialRatesByRace summarizes denials per race or ethnicity.
func DenialRatesByRace(data Dataset) *DenialTable {
	return DenialRatesBy(data, FieldRaceEthnicity)
}

// DenialRatesByRaceAndIncome summarizes denials per race or ethnicity, then
// per income bracket.
func DenialRatesByRaceAndIncome(data Dataset) *DenialTable {
	return DenialRatesBy(AddIncomeBrackets(data), FieldRaceEthnicity, FieldIncomeBracket)
}

// Fields returns the grouping fields.
func (t *DenialTable) Fields() []string { return t.fields }

// Rows returns one row per observed key combination.
func (t *DenialTable) Rows() []DenialRow { return t.rows }

// Len returns the number of rows.
func (t *DenialTable) Len() int { return len(t.rows) }

// Lookup returns the summary of the group reached by keys. Fewer keys than
// fields summarize a whole upper level: for a table by race and income,
// Lookup("Asian") covers every income bracket of "Asian" applicants.
func (t *DenialTable) Lookup(keys ...any) (DenialStats, bool) {
	if len(keys) == 0 {
		return DenialStats{}, false
	}
	g, ok := t.index.Lookup(keys...)
	if !ok {
		return DenialStats{}, false
	}
	return denialStats(g.Records), true
}

// Records lists the table as flat records holding the grouping fields and the
// total, denied and denial_rate metrics.
func (t *DenialTable) Records() Dataset {
	res := make(Dataset, 0, len(t.rows))
	for _, row := range t.rows {
		r := make(Record, len(t.fields)+3)
		for i, f := range t.fields {
			r[f] = row.Keys[i]
		}
		r[MetricTotal] = row.Total
		r[MetricDenied] = row.Denied
		r[MetricDenialRate] = row.DenialRate
		res = append(res, r)
	}
	return res
}
