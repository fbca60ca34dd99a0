package renderer

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/housing"
)

// DenialOptions holds configuration for rendering a denial table.
type DenialOptions struct {
	// Reference is the first level key the risk ratios are computed against,
	// like "White". No risk ratio column is rendered when nil.
	Reference any
	// SortBrackets lists income brackets in increasing order within each
	// group instead of the order they appear in the data.
	SortBrackets bool
}

// DenialMarkdown renders a denial table.
func DenialMarkdown(title string, t *housing.DenialTable, opts DenialOptions) string {
	var b strings.Builder
	fields := t.Fields()

	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	if t.Len() == 0 {
		fmt.Fprint(&b, "No applications.\n")
		return b.String()
	}

	header := append(slices.Clone(fields), "Applications", "Denied", "Denial Rate")
	align := slices.Repeat([]string{":---"}, len(fields))
	align = append(align, "---:", "---:", "---:")
	if opts.Reference != nil {
		header = append(header, fmt.Sprintf("Risk Ratio (vs %v)", opts.Reference))
		align = append(align, "---:")
	}
	fmt.Fprintf(&b, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(&b, "|%s|\n", strings.Join(align, "|"))

	rows := t.Rows()
	if opts.SortBrackets {
		rows = sortBrackets(rows, slices.Index(fields, housing.FieldIncomeBracket))
	}

	for _, row := range rows {
		cells := make([]string, 0, len(header))
		for _, k := range row.Keys {
			cells = append(cells, Value(k))
		}
		cells = append(cells,
			fmt.Sprint(row.Total),
			Value(row.Denied),
			Value(row.DenialRate),
		)
		if opts.Reference != nil {
			cells = append(cells, riskRatio(t, row, opts.Reference))
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n_N/A: no application in the group has a denial outcome._\n")
		return slices.ContainsFunc(rows, func(r housing.DenialRow) bool { return !r.DenialRate.Valid() })
	})

	return b.String()
}

// riskRatio compares the row to the reference group sharing its other keys.
func riskRatio(t *housing.DenialTable, row housing.DenialRow, reference any) string {
	keys := append([]any{reference}, row.Keys[1:]...)
	ref, ok := t.Lookup(keys...)
	if !ok {
		return housing.NA
	}
	return housing.RiskRatio(row.DenialRate.Float64(), ref.DenialRate.Float64())
}

// sortBrackets sorts rows by income bracket at index col, keeping the order of
// the other keys.
func sortBrackets(rows []housing.DenialRow, col int) []housing.DenialRow {
	if col < 0 {
		return rows
	}
	// rank of each row's keys other than the bracket, in order of appearance.
	first := make(map[string]int)
	prefix := func(r housing.DenialRow) string {
		var parts []string
		for i, k := range r.Keys {
			if i != col {
				parts = append(parts, fmt.Sprintf("%T|%v", k, k))
			}
		}
		return strings.Join(parts, "\x1f")
	}
	for i, r := range rows {
		if _, ok := first[prefix(r)]; !ok {
			first[prefix(r)] = i
		}
	}
	rank := func(r housing.DenialRow) int {
		s, _ := r.Keys[col].(string)
		return housing.IncomeBracket(s).Rank()
	}
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b housing.DenialRow) int {
		return cmp.Or(
			cmp.Compare(first[prefix(a)], first[prefix(b)]),
			cmp.Compare(rank(a), rank(b)),
		)
	})
	return sorted
}
