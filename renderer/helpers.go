package renderer

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/housing"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// Value renders a record value the way the dashboards display it: rates as
// percentages, money as dollars and missing values as "N/A".
func Value(v any) string {
	var s string
	switch v := v.(type) {
	case nil:
		s = housing.NA
	case housing.Rate:
		s = housing.FormatPercent(v, housing.DefaultPercentDecimals)
	case housing.Money:
		s = housing.FormatCurrency(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = housing.Cell(v)
	}
	// pipes would split the table cell.
	return strings.ReplaceAll(s, "|", `\|`)
}
