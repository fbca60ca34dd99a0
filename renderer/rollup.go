package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/housing"
	md "github.com/nao1215/markdown"
)

// RollupMarkdown renders a rollup as a markdown table with one column per
// field. Without fields, every field of data is a column.
func RollupMarkdown(title string, data housing.Dataset, fields ...string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if title != "" {
		doc.H1(title)
	}
	if len(data) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}
	if len(fields) == 0 {
		fields = data.Fields()
	}

	rows := make([][]string, 0, len(data))
	for _, r := range data {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = Value(r[f])
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: fields, Rows: rows})
	doc.PlainText(fmt.Sprintf("%d groups.", len(data)))

	return doc.String()
}
