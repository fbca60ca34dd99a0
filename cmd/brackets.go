package cmd

import (
	"context"
	"flag"
	"log/slog"
	"slices"

	"github.com/etnz/housing"
	"github.com/etnz/housing/renderer"
	"github.com/google/subcommands"
)

// bracketsCmd holds the flags for the 'brackets' subcommand.
type bracketsCmd struct {
	datasetFlags
}

func (*bracketsCmd) Name() string { return "brackets" }
func (*bracketsCmd) Synopsis() string {
	return "add the income bracket field to every record of a dataset"
}
func (*bracketsCmd) Usage() string {
	return `hac brackets [-o jsonl|csv|md] [<dataset>]

  Prints the dataset with an income_bracket field computed from the
  income_1000s field of every record.

Usage Examples:
$ hac brackets -o jsonl hmda.csv > brackets.jsonl

`
}

func (c *bracketsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.checkOutput(); err != nil {
		slog.Error("invalid flag", "err", err)
		return subcommands.ExitUsageError
	}
	data, err := c.load(f)
	if err != nil {
		slog.Error("cannot load dataset", "err", err)
		return subcommands.ExitFailure
	}
	data = housing.AddIncomeBrackets(data)
	fields := []string{housing.FieldIncome, housing.FieldIncomeBracket}
	return c.print(data, fields, func() string {
		return renderer.RollupMarkdown("Income brackets", data, fieldsOf(data, fields)...)
	})
}

// fieldsOf returns fields followed by the other fields of data.
func fieldsOf(data housing.Dataset, fields []string) []string {
	all := slices.Clone(fields)
	for _, f := range data.Fields() {
		if !slices.Contains(all, f) {
			all = append(all, f)
		}
	}
	return all
}

