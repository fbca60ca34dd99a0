package cmd

import (
	"context"
	"flag"
	"log/slog"
	"slices"
	"strings"

	"github.com/etnz/housing"
	"github.com/etnz/housing/renderer"
	"github.com/google/subcommands"
)

// denialCmd holds the flags for the 'denial' subcommand.
type denialCmd struct {
	datasetFlags
	by     string
	income bool
	ref    string
	sort   bool
}

func (*denialCmd) Name() string     { return "denial" }
func (*denialCmd) Synopsis() string { return "mortgage denial rates per group of applicants" }
func (*denialCmd) Usage() string {
	return `hac denial [-by <fields>] [-income] [-ref <value>] [-sort] [<dataset>]

  Summarizes mortgage applications per group: number of applications, number
  of denials and denial rate. Groups are listed in the order they first
  appear in the dataset.

  With -income, applications are further split by income bracket, computed
  from the income_1000s field. With -ref, a risk ratio column compares every
  group to the reference group of the first field.

Usage Examples:
$ hac denial hmda.csv
$ hac denial -income -ref White -sort hmda.csv

`
}

func (c *denialCmd) SetFlags(f *flag.FlagSet) {
	c.datasetFlags.SetFlags(f)
	f.StringVar(&c.by, "by", housing.FieldRaceEthnicity, "Comma separated grouping fields")
	f.BoolVar(&c.income, "income", false, "Split every group by income bracket")
	f.StringVar(&c.ref, "ref", "", "Reference group for the risk ratio, like 'White'")
	f.BoolVar(&c.sort, "sort", false, "List income brackets in increasing order")
}

func (c *denialCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fields := splitList(c.by)
	if len(fields) == 0 {
		slog.Error("at least one grouping field is required, use -by")
		return subcommands.ExitUsageError
	}
	if err := c.checkOutput(); err != nil {
		slog.Error("invalid flag", "err", err)
		return subcommands.ExitUsageError
	}

	data, err := c.load(f)
	if err != nil {
		slog.Error("cannot load dataset", "err", err)
		return subcommands.ExitFailure
	}

	var table *housing.DenialTable
	switch {
	case !c.income && slices.Equal(fields, []string{housing.FieldRaceEthnicity}):
		table = housing.DenialRatesByRace(data)
	case c.income && slices.Equal(fields, []string{housing.FieldRaceEthnicity}):
		table = housing.DenialRatesByRaceAndIncome(data)
	case c.income:
		table = housing.DenialRatesBy(housing.AddIncomeBrackets(data), append(fields, housing.FieldIncomeBracket)...)
	case slices.Contains(fields, housing.FieldIncomeBracket):
		table = housing.DenialRatesBy(housing.AddIncomeBrackets(data), fields...)
	default:
		table = housing.DenialRatesBy(data, fields...)
	}
	slog.Debug("denial table computed", "fields", table.Fields(), "rows", table.Len())

	opts := renderer.DenialOptions{SortBrackets: c.sort}
	if c.ref != "" {
		opts.Reference = housing.ParseValue(c.ref)
	}
	columns := append(slices.Clone(table.Fields()), housing.MetricTotal, housing.MetricDenied, housing.MetricDenialRate)
	return c.print(table.Records(), columns, func() string {
		return renderer.DenialMarkdown("Denial rates by "+strings.Join(table.Fields(), ", "), table, opts)
	})
}
