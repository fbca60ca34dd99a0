package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/etnz/housing"
	"github.com/etnz/housing/renderer"
	"github.com/google/subcommands"
)

// rollupCmd holds the flags for the 'rollup' subcommand.
type rollupCmd struct {
	datasetFlags
	keys  string
	count string
	sum   string
	mean  string
}

func (*rollupCmd) Name() string     { return "rollup" }
func (*rollupCmd) Synopsis() string { return "count records per observed combination of key fields" }
func (*rollupCmd) Usage() string {
	return `hac rollup -k <field>[,<field>...] [-count <name>] [-sum <fields>] [-mean <fields>] [<dataset>]

  Groups the dataset by the key fields and counts the records of every
  observed combination of keys. Sums and means of numeric fields can be added.

Usage Examples:
$ hac rollup -k county,outcome evictions.jsonl
$ hac rollup -k race_ethnicity -mean income_1000s -o csv hmda.csv

`
}

func (c *rollupCmd) SetFlags(f *flag.FlagSet) {
	c.datasetFlags.SetFlags(f)
	f.StringVar(&c.keys, "k", "", "Comma separated key fields (required)")
	f.StringVar(&c.count, "count", "count", "Name of the count column")
	f.StringVar(&c.sum, "sum", "", "Comma separated fields to sum")
	f.StringVar(&c.mean, "mean", "", "Comma separated fields to average")
}

func (c *rollupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	keys := splitList(c.keys)
	if len(keys) == 0 {
		slog.Error("at least one key field is required, use -k")
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

	metrics := []housing.Metric{housing.Count(c.count)}
	for _, field := range splitList(c.sum) {
		metrics = append(metrics, housing.Sum("sum_"+field, field))
	}
	for _, field := range splitList(c.mean) {
		metrics = append(metrics, housing.Mean("mean_"+field, field))
	}

	var table housing.Dataset
	if len(metrics) == 1 {
		table = housing.RollupCount(data, c.count, keys...)
	} else {
		table = housing.Rollup(data, keys, metrics...)
	}

	fields := keys
	for _, m := range metrics {
		fields = append(fields, m.Name)
	}
	title := fmt.Sprintf("Rollup by %s", strings.Join(keys, ", "))
	return c.print(table, fields, func() string {
		return renderer.RollupMarkdown(title, table, fields...)
	})
}
