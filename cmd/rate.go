package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/etnz/housing"
	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	datasetFlags
	key      string
	value    string
	decimals int
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "denial rate of the applications matching a value" }
func (*rateCmd) Usage() string {
	return `hac rate -k <field> -v <value> [-d <decimals>] [<dataset>]

  Prints the mean of the denied field over the applications whose field
  equals the value. Values are typed: '1' matches the number 1, 'true' the
  boolean true. The rate is N/A when no application matches.

Usage Examples:
$ hac rate -k race_ethnicity -v Black hmda.csv
$ hac rate -k income_bracket -v '<$50K' -d 2 brackets.jsonl

`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	c.datasetFlags.SetFlags(f)
	f.StringVar(&c.key, "k", housing.FieldRaceEthnicity, "Field to filter on")
	f.StringVar(&c.value, "v", "", "Value the field must equal")
	f.IntVar(&c.decimals, "d", housing.DefaultPercentDecimals, "Number of decimals of the percentage")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" {
		slog.Error("a field is required, use -k")
		return subcommands.ExitUsageError
	}
	data, err := c.load(f)
	if err != nil {
		slog.Error("cannot load dataset", "err", err)
		return subcommands.ExitFailure
	}

	rate := housing.DenialRate(data, c.key, housing.ParseValue(c.value))
	slog.Debug("denial rate", "field", c.key, "value", c.value, "rate", rate.Float64())
	fmt.Println(housing.FormatPercent(rate, c.decimals))
	return subcommands.ExitSuccess
}
