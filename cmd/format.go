package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/etnz/housing"
	"github.com/google/subcommands"
)

// formatCmd holds the flags for the 'format' subcommand.
type formatCmd struct {
	percent  bool
	currency bool
	decimals int
}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "format values as on the dashboards" }
func (*formatCmd) Usage() string {
	return `hac format (-percent [-d <decimals>] | -currency) <value>...

  Formats every value as a percentage, from a ratio, or as a dollar amount.
  Missing values, given as 'null' or an empty string, are formatted as N/A.

Usage Examples:
$ hac format -percent 0.1234
12.3%
$ hac format -currency 1500 null
$1,500
N/A

`
}

func (c *formatCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.percent, "percent", false, "Format ratios as percentages")
	f.BoolVar(&c.currency, "currency", false, "Format amounts in dollars")
	f.IntVar(&c.decimals, "d", housing.DefaultPercentDecimals, "Number of decimals of percentages")
}

func (c *formatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.percent == c.currency {
		slog.Error("exactly one of -percent or -currency is required")
		return subcommands.ExitUsageError
	}
	for _, arg := range f.Args() {
		fmt.Println(c.format(arg))
	}
	return subcommands.ExitSuccess
}

// format formats a single command line value.
func (c *formatCmd) format(arg string) string {
	var v any
	if arg != "null" {
		v = housing.ParseValue(arg)
	}
	if c.percent {
		return housing.FormatPercent(v, c.decimals)
	}
	return housing.FormatCurrency(v)
}
