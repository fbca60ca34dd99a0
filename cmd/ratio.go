package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/etnz/housing"
	"github.com/google/subcommands"
)

type ratioCmd struct{}

func (*ratioCmd) Name() string     { return "ratio" }
func (*ratioCmd) Synopsis() string { return "risk ratio between two rates" }
func (*ratioCmd) Usage() string {
	return `hac ratio <rate1> <rate2>

  Prints rate1/rate2 with two decimals, or N/A when rate2 is zero.

Usage Examples:
$ hac ratio 0.2 0.1
2.00

`
}

func (*ratioCmd) SetFlags(f *flag.FlagSet) {}

func (*ratioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		slog.Error("expected exactly two rates", "got", f.NArg())
		return subcommands.ExitUsageError
	}
	rates := make([]float64, 2)
	for i, arg := range f.Args() {
		r, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			slog.Error("invalid rate", "rate", arg, "err", err)
			return subcommands.ExitUsageError
		}
		rates[i] = r
	}
	fmt.Println(housing.RiskRatio(rates[0], rates[1]))
	return subcommands.ExitSuccess
}
