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

type bracketCmd struct{}

func (*bracketCmd) Name() string     { return "bracket" }
func (*bracketCmd) Synopsis() string { return "income bracket of incomes in thousands of dollars" }
func (*bracketCmd) Usage() string {
	return `hac bracket [<income>...]

  Prints the income bracket of every income, given in thousands of dollars.
  Without arguments, lists the brackets in increasing order.

Usage Examples:
$ hac bracket 49.99 50 150
49.99	<$50K
50	$50-75K
150	$150K+

`
}

func (*bracketCmd) SetFlags(f *flag.FlagSet) {}

func (*bracketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		for _, b := range housing.IncomeBrackets() {
			fmt.Println(b)
		}
		return subcommands.ExitSuccess
	}
	for _, arg := range f.Args() {
		income, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			slog.Error("invalid income", "income", arg, "err", err)
			return subcommands.ExitUsageError
		}
		fmt.Printf("%s\t%s\n", arg, housing.IncomeBracketOf(income))
	}
	return subcommands.ExitSuccess
}
