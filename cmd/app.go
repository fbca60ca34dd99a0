// Package cmd implements the hac CLI application.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// Commands lists every hac subcommand.
var Commands = []subcommands.Command{
	&rollupCmd{},
	&denialCmd{},
	&rateCmd{},
	&ratioCmd{},
	&bracketCmd{},
	&bracketsCmd{},
	&formatCmd{},
	&exportCmd{},
	&pagesCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	groups := map[string]string{
		"rollup":   "tables",
		"denial":   "tables",
		"brackets": "tables",
		"export":   "tables",
		"rate":     "metrics",
		"ratio":    "metrics",
		"bracket":  "metrics",
		"format":   "metrics",
		"pages":    "site",
		"topic":    "help",
	}
	for _, cmd := range Commands {
		c.Register(cmd, groups[cmd.Name()])
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	datasetFile = flag.String("dataset", "", "Default dataset file, used when a command is given none (env HAC_DATASET)")
	siteFile    = flag.String("site", "", "Site definition in YAML, the embedded one by default (env HAC_SITE)")
	plain       = flag.Bool("plain", false, "Print raw markdown instead of styled output (env HAC_PLAIN)")
	// Verbose enables debug logs.
	Verbose = flag.Bool("v", false, "Enable debug logs (env HAC_VERBOSE)")
)
