package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/housing"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	selector string
	fields   string
	format   string
	out      string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "convert a dataset to CSV or JSONL" }
func (*exportCmd) Usage() string {
	return `hac export [-format csv|jsonl] [-fields <fields>] [-out <file>] [<dataset>]

  Converts a dataset, read from JSONL, JSON or CSV, to CSV or JSONL. The given
  fields come first, the other fields follow in alphabetical order.

Usage Examples:
$ hac export -select '$.data[*]' -out evictions.csv evictions.json

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.selector, "select", "", "JSONPath selecting the records of a JSON document")
	f.StringVar(&c.fields, "fields", "", "Comma separated fields to write first")
	f.StringVar(&c.format, "format", "", "Output format: csv or jsonl. Guessed from -out, csv by default")
	f.StringVar(&c.out, "out", "", "Output file, stdout by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := c.outputFormat()
	if err != nil {
		slog.Error("invalid output format", "err", err)
		return subcommands.ExitUsageError
	}

	d := datasetFlags{selector: c.selector}
	data, err := d.load(f)
	if err != nil {
		slog.Error("cannot load dataset", "err", err)
		return subcommands.ExitFailure
	}

	if c.out == "" {
		err = encode(os.Stdout, format, data, splitList(c.fields))
	} else {
		err = exportFile(c.out, format, data, splitList(c.fields))
	}
	if err != nil {
		slog.Error("cannot export dataset", "err", err)
		return subcommands.ExitFailure
	}
	slog.Debug("dataset exported", "records", len(data), "format", format)
	return subcommands.ExitSuccess
}

// outputFormat returns the format selected by flags.
func (c *exportCmd) outputFormat() (housing.Format, error) {
	switch {
	case c.format != "":
		return housing.ParseFormat(c.format)
	case c.out != "":
		return housing.FormatOf(c.out)
	}
	return housing.FormatCSV, nil
}

// exportFile writes data to filename. The file is closed before returning, and
// a failed close is reported like a failed write.
func exportFile(filename string, format housing.Format, data housing.Dataset, fields []string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %q: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", filename, cerr)
		}
	}()
	return encode(file, format, data, fields)
}

func encode(w io.Writer, format housing.Format, data housing.Dataset, fields []string) error {
	switch format {
	case housing.FormatCSV:
		return housing.EncodeCSV(w, data, fields...)
	case housing.FormatJSONL:
		return housing.EncodeJSONL(w, data, fields...)
	}
	return fmt.Errorf("%w: cannot write %q", housing.ErrUnknownFormat, format)
}
