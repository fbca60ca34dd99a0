package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/etnz/housing"
	"github.com/google/subcommands"
)

// datasetFlags are the flags of the commands reading a dataset and printing a table.
type datasetFlags struct {
	selector string
	output   string
}

func (d *datasetFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.selector, "select", "", "JSONPath selecting the records of a JSON document, like '$.data[*]'")
	f.StringVar(&d.output, "o", "md", "Output format: md, jsonl or csv")
}

// checkOutput validates the output flag.
func (d *datasetFlags) checkOutput() error {
	switch d.output {
	case "md", "jsonl", "csv":
		return nil
	}
	return fmt.Errorf("unknown output format %q, expected md, jsonl or csv", d.output)
}

// load decodes the dataset named by the first argument, or the default one.
func (d *datasetFlags) load(f *flag.FlagSet) (housing.Dataset, error) {
	filename := f.Arg(0)
	if filename == "" {
		filename = *datasetFile
	}
	if filename == "" {
		return nil, errors.New("no dataset file given, and no default dataset is set")
	}
	data, err := housing.DecodeFile(filename, d.selector)
	if err != nil {
		return nil, fmt.Errorf("decoding dataset %q: %w", filename, err)
	}
	slog.Debug("dataset loaded", "file", filename, "records", len(data))
	return data, nil
}

// print writes data in the selected output format. markdown is only called
// for the md format.
func (d *datasetFlags) print(data housing.Dataset, fields []string, markdown func() string) subcommands.ExitStatus {
	var err error
	switch d.output {
	case "jsonl":
		err = housing.EncodeJSONL(os.Stdout, data, fields...)
	case "csv":
		err = housing.EncodeCSV(os.Stdout, data, fields...)
	default:
		printMarkdown(markdown())
	}
	if err != nil {
		slog.Error("cannot write table", "format", d.output, "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
