package housing

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains the codecs used to load datasets produced by the
// processing notebooks, and to hand aggregated tables back as files.
//
// Three formats are supported:
//   JSONL: one JSON object per line, blank lines are skipped.
//   JSON:  a document holding an array of objects. A JSONPath selector can
//          pick the array out of a larger document, like "$.data[*]".
//   CSV:   a header line, then one record per line. Cells are typed: empty
//          cells are nil, numbers are float64, true and false are booleans.

// Format is a dataset file format.
type Format string

const (
	FormatJSONL Format = "jsonl"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ErrUnknownFormat is returned for files whose format cannot be guessed.
var ErrUnknownFormat = errors.New("unknown dataset format")

// ParseFormat returns the format named s, with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatJSONL, FormatJSON, FormatCSV:
		return f, nil
	case "ndjson":
		return FormatJSONL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf guesses the format of filename from its extension.
func FormatOf(filename string) (Format, error) {
	return ParseFormat(filepath.Ext(filename))
}

// DecodeFile reads the dataset stored in filename. selector only applies to
// JSON documents.
func DecodeFile(filename, selector string) (Dataset, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(filename, f, format, selector)
}

// Decode reads a dataset in the given format. filename is for error messages only.
func Decode(filename string, r io.Reader, format Format, selector string) (Dataset, error) {
	switch format {
	case FormatJSONL:
		return DecodeJSONL(filename, r)
	case FormatJSON:
		return DecodeJSON(filename, r, selector)
	case FormatCSV:
		return DecodeCSV(filename, r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// DecodeJSONL reads one record per line.
func DecodeJSONL(filename string, r io.Reader) (Dataset, error) {
	data := Dataset{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, i, err)
		}
		if rec == nil {
			return nil, fmt.Errorf("format error in %q on line %d: not an object", filename, i)
		}
		data = append(data, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", filename, err)
	}
	return data, nil
}

// DecodeJSON reads a JSON document. Without a selector, the document must be
// an array of objects. Otherwise the selector must evaluate to such an
// array, or to a single object.
func DecodeJSON(filename string, r io.Reader, selector string) (Dataset, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	if selector != "" {
		v, err := jsonpath.Get(selector, doc)
		if err != nil {
			return nil, fmt.Errorf("error selecting %q in %q: %w", selector, filename, err)
		}
		doc = v
	}

	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		// a selector on a single object returns it alone
		items = []any{v}
	default:
		return nil, fmt.Errorf("format error in %q: expected an array of objects, got %T", filename, doc)
	}

	data := make(Dataset, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("format error in %q: item %d is %T, not an object", filename, i, item)
		}
		data = append(data, Record(obj))
	}
	return data, nil
}

// DecodeCSV reads a header line followed by records.
func DecodeCSV(filename string, r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	data := Dataset{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error in %q: %w", filename, err)
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = ParseValue(row[i])
			} else {
				rec[name] = nil
			}
		}
		data = append(data, rec)
	}
	return data, nil
}

// ParseValue types a raw value read from a CSV cell or a command line
// argument: blank is nil, true and false are booleans, finite numbers are
// float64. Anything else is kept as is.
func ParseValue(s string) any {
	t := strings.TrimSpace(s)
	switch t {
	case "":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	// ParseFloat also reads words like "NaN" or "Inf", which stay strings.
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}

// fieldOrder returns fields, followed by every other field of data in
// alphabetical order.
func fieldOrder(data Dataset, fields []string) []string {
	order := slices.Clone(fields)
	var rest []string
	for _, f := range data.Fields() {
		if !slices.Contains(order, f) {
			rest = append(rest, f)
		}
	}
	slices.Sort(rest)
	return append(order, rest...)
}

// EncodeJSONL writes one record per line. fields come first, in order, then
// the remaining fields alphabetically.
func EncodeJSONL(w io.Writer, data Dataset, fields ...string) error {
	order := fieldOrder(data, fields)
	for _, r := range data {
		var ow jsonObjectWriter
		ow.AppendRecord(r, order)
		b, err := ow.MarshalJSON()
		if err != nil {
			return err
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// EncodeCSV writes a header line and one line per record, with the same
// column order as EncodeJSONL. Missing values are empty cells.
func EncodeCSV(w io.Writer, data Dataset, fields ...string) error {
	order := fieldOrder(data, fields)
	cw := csv.NewWriter(w)
	if err := cw.Write(order); err != nil {
		return err
	}
	row := make([]string, len(order))
	for _, r := range data {
		for i, f := range order {
			row[i] = Cell(r[f])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Cell renders a value as plain text. Missing values are empty.
func Cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Rate:
		if !v.Valid() {
			return ""
		}
		return strconv.FormatFloat(v.value, 'f', -1, 64)
	case Money:
		return v.value.String()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}
