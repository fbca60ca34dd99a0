// Package housing provides the tabular aggregations behind the "Housing
// Affordability and Equity in NC" dashboards. It works on in-memory datasets
// produced by the processing notebooks (eviction cases, HMDA mortgage
// applications, rents and wages) and returns tables ready to be charted.
//
// The core functionalities include:
//   - Rollups: grouping a Dataset by any number of key fields and reducing
//     each observed combination of keys (count, sum, mean). Grouping builds a
//     tree and flattening it is a separate step, so both a flat listing and
//     point lookups are available.
//   - Housing metrics: denial rates of mortgage applications, risk ratios
//     between groups, and income brackets.
//   - Formatting: percentages and dollar amounts as displayed on the
//     dashboards, with "N/A" for missing values.
//   - Codecs: reading datasets from JSONL, JSON or CSV files and writing
//     aggregated tables back as JSONL or CSV.
//
// Functions never validate their input. Missing fields group under nil,
// non numeric values are skipped by reducers, and undefined results are
// reported as undefined Rates or "N/A" rather than errors.
//
// This package serves as the foundational logic for the `hac` command-line
// tool.
package housing
