// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package summary turns generic query results into human-readable text.
package summary

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// maxShortRows is how many rows the short reply renders inline.
	maxShortRows = 3

	// maxDigestSample bounds the rows the insight digest inspects.
	maxDigestSample = 100

	// maxNumericColumns / maxCategoricalColumns / maxTopValues bound the
	// digest statistics.
	maxNumericColumns     = 3
	maxCategoricalColumns = 2
	maxTopValues          = 3

	// maxPreviewColumns is how many columns the example-row preview shows.
	maxPreviewColumns = 6

	// NoResultsMessage is the fixed reply when there is nothing to digest.
	NoResultsMessage = "No results available to explain."

	// FailedMessage is the fixed reply when digest computation faults.
	// Summarization is best-effort and must never block the result itself.
	FailedMessage = "Failed to summarize results."
)

// =============================================================================
// SHORT SUMMARY
// =============================================================================

// ShortSummary builds the bot reply for a successful query: a count header,
// the backend's own summary when present, and up to three rows rendered by
// shape. Missing or null fields are omitted, never printed.
func ShortSummary(result *api.QueryResult, originalQuery string) string {
	var b strings.Builder

	if result.Summary != "" {
		b.WriteString("📝 **Summary:** " + result.Summary + "\n\n")
	}

	fmt.Fprintf(&b, "✅ **Query Results:** Found %d records\n\n", result.Count)

	if len(result.Results) > 0 {
		b.WriteString("📊 **Data Results:**\n\n")

		shown := len(result.Results)
		if shown > maxShortRows {
			shown = maxShortRows
		}
		for i := 0; i < shown; i++ {
			fmt.Fprintf(&b, "**%d.** %s\n", i+1, formatRow(result.Results[i]))
		}

		if rest := len(result.Results) - maxShortRows; rest > 0 {
			fmt.Fprintf(&b, "\n... and %d more results (see detailed view below)\n", rest)
		}
	}

	b.WriteString("\n💡 **Visualization:** The data has been loaded into the map and charts for interactive exploration!")

	return b.String()
}

// formatRow renders one row by shape: float records, depth profiles, or a
// generic key/value join for everything else.
func formatRow(row api.Row) string {
	if _, ok := row["float_id"]; ok {
		return formatFloatRow(row)
	}
	// A zero depth is still a depth row.
	if _, ok := row["depth"]; ok {
		return formatProfileRow(row)
	}
	return formatGenericRow(row)
}

// formatFloatRow joins float-record fields in fixed priority order,
// dropping whatever the row does not carry.
func formatFloatRow(row api.Row) string {
	parts := []string{"Float ID: " + formatValue(row["float_id"])}

	lat, latOK := numericField(row, "latitude")
	lon, lonOK := numericField(row, "longitude")
	if latOK && lonOK {
		parts = append(parts, fmt.Sprintf("Location: %s°N, %s°E", trimFloat(lat), trimFloat(lon)))
	}
	if v, ok := presentField(row, "status"); ok {
		parts = append(parts, "Status: "+v)
	}
	if v, ok := presentField(row, "ocean_region"); ok {
		parts = append(parts, "Region: "+v)
	}
	if v, ok := presentField(row, "total_profiles"); ok {
		parts = append(parts, "Profiles: "+v)
	}

	return strings.Join(parts, " | ")
}

// formatProfileRow joins depth-profile fields, conditionally appending each
// metric the row actually carries.
func formatProfileRow(row api.Row) string {
	parts := []string{}

	if d, ok := numericField(row, "depth"); ok {
		parts = append(parts, fmt.Sprintf("Depth: %sm", trimFloat(d)))
	} else if v, ok := presentField(row, "depth"); ok {
		parts = append(parts, "Depth: "+v)
	}
	if t, ok := numericField(row, "temperature"); ok {
		parts = append(parts, fmt.Sprintf("Temperature: %s°C", trimFloat(t)))
	}
	if s, ok := numericField(row, "salinity"); ok {
		parts = append(parts, fmt.Sprintf("Salinity: %s PSU", trimFloat(s)))
	}

	return strings.Join(parts, " | ")
}

// formatGenericRow joins every present field as "key: value". Keys are
// sorted: Go maps have no stable enumeration order, so sorting is what
// makes the output deterministic.
func formatGenericRow(row api.Row) string {
	keys := sortedKeys(row)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v, ok := presentField(row, k); ok {
			parts = append(parts, k+": "+v)
		}
	}
	return strings.Join(parts, " | ")
}

// =============================================================================
// INSIGHT DIGEST
// =============================================================================

// InsightDigest computes a plain-text statistical digest over a bounded
// sample of the result rows: per-column numeric stats, top categorical
// values, and an example-row preview.
//
// This operation never returns an error: empty input yields NoResultsMessage
// and any internal fault is swallowed into FailedMessage, because a broken
// digest must not stop the result itself from being shown.
func InsightDigest(result *api.QueryResult) (digest string) {
	defer func() {
		if r := recover(); r != nil {
			digest = FailedMessage
		}
	}()

	if result == nil || len(result.Results) == 0 {
		return NoResultsMessage
	}

	sample := result.Results
	if len(sample) > maxDigestSample {
		sample = sample[:maxDigestSample]
	}

	columns := discoverColumns(sample)
	numeric, categorical := classifyColumns(sample, columns)

	var lines []string
	lines = append(lines, fmt.Sprintf("Results: %d rows. Columns: %s.", len(result.Results), strings.Join(columns, ", ")))

	// Stats for up to three numeric columns.
	for i, col := range numeric {
		if i >= maxNumericColumns {
			break
		}
		if line, ok := numericStatsLine(sample, col); ok {
			lines = append(lines, line)
		}
	}

	// Top values for up to two categorical columns.
	for i, col := range categorical {
		if i >= maxCategoricalColumns {
			break
		}
		if line, ok := topValuesLine(sample, col); ok {
			lines = append(lines, line)
		}
	}

	// Example-row preview over the first columns.
	preview := columns
	if len(preview) > maxPreviewColumns {
		preview = preview[:maxPreviewColumns]
	}
	pairs := make([]string, 0, len(preview))
	for _, col := range preview {
		v, ok := presentField(sample[0], col)
		if !ok {
			v = "N/A"
		}
		pairs = append(pairs, col+"="+v)
	}
	lines = append(lines, "Example row: "+strings.Join(pairs, " | "))

	return "Data insight (plain text)\n\n" + strings.Join(lines, "\n")
}

// discoverColumns returns the union of column names across the sample in
// first-seen order (keys sorted within each row for determinism).
func discoverColumns(sample []api.Row) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, row := range sample {
		for _, k := range sortedKeys(row) {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	return columns
}

// classifyColumns splits columns into numeric and categorical. A column is
// numeric when at least one sampled value is a native number or a string
// that parses as a float.
func classifyColumns(sample []api.Row, columns []string) (numeric, categorical []string) {
	for _, col := range columns {
		isNumeric := false
		for _, row := range sample {
			if v, ok := row[col]; ok {
				if _, ok := toFloat(v); ok {
					isNumeric = true
					break
				}
			}
		}
		if isNumeric {
			numeric = append(numeric, col)
		} else {
			categorical = append(categorical, col)
		}
	}
	return numeric, categorical
}

// numericStatsLine computes min/avg/max over the values that parse,
// ignoring the rest. Returns false when nothing in the column parses.
func numericStatsLine(sample []api.Row, col string) (string, bool) {
	var nums []float64
	for _, row := range sample {
		if v, ok := row[col]; ok {
			if f, ok := toFloat(v); ok {
				nums = append(nums, f)
			}
		}
	}
	if len(nums) == 0 {
		return "", false
	}

	min, max, sum := nums[0], nums[0], 0.0
	for _, n := range nums {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
		sum += n
	}
	avg := sum / float64(len(nums))

	return fmt.Sprintf("%s: avg %.3f, min %.3f, max %.3f (based on %d values).", col, avg, min, max, len(nums)), true
}

// topValuesLine reports the three most frequent non-empty values of a
// categorical column. Ties keep first-encountered order (stable sort).
func topValuesLine(sample []api.Row, col string) (string, bool) {
	type freq struct {
		value string
		count int
	}
	counts := make(map[string]int)
	var order []string
	for _, row := range sample {
		v, ok := presentField(row, col)
		if !ok {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	if len(order) == 0 {
		return "", false
	}

	freqs := make([]freq, 0, len(order))
	for _, v := range order {
		freqs = append(freqs, freq{value: v, count: counts[v]})
	}
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].count > freqs[j].count
	})
	if len(freqs) > maxTopValues {
		freqs = freqs[:maxTopValues]
	}

	parts := make([]string, 0, len(freqs))
	for _, f := range freqs {
		parts = append(parts, fmt.Sprintf("%s (%d)", f.value, f.count))
	}
	return fmt.Sprintf("%s: top values → %s.", col, strings.Join(parts, ", ")), true
}

// =============================================================================
// VALUE HELPERS
// =============================================================================

// presentField returns the formatted value of a field, with ok=false for
// absent, nil, or empty values. This is what keeps "null" and "undefined"
// out of the rendered text.
func presentField(row api.Row, key string) (string, bool) {
	v, ok := row[key]
	if !ok || v == nil {
		return "", false
	}
	s := formatValue(v)
	if s == "" {
		return "", false
	}
	return s, true
}

// numericField returns a field as float64 when it is a native number or a
// numeric string.
func numericField(row api.Row, key string) (float64, bool) {
	v, ok := row[key]
	if !ok || v == nil {
		return 0, false
	}
	return toFloat(v)
}

// toFloat coerces a JSON scalar to float64 where possible.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// formatValue renders a JSON scalar for display. Floats drop trailing
// zeros so 42.0 prints as "42".
func formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return trimFloat(n)
	case bool:
		return strconv.FormatBool(n)
	default:
		return fmt.Sprintf("%v", n)
	}
}

// trimFloat formats a float without trailing zeros.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// sortedKeys returns the row's keys in sorted order.
func sortedKeys(row api.Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
