// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// ErrNoResults is returned when there is nothing to export.
var ErrNoResults = errors.New("no results to export")

// CSVContent renders query-result rows as CSV. The header row holds the
// first row's keys in sorted order; every data cell is quoted so downstream
// spreadsheet tools never misparse commas or newlines inside values.
func CSVContent(result *api.QueryResult) ([]byte, error) {
	if result == nil || len(result.Results) == 0 {
		return nil, ErrNoResults
	}

	columns := make([]string, 0, len(result.Results[0]))
	for k := range result.Results[0] {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))
	b.WriteByte('\n')

	for _, row := range result.Results {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, quoteCell(row[col]))
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}

	return []byte(b.String()), nil
}

// WriteResultCSV exports a query result to a CSV file named after the
// natural-language query that produced it. Returns the output file path.
func WriteResultCSV(result *api.QueryResult, opts *Options) (string, error) {
	content, err := CSVContent(result)
	if err != nil {
		return "", err
	}

	base := result.NaturalQuery
	if base == "" {
		base = "results"
	}
	return writeExport(base, ".csv", content, opts)
}

// quoteCell formats one cell value and wraps it in double quotes, doubling
// any embedded quote characters.
func quoteCell(v any) string {
	var s string
	switch n := v.(type) {
	case nil:
		s = ""
	case string:
		s = n
	case float64:
		s = fmt.Sprintf("%v", n)
	default:
		s = fmt.Sprintf("%v", n)
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
