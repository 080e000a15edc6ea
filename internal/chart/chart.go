// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart maps query results and profiles into declarative plot specs.
package chart

import (
	"fmt"
	"sort"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// =============================================================================
// CHART KIND
// =============================================================================

// Kind is the visualization mode selected by the user.
type Kind string

const (
	KindTemperature  Kind = "temperature"
	KindSalinity     Kind = "salinity"
	KindOxygen       Kind = "oxygen"
	KindDistribution Kind = "distribution"
	KindQueryResults Kind = "query_results"
)

// Kinds lists every chart kind in display order.
var Kinds = []Kind{KindTemperature, KindSalinity, KindOxygen, KindDistribution, KindQueryResults}

// Label returns the human-readable name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindTemperature:
		return "Temperature"
	case KindSalinity:
		return "Salinity"
	case KindOxygen:
		return "Oxygen"
	case KindDistribution:
		return "Distribution"
	case KindQueryResults:
		return "Query Results"
	default:
		return string(k)
	}
}

// IsMetric reports whether the kind plots a depth profile metric.
func (k Kind) IsMetric() bool {
	return k == KindTemperature || k == KindSalinity || k == KindOxygen
}

// ParseKind resolves a kind name, with ok=false for unknown names.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// =============================================================================
// EMPTY STATES
// =============================================================================

// EmptyReason distinguishes the empty-state specs from each other. The
// distribution kind alone has two: an empty float collection is not the
// same situation as floats that carry no region.
type EmptyReason string

const (
	EmptyNone         EmptyReason = ""
	EmptyNoFloats     EmptyReason = "no float data"
	EmptyNoRegions    EmptyReason = "no region data"
	EmptyNoQueryRows  EmptyReason = "no query results"
	EmptyNoProfile    EmptyReason = "no profile data"
)

// =============================================================================
// SPEC TYPES
// =============================================================================

// Point is one (depth, value) sample of a metric series.
type Point struct {
	Depth float64
	Value float64
}

// Bucket is one histogram bar.
type Bucket struct {
	Label string
	Count int
}

// TableSpec is a tabular rendering of query-result rows.
type TableSpec struct {
	Columns []string
	Rows    [][]string
	// Total is the full result count, which can exceed len(Rows).
	Total int
}

// Spec is a declarative description of what the chart panel should draw.
// Exactly one of Series, Histogram, or Table is populated, unless the spec
// is an empty state.
type Spec struct {
	Kind   Kind
	Title  string
	XLabel string
	YLabel string

	// InvertX flips the depth axis so zero sits at the top, matching
	// oceanographic convention.
	InvertX bool

	Series    []Point
	Histogram []Bucket
	Table     *TableSpec

	Empty       bool
	EmptyReason EmptyReason
}

// maxTableRows caps the tabular query-result rendering.
const maxTableRows = 10

// =============================================================================
// PROJECTION
// =============================================================================

// Project maps the current data onto a plot spec for the requested kind.
// Metric kinds read profiles, distribution reads the float collection, and
// query_results reads the last query result. Every input combination yields
// a well-defined spec; empty states are explicit, never errors.
func Project(profiles []api.ProfileRecord, kind Kind, floats []api.FloatRecord, result *api.QueryResult) Spec {
	switch kind {
	case KindTemperature:
		return metricSpec(profiles, kind, "Temperature vs Depth Profile", "Temperature (°C)",
			func(p api.ProfileRecord) *float64 { return p.Temperature })
	case KindSalinity:
		return metricSpec(profiles, kind, "Salinity vs Depth Profile", "Salinity (PSU)",
			func(p api.ProfileRecord) *float64 { return p.Salinity })
	case KindOxygen:
		return metricSpec(profiles, kind, "Oxygen vs Depth Profile", "Oxygen (mg/L)",
			func(p api.ProfileRecord) *float64 { return p.Oxygen })
	case KindDistribution:
		return distributionSpec(floats)
	case KindQueryResults:
		return queryResultsSpec(result)
	default:
		return Spec{Kind: kind, Title: "No data available", Empty: true, EmptyReason: EmptyNoProfile}
	}
}

// metricSpec builds a line+marker series of (depth, metric) pairs, dropping
// levels where the metric is null.
func metricSpec(profiles []api.ProfileRecord, kind Kind, title, yLabel string, metric func(api.ProfileRecord) *float64) Spec {
	spec := Spec{
		Kind:    kind,
		Title:   title,
		XLabel:  "Depth (m)",
		YLabel:  yLabel,
		InvertX: true,
	}

	for _, p := range profiles {
		v := metric(p)
		if v == nil {
			continue
		}
		spec.Series = append(spec.Series, Point{Depth: p.Depth, Value: *v})
	}

	if len(spec.Series) == 0 {
		spec.Empty = true
		spec.EmptyReason = EmptyNoProfile
		spec.Title = fmt.Sprintf("No %s data available", kind.Label())
	}
	return spec
}

// distributionSpec builds a frequency histogram over ocean regions. The two
// empty states are deliberately distinct: no floats at all versus floats
// without region information.
func distributionSpec(floats []api.FloatRecord) Spec {
	spec := Spec{
		Kind:   KindDistribution,
		Title:  "Float Distribution by Ocean Region",
		XLabel: "Ocean Region",
		YLabel: "Number of Floats",
	}

	if len(floats) == 0 {
		spec.Empty = true
		spec.EmptyReason = EmptyNoFloats
		spec.Title = "No Float Data Available"
		return spec
	}

	counts := make(map[string]int)
	var order []string
	for _, f := range floats {
		if f.OceanRegion == "" {
			continue
		}
		if counts[f.OceanRegion] == 0 {
			order = append(order, f.OceanRegion)
		}
		counts[f.OceanRegion]++
	}

	if len(order) == 0 {
		spec.Empty = true
		spec.EmptyReason = EmptyNoRegions
		spec.Title = "No Ocean Region Data Available"
		return spec
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	for _, region := range order {
		spec.Histogram = append(spec.Histogram, Bucket{Label: region, Count: counts[region]})
	}
	return spec
}

// queryResultsSpec builds a table over the first rows of the last query
// result, with column headers taken from the first row's key set.
func queryResultsSpec(result *api.QueryResult) Spec {
	spec := Spec{Kind: KindQueryResults}

	if result == nil || len(result.Results) == 0 {
		spec.Empty = true
		spec.EmptyReason = EmptyNoQueryRows
		spec.Title = "No Query Results Available"
		return spec
	}

	rows := result.Results
	if len(rows) > maxTableRows {
		rows = rows[:maxTableRows]
	}

	columns := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	table := &TableSpec{Columns: columns, Total: result.Count}
	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, cellValue(row[col]))
		}
		table.Rows = append(table.Rows, cells)
	}

	spec.Title = fmt.Sprintf("Query Results (%d total)", result.Count)
	spec.Table = table
	return spec
}

// cellValue renders one table cell, with "N/A" for absent values.
func cellValue(v any) string {
	switch n := v.(type) {
	case nil:
		return "N/A"
	case string:
		if n == "" {
			return "N/A"
		}
		return n
	case float64:
		// Drop trailing zeros so 42.0 prints as 42.
		return fmt.Sprintf("%v", n)
	default:
		return fmt.Sprintf("%v", n)
	}
}
