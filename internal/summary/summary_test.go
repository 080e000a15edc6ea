// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package summary turns generic query results into human-readable text.
package summary

import (
	"strings"
	"testing"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// =============================================================================
// SHORT SUMMARY TESTS
// =============================================================================

func TestShortSummary_FloatRows(t *testing.T) {
	result := &api.QueryResult{
		Results: []api.Row{
			{"float_id": "F1", "status": "active"},
			{"float_id": "F2", "status": "lost"},
		},
		Count: 2,
	}

	out := ShortSummary(result, "x")

	if !strings.Contains(out, "Found 2 records") {
		t.Errorf("summary should state the record count, got:\n%s", out)
	}
	if !strings.Contains(out, "Float ID: F1 | Status: active") {
		t.Errorf("summary should list F1 with status, got:\n%s", out)
	}
	if !strings.Contains(out, "Float ID: F2 | Status: lost") {
		t.Errorf("summary should list F2 with status, got:\n%s", out)
	}
	for _, forbidden := range []string{"null", "undefined", "<nil>"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("summary must not contain %q, got:\n%s", forbidden, out)
		}
	}
}

func TestShortSummary_FloatRowFieldPriority(t *testing.T) {
	result := &api.QueryResult{
		Results: []api.Row{{
			"float_id":       "F1",
			"latitude":       15.5,
			"longitude":      "70.2",
			"status":         "active",
			"ocean_region":   "Arabian Sea",
			"total_profiles": 42.0,
		}},
		Count: 1,
	}

	out := ShortSummary(result, "q")
	want := "Float ID: F1 | Location: 15.5°N, 70.2°E | Status: active | Region: Arabian Sea | Profiles: 42"
	if !strings.Contains(out, want) {
		t.Errorf("row line mismatch.\nwant substring: %s\ngot:\n%s", want, out)
	}
}

func TestShortSummary_ProfileRows(t *testing.T) {
	// A zero depth is still a profile row, and null metrics are omitted.
	result := &api.QueryResult{
		Results: []api.Row{
			{"depth": 0.0, "temperature": 28.4, "salinity": nil},
			{"depth": 50.0, "temperature": nil, "salinity": 35.0},
		},
		Count: 2,
	}

	out := ShortSummary(result, "q")
	if !strings.Contains(out, "Depth: 0m | Temperature: 28.4°C") {
		t.Errorf("zero-depth row mishandled, got:\n%s", out)
	}
	if !strings.Contains(out, "Depth: 50m | Salinity: 35 PSU") {
		t.Errorf("null temperature should be omitted, got:\n%s", out)
	}
	if strings.Contains(out, "null") {
		t.Errorf("summary must not render null fields, got:\n%s", out)
	}
}

func TestShortSummary_GenericRowsAndRemainder(t *testing.T) {
	result := &api.QueryResult{
		Results: []api.Row{
			{"region": "Arabian Sea", "avg_temp": 24.1},
			{"region": "Bay of Bengal", "avg_temp": 26.7},
			{"region": "Indian Ocean", "avg_temp": 22.0},
			{"region": "Pacific", "avg_temp": 19.5},
			{"region": "Atlantic", "avg_temp": 18.2},
		},
		Count: 5,
	}

	out := ShortSummary(result, "q")
	if !strings.Contains(out, "avg_temp: 24.1 | region: Arabian Sea") {
		t.Errorf("generic rows should join key: value pairs, got:\n%s", out)
	}
	if !strings.Contains(out, "... and 2 more results") {
		t.Errorf("remainder count missing, got:\n%s", out)
	}
}

func TestShortSummary_PrependsBackendSummary(t *testing.T) {
	result := &api.QueryResult{
		Results: []api.Row{{"float_id": "F1"}},
		Count:   1,
		Summary: "One active float in the Arabian Sea.",
	}

	out := ShortSummary(result, "q")
	if !strings.HasPrefix(out, "📝 **Summary:** One active float in the Arabian Sea.") {
		t.Errorf("backend summary should be prepended, got:\n%s", out)
	}
}

func TestShortSummary_EmptyResults(t *testing.T) {
	out := ShortSummary(&api.QueryResult{Count: 0}, "q")
	if !strings.Contains(out, "Found 0 records") {
		t.Errorf("empty result should still state the count, got:\n%s", out)
	}
}

// =============================================================================
// INSIGHT DIGEST TESTS
// =============================================================================

func TestInsightDigest_Empty(t *testing.T) {
	if got := InsightDigest(&api.QueryResult{}); got != NoResultsMessage {
		t.Errorf("InsightDigest(empty) = %q, want %q", got, NoResultsMessage)
	}
	if got := InsightDigest(nil); got != NoResultsMessage {
		t.Errorf("InsightDigest(nil) = %q, want %q", got, NoResultsMessage)
	}
}

func TestInsightDigest_SingleRowStats(t *testing.T) {
	result := &api.QueryResult{
		Results: []api.Row{{"depth": 100.0, "region": "Arabian Sea"}},
		Count:   1,
	}

	out := InsightDigest(result)

	// One parseable value: min = avg = max.
	if !strings.Contains(out, "depth: avg 100.000, min 100.000, max 100.000 (based on 1 values).") {
		t.Errorf("single-value stats mismatch, got:\n%s", out)
	}
	if !strings.Contains(out, "region: top values → Arabian Sea (1).") {
		t.Errorf("categorical top values mismatch, got:\n%s", out)
	}
	if !strings.Contains(out, "Example row: depth=100 | region=Arabian Sea") {
		t.Errorf("example-row preview mismatch, got:\n%s", out)
	}
}

func TestInsightDigest_NumericStringCoercion(t *testing.T) {
	result := &api.QueryResult{
		Results: []api.Row{
			{"lat": "10.0"},
			{"lat": "20.0"},
			{"lat": "not a number"}, // ignored, not fatal
		},
		Count: 3,
	}

	out := InsightDigest(result)
	if !strings.Contains(out, "lat: avg 15.000, min 10.000, max 20.000 (based on 2 values).") {
		t.Errorf("string-number coercion mismatch, got:\n%s", out)
	}
}

func TestInsightDigest_CategoricalFrequency(t *testing.T) {
	result := &api.QueryResult{
		Results: []api.Row{
			{"status": "active"},
			{"status": "active"},
			{"status": "lost"},
			{"status": "inactive"},
			{"status": "lost"},
			{"status": nil}, // skipped
			{"status": ""},  // skipped
		},
		Count: 7,
	}

	out := InsightDigest(result)
	if !strings.Contains(out, "status: top values → active (2), lost (2), inactive (1).") {
		t.Errorf("frequency ordering mismatch (ties keep first-seen order), got:\n%s", out)
	}
}

func TestInsightDigest_ColumnLimits(t *testing.T) {
	// Five numeric and three categorical columns; only 3 and 2 reported.
	result := &api.QueryResult{
		Results: []api.Row{{
			"a_num": 1.0, "b_num": 2.0, "c_num": 3.0, "d_num": 4.0, "e_num": 5.0,
			"x_cat": "x", "y_cat": "y", "z_cat": "z",
		}},
		Count: 1,
	}

	out := InsightDigest(result)
	for _, want := range []string{"a_num: avg", "b_num: avg", "c_num: avg"} {
		if !strings.Contains(out, want) {
			t.Errorf("digest should report %q, got:\n%s", want, out)
		}
	}
	for _, forbidden := range []string{"d_num: avg", "e_num: avg", "z_cat: top"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("digest should cap columns, unexpectedly found %q in:\n%s", forbidden, out)
		}
	}
}

func TestInsightDigest_PreviewMissingValues(t *testing.T) {
	// First row misses a column another row introduces: preview prints N/A.
	result := &api.QueryResult{
		Results: []api.Row{
			{"alpha": "x"},
			{"alpha": "y", "beta": "z"},
		},
		Count: 2,
	}

	out := InsightDigest(result)
	if !strings.Contains(out, "Example row: alpha=x | beta=N/A") {
		t.Errorf("missing preview values should render as N/A, got:\n%s", out)
	}
}
