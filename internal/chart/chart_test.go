// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chart

import (
	"testing"

	"github.com/floatchat/floatchat-tui/internal/api"
)

func fptr(v float64) *float64 { return &v }

func TestProject_TemperatureSeries(t *testing.T) {
	profiles := []api.ProfileRecord{
		{Depth: 10, Temperature: fptr(28.4)},
		{Depth: 50, Temperature: fptr(22.1), Salinity: fptr(35.0)},
	}

	spec := Project(profiles, KindTemperature, nil, nil)
	if spec.Empty {
		t.Fatal("expected non-empty spec")
	}
	if !spec.InvertX {
		t.Error("depth axis should be inverted")
	}
	if len(spec.Series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(spec.Series))
	}
	if spec.Series[0] != (Point{10, 28.4}) || spec.Series[1] != (Point{50, 22.1}) {
		t.Errorf("unexpected series: %+v", spec.Series)
	}
}

func TestProject_SalinityDropsNullLevels(t *testing.T) {
	profiles := []api.ProfileRecord{
		{Depth: 10, Temperature: fptr(28.4)},
		{Depth: 50, Temperature: fptr(22.1), Salinity: fptr(35.0)},
	}

	spec := Project(profiles, KindSalinity, nil, nil)
	if len(spec.Series) != 1 {
		t.Fatalf("expected 1 point, got %d", len(spec.Series))
	}
	if spec.Series[0] != (Point{50, 35.0}) {
		t.Errorf("unexpected point: %+v", spec.Series[0])
	}
}

func TestProject_MetricEmptyWhenAllNull(t *testing.T) {
	profiles := []api.ProfileRecord{{Depth: 10}, {Depth: 20}}

	spec := Project(profiles, KindOxygen, nil, nil)
	if !spec.Empty || spec.EmptyReason != EmptyNoProfile {
		t.Errorf("expected no-profile empty state, got %+v", spec)
	}
}

func TestProject_DistributionEmptyStatesDiffer(t *testing.T) {
	noFloats := Project(nil, KindDistribution, nil, nil)
	if !noFloats.Empty || noFloats.EmptyReason != EmptyNoFloats {
		t.Fatalf("expected no-floats empty state, got %+v", noFloats)
	}

	noRegions := Project(nil, KindDistribution, []api.FloatRecord{{FloatID: "F1"}}, nil)
	if !noRegions.Empty || noRegions.EmptyReason != EmptyNoRegions {
		t.Fatalf("expected no-regions empty state, got %+v", noRegions)
	}

	if noFloats.Title == noRegions.Title {
		t.Error("the two distribution empty states must be distinguishable")
	}
}

func TestProject_DistributionCounts(t *testing.T) {
	floats := []api.FloatRecord{
		{FloatID: "F1", OceanRegion: "Indian Ocean"},
		{FloatID: "F2", OceanRegion: "Pacific Ocean"},
		{FloatID: "F3", OceanRegion: "Indian Ocean"},
		{FloatID: "F4"},
	}

	spec := Project(nil, KindDistribution, floats, nil)
	if spec.Empty {
		t.Fatal("expected non-empty spec")
	}
	if len(spec.Histogram) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(spec.Histogram))
	}
	if spec.Histogram[0] != (Bucket{"Indian Ocean", 2}) {
		t.Errorf("expected Indian Ocean first with count 2, got %+v", spec.Histogram[0])
	}
	if spec.Histogram[1] != (Bucket{"Pacific Ocean", 1}) {
		t.Errorf("unexpected second bucket: %+v", spec.Histogram[1])
	}
}

func TestProject_QueryResultsTable(t *testing.T) {
	result := &api.QueryResult{
		Count: 2,
		Results: []api.Row{
			{"float_id": "F1", "status": "active"},
			{"float_id": "F2", "status": nil},
		},
	}

	spec := Project(nil, KindQueryResults, nil, result)
	if spec.Table == nil {
		t.Fatal("expected table spec")
	}
	if len(spec.Table.Columns) != 2 || spec.Table.Columns[0] != "float_id" || spec.Table.Columns[1] != "status" {
		t.Errorf("unexpected columns: %v", spec.Table.Columns)
	}
	if spec.Table.Rows[1][1] != "N/A" {
		t.Errorf("nil cell should render as N/A, got %q", spec.Table.Rows[1][1])
	}
	if spec.Table.Total != 2 {
		t.Errorf("expected total 2, got %d", spec.Table.Total)
	}
}

func TestProject_QueryResultsTableCap(t *testing.T) {
	result := &api.QueryResult{Count: 25}
	for i := 0; i < 25; i++ {
		result.Results = append(result.Results, api.Row{"n": float64(i)})
	}

	spec := Project(nil, KindQueryResults, nil, result)
	if len(spec.Table.Rows) != maxTableRows {
		t.Errorf("expected %d rows, got %d", maxTableRows, len(spec.Table.Rows))
	}
	if spec.Table.Total != 25 {
		t.Errorf("total should report full count, got %d", spec.Table.Total)
	}
}

func TestProject_QueryResultsEmpty(t *testing.T) {
	spec := Project(nil, KindQueryResults, nil, nil)
	if !spec.Empty || spec.EmptyReason != EmptyNoQueryRows {
		t.Errorf("expected no-query-rows empty state, got %+v", spec)
	}
}

func TestParseKind(t *testing.T) {
	if k, ok := ParseKind("salinity"); !ok || k != KindSalinity {
		t.Errorf("ParseKind(salinity) = %v, %v", k, ok)
	}
	if _, ok := ParseKind("pressure"); ok {
		t.Error("ParseKind should reject unknown kinds")
	}
}
