// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"reflect"
	"testing"

	"github.com/floatchat/floatchat-tui/internal/api"
)

func sampleFloats() []api.FloatRecord {
	return []api.FloatRecord{
		{FloatID: "ARGO-2901234", Status: api.StatusActive, OceanRegion: "Indian Ocean", Country: "India"},
		{FloatID: "ARGO-5904321", Status: api.StatusInactive, OceanRegion: "Pacific Ocean", Country: "USA"},
		{FloatID: "ARGO-6903868", Status: api.StatusActive, OceanRegion: "Atlantic Ocean", Country: "France"},
		{FloatID: "ARGO-1901999", Status: api.StatusLost, OceanRegion: "Indian Ocean", Country: "Australia"},
	}
}

func TestFilter_IdentityWhenUnfiltered(t *testing.T) {
	floats := sampleFloats()
	got := Filter(floats, "", All, All)
	if !reflect.DeepEqual(got, floats) {
		t.Errorf("empty filters should return every float in order, got %v", got)
	}
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleFloats(), "indian", All, All)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].FloatID != "ARGO-2901234" || got[1].FloatID != "ARGO-1901999" {
		t.Errorf("search should preserve input order, got %v", got)
	}
}

func TestFilter_SearchMatchesIDAndCountry(t *testing.T) {
	if got := Filter(sampleFloats(), "5904", All, All); len(got) != 1 || got[0].FloatID != "ARGO-5904321" {
		t.Errorf("search by ID fragment failed: %v", got)
	}
	if got := Filter(sampleFloats(), "france", All, All); len(got) != 1 || got[0].Country != "France" {
		t.Errorf("search by country failed: %v", got)
	}
}

func TestFilter_StatusAndRegionCombine(t *testing.T) {
	got := Filter(sampleFloats(), "", "active", "Indian Ocean")
	if len(got) != 1 || got[0].FloatID != "ARGO-2901234" {
		t.Errorf("combined filters failed: %v", got)
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(sampleFloats(), "pacific", "active", All)
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	floats := sampleFloats()
	want := sampleFloats()
	Filter(floats, "argo", "active", "Indian Ocean")
	if !reflect.DeepEqual(floats, want) {
		t.Error("Filter mutated its input")
	}
}

func TestRegions_UniqueSorted(t *testing.T) {
	got := Regions(sampleFloats())
	want := []string{"Atlantic Ocean", "Indian Ocean", "Pacific Ocean"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Regions = %v, want %v", got, want)
	}
}

func TestStatuses_SkipsEmpty(t *testing.T) {
	floats := append(sampleFloats(), api.FloatRecord{FloatID: "X"})
	got := Statuses(floats)
	want := []string{"active", "inactive", "lost"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Statuses = %v, want %v", got, want)
	}
}
