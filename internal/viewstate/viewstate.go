// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package viewstate holds the shared dashboard state that keeps the map,
// chart, and table views consistent with each other.
//
// # Key Types
//
//   - State: single source of truth for floats, query results, and selection
//
// # Usage
//
//	state := viewstate.New()
//	state.SetFloats(floats)
//	token := state.SelectFloat(&floats[0])
//	// later, when the async profile fetch returns:
//	state.AcceptProfiles(token, profiles)
//
// State is owned by the root TUI model and accessed from its single update
// goroutine, so it carries no locking of its own.
package viewstate

import (
	"github.com/google/uuid"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/catalog"
	"github.com/floatchat/floatchat-tui/internal/chart"
)

// State is the shared dashboard state. Every view renders from it, so a
// single update fans out to all of them on the next frame.
type State struct {
	floats []api.FloatRecord
	result *api.QueryResult

	selected *api.FloatRecord
	profiles []api.ProfileRecord

	// selectionToken changes on every selection. Profile responses that
	// arrive carrying a stale token are dropped instead of being applied
	// to whatever float the user has moved on to.
	selectionToken string

	chartKind chart.Kind

	search string
	status string
	region string
}

// New returns an empty dashboard state with the temperature chart selected.
func New() *State {
	return &State{
		chartKind: chart.KindTemperature,
		status:    catalog.All,
		region:    catalog.All,
	}
}

// =============================================================================
// FLOATS AND QUERY RESULTS
// =============================================================================

// SetFloats replaces the float collection, clearing any selection that no
// longer refers to a known float.
func (s *State) SetFloats(floats []api.FloatRecord) {
	s.floats = floats
	if s.selected != nil && s.lookup(s.selected.FloatID) == nil {
		s.clearSelection()
	}
}

// Floats returns the full, unfiltered float collection.
func (s *State) Floats() []api.FloatRecord { return s.floats }

// SetQueryResult applies a new query result atomically across the views:
// the chart switches to the tabular query-results mode, and when the rows
// are float-shaped they replace the catalog so the map and table show
// exactly the floats the query returned. It reports whether the catalog
// was replaced.
func (s *State) SetQueryResult(result *api.QueryResult) bool {
	s.result = result
	s.chartKind = chart.KindQueryResults

	if result == nil {
		return false
	}
	floats, ok := api.FloatsFromResult(result)
	if !ok {
		return false
	}
	s.SetFloats(floats)
	return true
}

// LastResult returns the most recent query result, or nil.
func (s *State) LastResult() *api.QueryResult { return s.result }

// =============================================================================
// SELECTION
// =============================================================================

// SelectFloat marks a float as selected and returns a fresh token that the
// caller attaches to its profile fetch. Passing nil clears the selection;
// the returned token is then empty.
func (s *State) SelectFloat(f *api.FloatRecord) string {
	if f == nil {
		s.clearSelection()
		return ""
	}
	s.selected = f
	s.profiles = nil
	s.selectionToken = uuid.NewString()
	return s.selectionToken
}

// AcceptProfiles applies fetched profiles if the token still matches the
// current selection. It reports whether the profiles were applied.
func (s *State) AcceptProfiles(token string, profiles []api.ProfileRecord) bool {
	if token == "" || token != s.selectionToken {
		return false
	}
	s.profiles = profiles
	return true
}

// Selected returns the selected float, or nil.
func (s *State) Selected() *api.FloatRecord { return s.selected }

// Profiles returns the profiles of the selected float, if loaded.
func (s *State) Profiles() []api.ProfileRecord { return s.profiles }

func (s *State) clearSelection() {
	s.selected = nil
	s.profiles = nil
	s.selectionToken = ""
}

func (s *State) lookup(floatID string) *api.FloatRecord {
	for i := range s.floats {
		if s.floats[i].FloatID == floatID {
			return &s.floats[i]
		}
	}
	return nil
}

// =============================================================================
// FILTERS AND CHART
// =============================================================================

// SetSearch updates the free-text filter term.
func (s *State) SetSearch(term string) { s.search = term }

// SetStatus updates the status dropdown filter.
func (s *State) SetStatus(status string) { s.status = status }

// SetRegion updates the region dropdown filter.
func (s *State) SetRegion(region string) { s.region = region }

// Search returns the current free-text filter term.
func (s *State) Search() string { return s.search }

// Status returns the current status filter.
func (s *State) Status() string { return s.status }

// Region returns the current region filter.
func (s *State) Region() string { return s.region }

// Visible returns the floats passing the current filters, in catalog order.
func (s *State) Visible() []api.FloatRecord {
	return catalog.Filter(s.floats, s.search, s.status, s.region)
}

// Regions enumerates the regions available to the dropdown.
func (s *State) Regions() []string { return catalog.Regions(s.floats) }

// SetChartKind switches the chart panel mode.
func (s *State) SetChartKind(kind chart.Kind) { s.chartKind = kind }

// ChartKind returns the current chart panel mode.
func (s *State) ChartKind() chart.Kind { return s.chartKind }

// ChartSpec projects the current state onto a plot spec for the chart panel.
func (s *State) ChartSpec() chart.Spec {
	return chart.Project(s.profiles, s.chartKind, s.floats, s.result)
}
