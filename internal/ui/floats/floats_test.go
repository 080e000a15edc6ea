// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package floats

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/catalog"
	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

func coord(v float64) api.Coordinate {
	return api.Coordinate{Value: v, Valid: true}
}

func testFloats() []api.FloatRecord {
	return []api.FloatRecord{
		{FloatID: "F001", WMOID: "5906001", Latitude: coord(12.5), Longitude: coord(67.8),
			Status: api.StatusActive, OceanRegion: "Indian Ocean", TotalProfiles: 120},
		{FloatID: "F002", Status: api.StatusLost, OceanRegion: "Pacific Ocean", TotalProfiles: 12},
	}
}

func testTab(t *testing.T, onSelect func(f *api.FloatRecord) tea.Cmd) Model {
	t.Helper()
	m := New(styles.NewTheme(), onSelect)
	m.SetSize(120, 30)
	m.SetFloats(testFloats(), 2)
	m.SetRegions([]string{"Indian Ocean", "Pacific Ocean"})
	return m
}

// =============================================================================
// FILTERS
// =============================================================================

func TestStatusCycleEmitsFilterChange(t *testing.T) {
	m := testTab(t, nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if cmd == nil {
		t.Fatal("expected a filter change command")
	}
	msg, ok := cmd().(FilterChangedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want FilterChangedMsg", cmd())
	}
	if msg.Status != string(api.StatusActive) {
		t.Errorf("Status = %q, want active", msg.Status)
	}
	if m.Status() != string(api.StatusActive) {
		t.Errorf("model status = %q", m.Status())
	}
}

func TestStatusCycleWraps(t *testing.T) {
	m := testTab(t, nil)

	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	}
	if m.Status() != catalog.All {
		t.Errorf("status = %q, want wrap back to all", m.Status())
	}
}

func TestRegionCycle(t *testing.T) {
	m := testTab(t, nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	msg := cmd().(FilterChangedMsg)
	if msg.Region != "Indian Ocean" {
		t.Errorf("Region = %q, want Indian Ocean", msg.Region)
	}
}

func TestSetRegionsKeepsCurrentPick(t *testing.T) {
	m := testTab(t, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}) // Indian Ocean

	m.SetRegions([]string{"Atlantic Ocean", "Indian Ocean"})
	if m.Region() != "Indian Ocean" {
		t.Errorf("Region = %q, want the pick preserved", m.Region())
	}

	m.SetRegions([]string{"Atlantic Ocean"})
	if m.Region() != catalog.All {
		t.Errorf("Region = %q, want reset when the pick vanished", m.Region())
	}
}

func TestSearchTyping(t *testing.T) {
	m := testTab(t, nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.searchFocused {
		t.Fatal("slash should focus the search box")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("F0")})
	if m.Search() != "F0" {
		t.Errorf("Search = %q", m.Search())
	}
	if cmd == nil {
		t.Fatal("typing should emit a filter change")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searchFocused {
		t.Error("esc should blur the search box")
	}
}

func TestClearFilters(t *testing.T) {
	m := testTab(t, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	msg := cmd().(FilterChangedMsg)
	if msg.Search != "" || msg.Status != catalog.All || msg.Region != catalog.All {
		t.Errorf("clear emitted %+v, want all wildcards", msg)
	}
}

// =============================================================================
// SELECTION
// =============================================================================

func TestEnterSelectsCursorFloat(t *testing.T) {
	var selected *api.FloatRecord
	m := testTab(t, func(f *api.FloatRecord) tea.Cmd {
		selected = f
		return nil
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if selected == nil {
		t.Fatal("enter did not fire the callback")
	}
	if selected.FloatID != "F001" {
		t.Errorf("selected %s, want F001", selected.FloatID)
	}
}

func TestSelectedFloatEmptyTable(t *testing.T) {
	m := New(styles.NewTheme(), nil)
	m.SetSize(120, 30)
	m.SetFloats(nil, 0)

	if m.SelectedFloat() != nil {
		t.Error("expected nil selection on an empty table")
	}
}

// =============================================================================
// RENDERING
// =============================================================================

func TestViewContainsRowsAndCounts(t *testing.T) {
	m := testTab(t, nil)

	view := m.View()
	for _, want := range []string{"F001", "5906001", "Indian Ocean", "2/2", "12.5N 67.8E"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRowFormatting(t *testing.T) {
	f := testFloats()[1] // no WMO, no coordinates
	r := row(f)

	if r[1] != "N/A" {
		t.Errorf("WMO cell = %q, want N/A", r[1])
	}
	if r[2] != "Lost" {
		t.Errorf("status cell = %q, want title-cased Lost", r[2])
	}
	if r[4] != "N/A" {
		t.Errorf("position cell = %q, want N/A", r[4])
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"active", "Active"},
		{"indian ocean", "Indian Ocean"},
		{"all", "All"},
		{"", "N/A"},
	}
	for _, tt := range tests {
		if got := displayLabel(tt.in); got != tt.want {
			t.Errorf("displayLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
