// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package floats provides the float catalog tab: a filterable table of every
// float the dashboard knows about.
//
// The tab owns the filter widgets and reports filter changes upward through
// a typed message; the root model applies them to the shared state and
// pushes the filtered collection back down. Selection goes through an
// injected callback, the same contract the map tab uses.
package floats

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/catalog"
	"github.com/floatchat/floatchat-tui/internal/ui/components"
	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// FilterChangedMsg reports a filter edit for the root model to apply.
type FilterChangedMsg struct {
	Search string
	Status string
	Region string
}

// titleCaser display-cases raw status and region values from the backend.
var titleCaser = cases.Title(language.English)

// =============================================================================
// MODEL
// =============================================================================

// Model is the floats tab.
type Model struct {
	theme  *styles.Theme
	width  int
	height int

	table  table.Model
	search textinput.Model

	// searchFocused routes keys to the search box instead of the table.
	searchFocused bool

	statuses  []string
	statusIdx int
	regions   []string
	regionIdx int

	// visible mirrors the table rows so the cursor maps back to a record.
	visible []api.FloatRecord
	total   int

	onSelect func(f *api.FloatRecord) tea.Cmd
}

// New creates the floats tab with a selection callback.
func New(theme *styles.Theme, onSelect func(f *api.FloatRecord) tea.Cmd) Model {
	search := textinput.New()
	search.Placeholder = "id, region, or country"
	search.Prompt = "/ "
	search.CharLimit = 60

	t := table.New(
		table.WithColumns(columns(96)),
		table.WithFocused(true),
	)
	ts := table.DefaultStyles()
	ts.Header = theme.TableHeader
	ts.Selected = theme.TableRowSelected
	t.SetStyles(ts)

	statuses := []string{
		catalog.All,
		string(api.StatusActive),
		string(api.StatusInactive),
		string(api.StatusLost),
		string(api.StatusUnknown),
	}

	return Model{
		theme:    theme,
		table:    t,
		search:   search,
		statuses: statuses,
		regions:  []string{catalog.All},
		onSelect: onSelect,
	}
}

// SetSize resizes the table to the content area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.table.SetColumns(columns(width - 4))
	tableHeight := height - 5
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
	m.search.Width = width / 3
}

// SetFloats replaces the displayed collection with the filtered floats and
// the unfiltered total for the counter.
func (m *Model) SetFloats(visible []api.FloatRecord, total int) {
	m.visible = visible
	m.total = total

	rows := make([]table.Row, 0, len(visible))
	for _, f := range visible {
		rows = append(rows, row(f))
	}
	m.table.SetRows(rows)
}

// SetRegions replaces the region filter options, keeping the current pick
// when it still exists.
func (m *Model) SetRegions(regions []string) {
	current := m.Region()
	m.regions = append([]string{catalog.All}, regions...)
	m.regionIdx = 0
	for i, r := range m.regions {
		if r == current {
			m.regionIdx = i
			break
		}
	}
}

// Search returns the active free-text filter.
func (m *Model) Search() string { return m.search.Value() }

// Status returns the active status filter.
func (m *Model) Status() string { return m.statuses[m.statusIdx] }

// Region returns the active region filter.
func (m *Model) Region() string { return m.regions[m.regionIdx] }

// SelectedFloat returns the float under the table cursor, or nil.
func (m *Model) SelectedFloat() *api.FloatRecord {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return nil
	}
	return &m.visible[idx]
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes keys between the search box, the filter cyclers, and the
// table. Filter edits emit FilterChangedMsg instead of filtering locally.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searchFocused {
		return m.updateSearch(key)
	}

	switch key.String() {
	case "/":
		m.searchFocused = true
		return m, m.search.Focus()
	case "s":
		m.statusIdx = (m.statusIdx + 1) % len(m.statuses)
		return m, m.filterChanged()
	case "r":
		m.regionIdx = (m.regionIdx + 1) % len(m.regions)
		return m, m.filterChanged()
	case "c":
		return m.clearFilters()
	case "enter":
		if f := m.SelectedFloat(); f != nil && m.onSelect != nil {
			selected := *f
			return m, m.onSelect(&selected)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(key)
	return m, cmd
}

func (m Model) updateSearch(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "enter", "esc":
		m.searchFocused = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	return m, tea.Batch(cmd, m.filterChanged())
}

func (m Model) clearFilters() (Model, tea.Cmd) {
	m.search.Reset()
	m.statusIdx = 0
	m.regionIdx = 0
	return m, m.filterChanged()
}

// filterChanged snapshots the filters before the closure runs.
func (m *Model) filterChanged() tea.Cmd {
	msg := FilterChangedMsg{
		Search: m.Search(),
		Status: m.Status(),
		Region: m.Region(),
	}
	return func() tea.Msg { return msg }
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the filter strip, the table, and the selected float detail.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderFilters(),
		m.table.View(),
		m.renderDetail(),
	)
}

func (m Model) renderFilters() string {
	searchView := m.search.View()
	if !m.searchFocused && m.search.Value() == "" {
		searchView = m.theme.FilterLabel.Render("/ search")
	}

	parts := []string{
		searchView,
		m.theme.FilterLabel.Render("[s]tatus ") + m.theme.FilterValue.Render(displayLabel(m.Status())),
		m.theme.FilterLabel.Render("[r]egion ") + m.theme.FilterValue.Render(displayLabel(m.Region())),
		m.theme.FilterLabel.Render(strconv.Itoa(len(m.visible)) + "/" + strconv.Itoa(m.total)),
	}
	return strings.Join(parts, "  ")
}

// renderDetail shows the cursor float with full coordinates and dates.
func (m Model) renderDetail() string {
	f := m.SelectedFloat()
	if f == nil {
		return m.theme.FilterLabel.Render("No floats match the current filters.")
	}

	fields := []string{
		f.Latitude.Format("N") + " " + f.Longitude.Format("E"),
		"deployed " + api.FormatDate(f.DeploymentDate),
		"last profile " + api.FormatDate(f.LastProfileDate),
	}
	if f.Institution != "" {
		fields = append(fields, f.Institution)
	}

	badge := m.statusBadge(f.Status)
	return badge + " " + m.theme.FilterValue.Render(strings.Join(fields, " | "))
}

// statusBadge pairs the status marker shape with its color.
func (m Model) statusBadge(status api.FloatStatus) string {
	switch status {
	case api.StatusActive:
		return m.theme.MapMarkerActive.Render(styles.FloatMarkers.Active + " " + displayLabel(string(status)))
	case api.StatusLost:
		return m.theme.MapMarkerLost.Render(styles.FloatMarkers.Lost + " " + displayLabel(string(status)))
	default:
		return m.theme.MapMarkerIdle.Render(styles.FloatMarkers.Inactive + " " + displayLabel(string(status)))
	}
}

// =============================================================================
// TABLE SHAPE
// =============================================================================

func columns(width int) []table.Column {
	// Fixed columns get their width; the region column absorbs the rest.
	fixed := 12 + 10 + 10 + 16 + 10 + 14
	regionWidth := width - fixed
	if regionWidth < 12 {
		regionWidth = 12
	}
	return []table.Column{
		{Title: "Float ID", Width: 12},
		{Title: "WMO", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Region", Width: regionWidth},
		{Title: "Position", Width: 16},
		{Title: "Profiles", Width: 10},
		{Title: "Last Profile", Width: 14},
	}
}

func row(f api.FloatRecord) table.Row {
	position := "N/A"
	if f.HasPosition() {
		position = components.FmtLatLon(f.Latitude.Value, f.Longitude.Value)
	}
	region := f.OceanRegion
	if region == "" {
		region = "N/A"
	}
	return table.Row{
		f.FloatID,
		orNA(f.WMOID),
		displayLabel(string(f.Status)),
		region,
		position,
		strconv.Itoa(f.TotalProfiles),
		api.FormatDate(f.LastProfileDate),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// displayLabel title-cases a raw backend value for display. The "all"
// wildcard renders as All like any other label.
func displayLabel(s string) string {
	if s == "" {
		return "N/A"
	}
	return titleCaser.String(s)
}
