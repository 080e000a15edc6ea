// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mapview renders float positions on an ASCII world grid.
//
// Latitude and longitude are projected onto a character grid fitted to the
// bounds of the plotted floats. Markers pair shape with color per status so
// the map stays readable without color vision. Floats without a usable
// coordinate pair are listed in the footer count but never plotted.
package mapview

import (
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/ui/components"
	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// boundsPadDegrees keeps markers off the grid edge.
const boundsPadDegrees = 2.0

// footerHeight covers the legend and the detail line.
const footerHeight = 3

// =============================================================================
// MODEL
// =============================================================================

// Model is the map tab. Selection is reported through the injected callback
// so the package never reaches into shared state on its own.
type Model struct {
	theme  *styles.Theme
	width  int
	height int

	// plottable holds floats with valid coordinates, in stable order.
	plottable []api.FloatRecord
	total     int

	cursor     int
	selectedID string

	// onSelect is invoked when the user presses enter on a float.
	onSelect func(f *api.FloatRecord) tea.Cmd
}

// New creates the map tab with a selection callback.
func New(theme *styles.Theme, onSelect func(f *api.FloatRecord) tea.Cmd) Model {
	return Model{theme: theme, onSelect: onSelect}
}

// SetSize resizes the map to its content area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFloats replaces the plotted floats. Order is fixed by float ID so the
// cursor walks the same sequence on every render.
func (m *Model) SetFloats(floats []api.FloatRecord) {
	m.total = len(floats)
	m.plottable = m.plottable[:0]
	for _, f := range floats {
		if f.HasPosition() {
			m.plottable = append(m.plottable, f)
		}
	}
	sort.Slice(m.plottable, func(i, j int) bool {
		return m.plottable[i].FloatID < m.plottable[j].FloatID
	})
	if m.cursor >= len(m.plottable) {
		m.cursor = 0
	}
}

// SetSelected highlights the float the dashboard has selected.
func (m *Model) SetSelected(floatID string) {
	m.selectedID = floatID
}

// CursorFloat returns the float under the cursor, or nil.
func (m *Model) CursorFloat() *api.FloatRecord {
	if len(m.plottable) == 0 {
		return nil
	}
	return &m.plottable[m.cursor]
}

// =============================================================================
// UPDATE
// =============================================================================

// Update moves the cursor and fires the selection callback on enter.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.plottable) == 0 {
		return m, nil
	}

	switch key.String() {
	case "left", "up", "h", "k":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.plottable) - 1
		}
	case "right", "down", "l", "j":
		m.cursor = (m.cursor + 1) % len(m.plottable)
	case "enter":
		if m.onSelect != nil {
			f := m.plottable[m.cursor]
			return m, m.onSelect(&f)
		}
	}
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the fitted grid, the legend, and the cursor float's details.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.total == 0 {
		return m.emptyState("No float data available. Run a query or /refresh the catalog.")
	}
	if len(m.plottable) == 0 {
		return m.emptyState("No floats carry usable coordinates.")
	}

	cols := m.width - 6
	rows := m.height - footerHeight - 4
	if cols < 10 {
		cols = 10
	}
	if rows < 4 {
		rows = 4
	}

	grid := m.renderGrid(cols, rows)
	box := m.theme.MapBox.Render(grid)

	return lipgloss.JoinVertical(lipgloss.Left,
		box,
		m.renderLegend(),
		m.renderDetail(),
	)
}

// renderGrid projects every plottable float onto a cols x rows cell grid.
func (m Model) renderGrid(cols, rows int) string {
	minLat, maxLat, minLon, maxLon := fitBounds(m.plottable)

	// cell carries the topmost marker for a grid position.
	type cell struct {
		marker string
		style  lipgloss.Style
	}
	cells := make(map[[2]int]cell)

	// The cursor float is plotted last so it wins any shared cell.
	for i, f := range m.plottable {
		if i == m.cursor {
			continue
		}
		r := projectRow(f.Latitude.Value, minLat, maxLat, rows)
		c := projectCol(f.Longitude.Value, minLon, maxLon, cols)
		marker, style := m.markerFor(f)
		cells[[2]int{r, c}] = cell{marker: marker, style: style}
	}
	if cur := m.CursorFloat(); cur != nil {
		r := projectRow(cur.Latitude.Value, minLat, maxLat, rows)
		c := projectCol(cur.Longitude.Value, minLon, maxLon, cols)
		marker, _ := m.markerFor(*cur)
		cells[[2]int{r, c}] = cell{marker: marker, style: m.theme.MapMarkerCurrent}
	}

	water := m.theme.MapWater.Render(".")
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cl, ok := cells[[2]int{r, c}]; ok {
				sb.WriteString(cl.style.Render(cl.marker))
				continue
			}
			sb.WriteString(water)
		}
		if r < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// markerFor pairs the status shape with its style; the dashboard-selected
// float gets the selection marker regardless of status.
func (m Model) markerFor(f api.FloatRecord) (string, lipgloss.Style) {
	if m.selectedID != "" && f.FloatID == m.selectedID {
		return styles.FloatMarkers.Selected, m.theme.MapMarkerActive
	}
	switch f.Status {
	case api.StatusActive:
		return styles.FloatMarkers.Active, m.theme.MapMarkerActive
	case api.StatusLost:
		return styles.FloatMarkers.Lost, m.theme.MapMarkerLost
	default:
		return styles.FloatMarkers.Inactive, m.theme.MapMarkerIdle
	}
}

func (m Model) renderLegend() string {
	parts := []string{
		m.theme.MapMarkerActive.Render(styles.FloatMarkers.Active) + " active",
		m.theme.MapMarkerIdle.Render(styles.FloatMarkers.Inactive) + " inactive",
		m.theme.MapMarkerLost.Render(styles.FloatMarkers.Lost) + " lost",
		m.theme.MapMarkerActive.Render(styles.FloatMarkers.Selected) + " selected",
	}
	plotted := len(m.plottable)
	counts := " | " + toCount(plotted, m.total)
	return m.theme.MapLegend.Render(strings.Join(parts, "  ") + counts)
}

// renderDetail shows the cursor float with formatted coordinates and dates.
func (m Model) renderDetail() string {
	f := m.CursorFloat()
	if f == nil {
		return ""
	}

	pos := components.FmtLatLon(f.Latitude.Value, f.Longitude.Value)
	fields := []string{
		"Float " + f.FloatID,
		pos,
		string(f.Status),
		"last profile " + api.FormatDate(f.LastProfileDate),
	}
	if f.WMOID != "" {
		fields = append([]string{fields[0], "WMO " + f.WMOID}, fields[1:]...)
	}

	hint := m.theme.MapLegend.Render("  arrows move, enter selects")
	return m.theme.FilterValue.Render(strings.Join(fields, " | ")) + hint
}

func (m Model) emptyState(text string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.theme.ChartEmpty.Render(text))
}

// =============================================================================
// PROJECTION
// =============================================================================

// fitBounds computes padded lat/lon bounds around the plotted floats. A
// single float, or floats sharing a position, still get a non-degenerate box.
func fitBounds(floats []api.FloatRecord) (minLat, maxLat, minLon, maxLon float64) {
	minLat, maxLat = 90, -90
	minLon, maxLon = 180, -180
	for _, f := range floats {
		if f.Latitude.Value < minLat {
			minLat = f.Latitude.Value
		}
		if f.Latitude.Value > maxLat {
			maxLat = f.Latitude.Value
		}
		if f.Longitude.Value < minLon {
			minLon = f.Longitude.Value
		}
		if f.Longitude.Value > maxLon {
			maxLon = f.Longitude.Value
		}
	}

	minLat, maxLat = pad(minLat, maxLat, -90, 90)
	minLon, maxLon = pad(minLon, maxLon, -180, 180)
	return minLat, maxLat, minLon, maxLon
}

func pad(lo, hi, floor, ceil float64) (float64, float64) {
	lo -= boundsPadDegrees
	hi += boundsPadDegrees
	if lo < floor {
		lo = floor
	}
	if hi > ceil {
		hi = ceil
	}
	return lo, hi
}

// projectRow maps latitude onto a grid row, north at the top.
func projectRow(lat, minLat, maxLat float64, rows int) int {
	span := maxLat - minLat
	if span <= 0 {
		return rows / 2
	}
	r := int((maxLat - lat) / span * float64(rows-1))
	return clamp(r, 0, rows-1)
}

// projectCol maps longitude onto a grid column, west at the left.
func projectCol(lon, minLon, maxLon float64, cols int) int {
	span := maxLon - minLon
	if span <= 0 {
		return cols / 2
	}
	c := int((lon - minLon) / span * float64(cols-1))
	return clamp(c, 0, cols-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toCount renders the "plotted/total floats" legend suffix.
func toCount(plotted, total int) string {
	return strconv.Itoa(plotted) + "/" + strconv.Itoa(total) + " floats"
}
