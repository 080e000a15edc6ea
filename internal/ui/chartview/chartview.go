// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chartview renders chart specs into terminal plots.
//
// The panel draws whatever spec the projection produced: metric kinds become
// an ASCII scatter with the depth axis inverted (surface at the top, the
// oceanographic convention), the distribution kind becomes a horizontal bar
// histogram, and query results become a table. Empty specs render their
// explicit empty-state title.
package chartview

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/chart"
	"github.com/floatchat/floatchat-tui/internal/commands"
	"github.com/floatchat/floatchat-tui/internal/ui/styles"
	"github.com/floatchat/floatchat-tui/internal/util"
)

// histogramLabelWidth truncates long region names in the bar chart.
const histogramLabelWidth = 20

// =============================================================================
// MODEL
// =============================================================================

// Model is the chart tab. It holds only the projected spec; the data it was
// projected from lives in the shared dashboard state.
type Model struct {
	theme  *styles.Theme
	width  int
	height int

	spec chart.Spec
}

// New creates the chart tab.
func New(theme *styles.Theme) Model {
	return Model{theme: theme, spec: chart.Spec{Kind: chart.KindTemperature, Empty: true, EmptyReason: chart.EmptyNoProfile, Title: "No Temperature data available"}}
}

// SetSize resizes the panel to its content area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSpec replaces the rendered spec. The previous spec is discarded
// entirely; nothing carries over between kinds.
func (m *Model) SetSpec(spec chart.Spec) {
	m.spec = spec
}

// Spec returns the currently rendered spec.
func (m *Model) Spec() chart.Spec {
	return m.spec
}

// =============================================================================
// UPDATE
// =============================================================================

// Update cycles the chart kind with the arrow keys. The kind switch goes
// through the same message the /chart command uses, so the root model
// reprojects and pushes a fresh spec back down.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "h":
		kind := prevKind(m.spec.Kind)
		return m, func() tea.Msg { return commands.SetChartMsg{Kind: kind} }
	case "right", "l":
		kind := nextKind(m.spec.Kind)
		return m, func() tea.Msg { return commands.SetChartMsg{Kind: kind} }
	}
	return m, nil
}

func nextKind(k chart.Kind) chart.Kind {
	for i, kind := range chart.Kinds {
		if kind == k {
			return chart.Kinds[(i+1)%len(chart.Kinds)]
		}
	}
	return chart.Kinds[0]
}

func prevKind(k chart.Kind) chart.Kind {
	for i, kind := range chart.Kinds {
		if kind == k {
			return chart.Kinds[(i+len(chart.Kinds)-1)%len(chart.Kinds)]
		}
	}
	return chart.Kinds[0]
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the kind strip, the spec title, and the plot body.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	strip := m.renderKindStrip()
	title := m.theme.ChartTitle.Render(m.spec.Title)

	var body string
	switch {
	case m.spec.Empty:
		body = m.renderEmpty()
	case len(m.spec.Series) > 0:
		body = m.renderSeries()
	case len(m.spec.Histogram) > 0:
		body = m.renderHistogram()
	case m.spec.Table != nil:
		body = m.renderTable()
	default:
		body = m.renderEmpty()
	}

	boxed := m.theme.ChartBox.Width(m.width - 4).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, strip, title, boxed)
}

// renderKindStrip shows every chart kind with the active one highlighted.
func (m Model) renderKindStrip() string {
	parts := make([]string, 0, len(chart.Kinds))
	for _, kind := range chart.Kinds {
		label := kind.Label()
		if kind == m.spec.Kind {
			parts = append(parts, m.theme.TabActive.Render(label))
			continue
		}
		parts = append(parts, m.theme.TabInactive.Render(label))
	}
	hint := m.theme.MapLegend.Render("  arrows switch")
	return strings.Join(parts, " ") + hint
}

func (m Model) renderEmpty() string {
	text := m.spec.Title
	if text == "" {
		text = "No data available"
	}
	height := m.plotHeight()
	return lipgloss.Place(m.width-8, height, lipgloss.Center, lipgloss.Center,
		m.theme.ChartEmpty.Render(text))
}

// =============================================================================
// METRIC SERIES
// =============================================================================

// renderSeries draws the (depth, value) scatter. Depth runs down the screen
// because the axis is inverted: the shallowest sample sits on the top row.
func (m Model) renderSeries() string {
	rows := m.plotHeight()
	cols := m.width - 16
	if cols < 16 {
		cols = 16
	}

	minDepth, maxDepth := m.spec.Series[0].Depth, m.spec.Series[0].Depth
	minVal, maxVal := m.spec.Series[0].Value, m.spec.Series[0].Value
	for _, p := range m.spec.Series {
		if p.Depth < minDepth {
			minDepth = p.Depth
		}
		if p.Depth > maxDepth {
			maxDepth = p.Depth
		}
		if p.Value < minVal {
			minVal = p.Value
		}
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}

	grid := make(map[[2]int]bool)
	for _, p := range m.spec.Series {
		r := scale(p.Depth, minDepth, maxDepth, rows)
		c := scale(p.Value, minVal, maxVal, cols)
		grid[[2]int{r, c}] = true
	}

	marker := m.theme.ChartSeries.Render("*")
	gutter := depthGutter(minDepth, maxDepth, rows)

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		sb.WriteString(m.theme.ChartAxis.Render(gutter[r]))
		sb.WriteString(m.theme.ChartAxis.Render("|"))
		for c := 0; c < cols; c++ {
			if grid[[2]int{r, c}] {
				sb.WriteString(marker)
				continue
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	// X axis with the value range underneath.
	sb.WriteString(m.theme.ChartAxis.Render(strings.Repeat(" ", 9) + "+" + strings.Repeat("-", cols)))
	sb.WriteString("\n")
	lo := util.FloatToStringPrec(minVal, 1)
	hi := util.FloatToStringPrec(maxVal, 1)
	axisLine := strings.Repeat(" ", 10) + lo +
		strings.Repeat(" ", max(1, cols-len(lo)-len(hi))) + hi
	sb.WriteString(m.theme.ChartAxis.Render(axisLine))
	sb.WriteString("\n")
	sb.WriteString(m.theme.ChartAxis.Render(m.spec.YLabel + " by " + m.spec.XLabel))

	return sb.String()
}

// depthGutter builds the left-hand depth labels, one per plot row.
func depthGutter(minDepth, maxDepth float64, rows int) []string {
	gutter := make([]string, rows)
	for r := range gutter {
		gutter[r] = strings.Repeat(" ", 9)
	}

	label := func(v float64) string {
		return util.PadWidth(util.FloatToStringPrec(v, 0)+"m", 9)
	}
	gutter[0] = label(minDepth)
	if rows > 2 {
		gutter[rows/2] = label((minDepth + maxDepth) / 2)
	}
	if rows > 1 {
		gutter[rows-1] = label(maxDepth)
	}
	return gutter
}

// scale maps v in [lo, hi] onto [0, n).
func scale(v, lo, hi float64, n int) int {
	span := hi - lo
	if span <= 0 {
		return 0
	}
	idx := int((v - lo) / span * float64(n-1))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// =============================================================================
// HISTOGRAM
// =============================================================================

// renderHistogram draws one horizontal bar per region, scaled to the
// largest bucket.
func (m Model) renderHistogram() string {
	maxCount := 0
	for _, b := range m.spec.Histogram {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	if maxCount == 0 {
		return m.renderEmpty()
	}

	barWidth := m.width - histogramLabelWidth - 16
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for _, b := range m.spec.Histogram {
		label := util.PadWidth(util.TruncateWidth(b.Label, histogramLabelWidth), histogramLabelWidth)
		bar := styles.RenderProgressBar(barWidth, float64(b.Count*100/maxCount))
		count := strconv.Itoa(b.Count)
		lines = append(lines,
			m.theme.FilterLabel.Render(label)+" "+m.theme.ChartBar.Render(bar)+" "+count)
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// QUERY RESULTS TABLE
// =============================================================================

// renderTable draws the capped query-result rows with a summary strip of
// what the cap hides.
func (m Model) renderTable() string {
	t := m.spec.Table
	if len(t.Columns) == 0 {
		return m.renderEmpty()
	}

	colWidth := (m.width - 10) / len(t.Columns)
	if colWidth < 8 {
		colWidth = 8
	}
	if colWidth > 24 {
		colWidth = 24
	}

	var sb strings.Builder
	var header []string
	for _, col := range t.Columns {
		header = append(header, util.PadWidth(util.TruncateWidth(col, colWidth-1), colWidth))
	}
	sb.WriteString(m.theme.TableHeader.Render(strings.Join(header, "")))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		var cells []string
		for _, cell := range row {
			cells = append(cells, util.PadWidth(util.TruncateWidth(cell, colWidth-1), colWidth))
		}
		sb.WriteString(m.theme.TableRow.Render(strings.Join(cells, "")))
		sb.WriteString("\n")
	}

	if t.Total > len(t.Rows) {
		hidden := t.Total - len(t.Rows)
		sb.WriteString(m.theme.MapLegend.Render("+" + strconv.Itoa(hidden) + " more rows, /export for the full set"))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// =============================================================================
// HELPERS
// =============================================================================

func (m Model) plotHeight() int {
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	return h
}
