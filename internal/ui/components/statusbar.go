// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the FloatChat TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status bar
// =============================================================================

// Status represents the current application status
type Status int

const (
	StatusReady Status = iota
	StatusQuerying
	StatusLoading
	StatusError
)

// String returns the display string for the status
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusQuerying:
		return "Querying..."
	case StatusLoading:
		return "Loading..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusQuerying:
		return "~"
	case StatusLoading:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// Connection represents the backend connection state
type Connection int

const (
	ConnectionUnknown Connection = iota
	ConnectionOnline
	ConnectionOffline
)

// String returns the display string for the connection state
func (c Connection) String() string {
	switch c {
	case ConnectionOnline:
		return "ONLINE"
	case ConnectionOffline:
		return "OFFLINE"
	default:
		return "CHECKING"
	}
}

// StatusBar represents the bottom status bar
type StatusBar struct {
	Connection    Connection // Backend reachability
	BackendHost   string     // Backend host:port for display
	FloatCount    int        // Total floats in catalog
	VisibleCount  int        // Floats after filters
	SelectedFloat string     // Currently selected float ID
	ChartKind     string     // Active chart kind label
	Status        Status     // Current status
	Width         int        // Available width
	ShowShortcuts bool       // Show keyboard shortcuts
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Connection:    ConnectionUnknown,
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetConnection updates the backend connection state
func (s *StatusBar) SetConnection(conn Connection) {
	s.Connection = conn
}

// SetBackendHost updates the backend host display
func (s *StatusBar) SetBackendHost(host string) {
	s.BackendHost = host
}

// SetFloatCounts updates the total and visible float counts
func (s *StatusBar) SetFloatCounts(total, visible int) {
	s.FloatCount = total
	s.VisibleCount = visible
}

// SetSelectedFloat updates the selected float display
func (s *StatusBar) SetSelectedFloat(id string) {
	s.SelectedFloat = id
}

// SetChartKind updates the active chart kind label
func (s *StatusBar) SetChartKind(kind string) {
	s.ChartKind = kind
}

// SetStatus updates the current status
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// View renders the status bar
func (s *StatusBar) View() string {
	if s.Width < 60 {
		return s.viewNarrow()
	}
	if s.Width < 100 {
		return s.viewMedium()
	}
	return s.viewWide()
}

// viewNarrow renders a compact status bar for narrow terminals
// Format: [CONN] floats Status
func (s *StatusBar) viewNarrow() string {
	parts := []string{}

	connStyle := s.getConnectionStyle()
	connChar := string([]rune(s.Connection.String())[0]) // First letter only
	parts = append(parts, connStyle.Render(connChar))

	if s.FloatCount > 0 {
		countStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		parts = append(parts, countStyle.Render(toStr(s.VisibleCount)+"/"+toStr(s.FloatCount)))
	}

	statusStyle := s.getStatusStyle()
	parts = append(parts, statusStyle.Render(s.Status.Icon()))

	result := "[" + strings.Join(parts, "|") + "]"

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Width(s.Width).
		Render(result)
}

// viewMedium renders a medium-width status bar
// Format: CONN | host | floats | chart | Status
func (s *StatusBar) viewMedium() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	parts := []string{}

	connStyle := s.getConnectionStyle()
	parts = append(parts, connStyle.Render(s.Connection.String()))

	if s.BackendHost != "" {
		hostStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		host := s.BackendHost
		hostRunes := []rune(host)
		if len(hostRunes) > 20 {
			host = string(hostRunes[:17]) + "..."
		}
		parts = append(parts, hostStyle.Render(host))
	}

	if s.FloatCount > 0 {
		countLabel := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("Floats:")
		countStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		parts = append(parts, countLabel+" "+countStyle.Render(toStr(s.VisibleCount)+"/"+toStr(s.FloatCount)))
	}

	if s.ChartKind != "" {
		chartStyle := lipgloss.NewStyle().Foreground(styles.Teal)
		parts = append(parts, chartStyle.Render(s.ChartKind))
	}

	statusStyle := s.getStatusStyle()
	parts = append(parts, statusStyle.Render(s.Status.String()))

	result := strings.Join(parts, separator)

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// viewWide renders a full-featured status bar for wide terminals
// Format: ONLINE localhost:8000 | Floats: 42/120 | Selected: WMO5906](...) | Temperature | Ready | shortcuts
func (s *StatusBar) viewWide() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	leftParts := []string{}

	connStyle := s.getConnectionStyle()
	connBadge := connStyle.Render(s.connectionIcon() + " " + s.Connection.String())
	leftParts = append(leftParts, connBadge)

	if s.BackendHost != "" {
		hostStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		leftParts = append(leftParts, hostStyle.Render(s.BackendHost))
	}

	if s.FloatCount > 0 {
		countLabel := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("Floats:")
		countStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		leftParts = append(leftParts, countLabel+" "+countStyle.Render(fmtNumber(s.VisibleCount)+"/"+fmtNumber(s.FloatCount)))
	}

	if s.SelectedFloat != "" {
		selLabel := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("Selected:")
		selStyle := lipgloss.NewStyle().Foreground(styles.Ocean).Bold(true)
		leftParts = append(leftParts, selLabel+" "+selStyle.Render(s.SelectedFloat))
	}

	if s.ChartKind != "" {
		chartStyle := lipgloss.NewStyle().Foreground(styles.Teal)
		leftParts = append(leftParts, chartStyle.Render(s.ChartKind))
	}

	statusStyle := s.getStatusStyle()
	leftParts = append(leftParts, statusStyle.Render(s.Status.String()))

	left := strings.Join(leftParts, separator)

	// Right section: keyboard shortcuts
	right := ""
	if s.ShowShortcuts {
		right = s.renderShortcuts()
	}

	// Pad the middle so shortcuts sit at the right edge
	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
		right = ""
	}

	result := left + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// renderShortcuts renders the keyboard shortcut hints
func (s *StatusBar) renderShortcuts() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.Ocean).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Tab", "switch"},
		{"/help", "commands"},
		{"Ctrl+Q", "quit"},
	}

	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts, keyStyle.Render(sc.key)+descStyle.Render(" "+sc.desc))
	}

	return strings.Join(parts, descStyle.Render("  "))
}

// connectionIcon returns a shape indicator for the connection state
// ACCESSIBILITY: shape varies with state for colorblind users
func (s *StatusBar) connectionIcon() string {
	switch s.Connection {
	case ConnectionOnline:
		return "(+)"
	case ConnectionOffline:
		return "(-)"
	default:
		return "(?)"
	}
}

// getConnectionStyle returns the style for the current connection state
func (s *StatusBar) getConnectionStyle() lipgloss.Style {
	switch s.Connection {
	case ConnectionOnline:
		return lipgloss.NewStyle().Foreground(styles.SuccessHighContrast).Bold(true)
	case ConnectionOffline:
		return lipgloss.NewStyle().Foreground(styles.ErrorHighContrast).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.WarningHighContrast).Bold(true)
	}
}

// getStatusStyle returns the style for the current status
func (s *StatusBar) getStatusStyle() lipgloss.Style {
	switch s.Status {
	case StatusReady:
		return lipgloss.NewStyle().Foreground(styles.SuccessHighContrast)
	case StatusQuerying, StatusLoading:
		return lipgloss.NewStyle().Foreground(styles.WarningHighContrast)
	case StatusError:
		return lipgloss.NewStyle().Foreground(styles.ErrorHighContrast).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextSecondary)
	}
}
