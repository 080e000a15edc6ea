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
// HEADER COMPONENT - Title bar with tab navigation
// =============================================================================

// Tab identifies a dashboard tab.
type Tab int

const (
	TabChat Tab = iota
	TabMap
	TabProfiles
	TabFloats
)

// Tabs lists all tabs in display order.
var Tabs = []Tab{TabChat, TabMap, TabProfiles, TabFloats}

// String returns the display label for the tab.
func (t Tab) String() string {
	switch t {
	case TabChat:
		return "Chat"
	case TabMap:
		return "Map"
	case TabProfiles:
		return "Profiles"
	case TabFloats:
		return "Floats"
	default:
		return "Unknown"
	}
}

// Next returns the tab after this one, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev returns the tab before this one, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(Tabs) - 1) % len(Tabs))
}

// Header represents the title bar component with tabs
type Header struct {
	Title    string // Main title (default: "FloatChat")
	Subtitle string // Tagline under the title
	Active   Tab    // Currently active tab
	Width    int    // Available width
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "FloatChat",
		Subtitle: "ARGO ocean data explorer",
		Active:   TabChat,
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetActive updates the active tab
func (h *Header) SetActive(tab Tab) {
	h.Active = tab
}

// View renders the header with title line and tab bar
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Ocean)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Teal)

	brand := accentStyle.Render("~ ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" ~")

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)

	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Italic(true).
		Render(h.Subtitle)

	content := lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine, h.renderTabs())

	headerBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Teal).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width)

	return headerBox.Render(content)
}

// ViewCompact renders a single-line header for narrow terminals
func (h *Header) ViewCompact() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Ocean)

	parts := []string{brandStyle.Render(h.Title), h.renderTabs()}

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Padding(0, 1).
		Width(h.Width).
		Render(strings.Join(parts, separator))
}

// renderTabs renders the tab bar with the active tab highlighted
func (h *Header) renderTabs() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(styles.TextInverse).
		Background(styles.Ocean).
		Bold(true).
		Padding(0, 2)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Padding(0, 2)

	parts := make([]string, 0, len(Tabs))
	for _, tab := range Tabs {
		if tab == h.Active {
			parts = append(parts, activeStyle.Render(tab.String()))
		} else {
			parts = append(parts, inactiveStyle.Render(tab.String()))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
