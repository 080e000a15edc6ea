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
// WELCOME SCREEN COMPONENT
// =============================================================================

// welcomeLogo is the ASCII banner shown on first launch (ASCII-safe).
const welcomeLogo = `
  ___ _           _    ___ _         _
 | __| |___  __ _| |_ / __| |_  __ _| |_
 | _|| / _ \/ _' |  _| (__| ' \/ _' |  _|
 |_| |_\___/\__,_|\__|\___|_||_\__,_|\__|
`

// Welcome renders the first-run welcome screen with demo queries.
type Welcome struct {
	Version     string
	DemoQueries []string
	Width       int
	Height      int
	theme       *styles.Theme
}

// NewWelcome creates a welcome screen component.
func NewWelcome(theme *styles.Theme, version string) *Welcome {
	return &Welcome{
		Version: version,
		Width:   80,
		Height:  24,
		theme:   theme,
	}
}

// SetSize updates the welcome screen dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.Width = width
	w.Height = height
}

// SetDemoQueries sets the example queries shown under the banner.
func (w *Welcome) SetDemoQueries(queries []string) {
	w.DemoQueries = queries
}

// View renders the welcome box centered in the available space.
func (w *Welcome) View() string {
	logoStyle := lipgloss.NewStyle().
		Foreground(styles.Ocean).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	infoStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Teal).
		Bold(true)

	var sb strings.Builder
	sb.WriteString(logoStyle.Render(strings.TrimRight(welcomeLogo, "\n")))
	sb.WriteString("\n")
	if w.Version != "" {
		sb.WriteString(versionStyle.Render("v" + w.Version))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(infoStyle.Render("Ask questions about ARGO ocean floats in plain language."))
	sb.WriteString("\n\n")

	if len(w.DemoQueries) > 0 {
		sb.WriteString(infoStyle.Render("Try one of these:"))
		sb.WriteString("\n")
		for i, q := range w.DemoQueries {
			if i >= 4 {
				break
			}
			sb.WriteString(keyStyle.Render("  " + toStr(i+1) + ". "))
			sb.WriteString(infoStyle.Render(q))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(keyStyle.Render("Tab"))
	sb.WriteString(infoStyle.Render(" switches views  "))
	sb.WriteString(keyStyle.Render("/help"))
	sb.WriteString(infoStyle.Render(" lists commands"))

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(styles.Ocean).
		Padding(1, 4).
		Render(sb.String())

	// Center in the available space
	if w.Width > 0 && w.Height > 0 {
		return lipgloss.Place(w.Width, w.Height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// DefaultDemoQueries are shown when the config does not provide any.
var DefaultDemoQueries = []string{
	"Show me all active floats",
	"Temperature profiles in the Indian Ocean",
	"Which floats reported salinity below 34 PSU?",
	"Float distribution by ocean region",
}
