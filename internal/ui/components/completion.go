// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the FloatChat TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// =============================================================================
// COMPLETION POPUP COMPONENT
// =============================================================================

// maxVisibleCompletions caps the popup height.
const maxVisibleCompletions = 8

// CompletionPopup renders slash-command completion candidates above the input.
type CompletionPopup struct {
	candidates []string
	selected   int
	width      int
}

// NewCompletionPopup creates an empty completion popup.
func NewCompletionPopup() *CompletionPopup {
	return &CompletionPopup{width: 40}
}

// SetCandidates replaces the candidate list and resets the selection.
func (c *CompletionPopup) SetCandidates(candidates []string) {
	c.candidates = candidates
	c.selected = 0
}

// SetWidth updates the popup width.
func (c *CompletionPopup) SetWidth(width int) {
	c.width = width
}

// Candidates returns the current candidate list.
func (c *CompletionPopup) Candidates() []string {
	return c.candidates
}

// Selected returns the currently selected candidate, or "" when empty.
func (c *CompletionPopup) Selected() string {
	if len(c.candidates) == 0 {
		return ""
	}
	return c.candidates[c.selected]
}

// HasCandidates reports whether there is anything to show.
func (c *CompletionPopup) HasCandidates() bool {
	return len(c.candidates) > 0
}

// Next moves the selection down, wrapping around.
func (c *CompletionPopup) Next() {
	if len(c.candidates) == 0 {
		return
	}
	c.selected = (c.selected + 1) % len(c.candidates)
}

// Prev moves the selection up, wrapping around.
func (c *CompletionPopup) Prev() {
	if len(c.candidates) == 0 {
		return
	}
	c.selected--
	if c.selected < 0 {
		c.selected = len(c.candidates) - 1
	}
}

// Clear empties the popup.
func (c *CompletionPopup) Clear() {
	c.candidates = nil
	c.selected = 0
}

// View renders the popup box, or "" when there are no candidates.
func (c *CompletionPopup) View() string {
	if len(c.candidates) == 0 {
		return ""
	}

	itemStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary)
	selectedStyle := lipgloss.NewStyle().
		Background(styles.Ocean).
		Foreground(styles.TextInverse).
		Bold(true)

	// Keep the selected item visible when the list is longer than the popup
	start := 0
	if c.selected >= maxVisibleCompletions {
		start = c.selected - maxVisibleCompletions + 1
	}
	end := start + maxVisibleCompletions
	if end > len(c.candidates) {
		end = len(c.candidates)
	}

	var lines []string
	for i := start; i < end; i++ {
		if i == c.selected {
			lines = append(lines, selectedStyle.Render(" "+c.candidates[i]+" "))
		} else {
			lines = append(lines, itemStyle.Render(" "+c.candidates[i]+" "))
		}
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 1).
		MaxWidth(c.width).
		Render(strings.Join(lines, "\n"))
}
