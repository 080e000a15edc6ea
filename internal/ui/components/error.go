// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the FloatChat TUI.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// =============================================================================
// ERROR DISPLAY MODEL
// =============================================================================

// ErrorDisplay is a styled error message component with remediation hints.
type ErrorDisplay struct {
	category    ErrorCategory
	title       string
	message     string
	context     string // Additional context about when/where the error occurred
	suggestions []string

	dismissible bool
	visible     bool
	createdAt   time.Time

	width int
}

// NewError creates an error display with title and message.
func NewError(title, message string) ErrorDisplay {
	return ErrorDisplay{
		category:    CategoryUnknown,
		title:       title,
		message:     message,
		dismissible: true,
		visible:     true,
		createdAt:   time.Now(),
	}
}

// NewErrorWithSuggestions creates an error with remediation suggestions.
func NewErrorWithSuggestions(title, message string, suggestions []string) ErrorDisplay {
	e := NewError(title, message)
	e.suggestions = suggestions
	return e
}

// NewEnhancedError creates an error with full details from a matched pattern.
func NewEnhancedError(pattern ErrorPattern, message string) ErrorDisplay {
	return ErrorDisplay{
		category:    pattern.Category,
		title:       pattern.Title,
		message:     message,
		suggestions: pattern.Suggestions,
		dismissible: true,
		visible:     true,
		createdAt:   time.Now(),
	}
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetContext sets additional context about the error.
func (e *ErrorDisplay) SetContext(context string) {
	e.context = context
}

// SetSuggestions sets the list of suggestions.
func (e *ErrorDisplay) SetSuggestions(suggestions []string) {
	e.suggestions = suggestions
}

// SetWidth sets the display width.
func (e *ErrorDisplay) SetWidth(width int) {
	e.width = width
}

// =============================================================================
// STATE MANAGEMENT
// =============================================================================

// Show displays the error.
func (e *ErrorDisplay) Show() {
	e.visible = true
	e.createdAt = time.Now()
}

// Hide hides the error.
func (e *ErrorDisplay) Hide() {
	e.visible = false
}

// IsVisible returns whether the error is visible.
func (e *ErrorDisplay) IsVisible() bool {
	return e.visible
}

// GetTitle returns the error title.
func (e *ErrorDisplay) GetTitle() string {
	return e.title
}

// GetMessage returns the error message.
func (e *ErrorDisplay) GetMessage() string {
	return e.message
}

// GetSuggestions returns the remediation suggestions.
func (e *ErrorDisplay) GetSuggestions() []string {
	return e.suggestions
}

// GetCategory returns the error category.
func (e *ErrorDisplay) GetCategory() ErrorCategory {
	return e.category
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the error box.
func (e ErrorDisplay) View() string {
	if !e.visible {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Coral).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	suggestionStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		PaddingLeft(2)

	contextStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(styles.StatusIndicators.Error + " " + e.title))
	sb.WriteString("\n\n")
	sb.WriteString(messageStyle.Render(e.message))

	if e.context != "" {
		sb.WriteString("\n")
		sb.WriteString(contextStyle.Render(e.context))
	}

	if len(e.suggestions) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(suggestionStyle.Render("Try:"))
		for _, s := range e.suggestions {
			sb.WriteString("\n")
			sb.WriteString(suggestionStyle.Render("- " + s))
		}
	}

	if e.dismissible {
		sb.WriteString("\n\n")
		sb.WriteString(contextStyle.Render("Press Esc to dismiss"))
	}

	width := e.width
	if width < 40 {
		width = 60
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(styles.Coral).
		Padding(1, 2).
		MaxWidth(width).
		Render(sb.String())
}
