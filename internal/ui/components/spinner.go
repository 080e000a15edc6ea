// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the FloatChat TUI.
package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner is a customizable loading spinner component.
type Spinner struct {
	// Core spinner from bubbles
	spinner spinner.Model

	// Configuration
	message   string
	startTime time.Time

	// State
	isActive  bool
	showTimer bool
}

// NewSpinner creates a new spinner with default ASCII-compatible settings.
func NewSpinner() Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: styles.LineSpinner.Frames,
		FPS:    styles.LineSpinner.Duration(),
	}
	s.Style = lipgloss.NewStyle().Foreground(styles.Teal)

	return Spinner{
		spinner:   s,
		message:   "Loading",
		showTimer: true,
	}
}

// NewQuerySpinner creates a spinner for an in-flight natural-language query.
func NewQuerySpinner() Spinner {
	s := NewSpinner()
	s.message = "Analyzing"
	s.showTimer = true
	return s
}

// NewFetchSpinner creates a spinner for background catalog fetches.
func NewFetchSpinner() Spinner {
	s := NewSpinner()
	s.spinner.Spinner = spinner.Spinner{
		Frames: styles.DotsSpinner.Frames,
		FPS:    styles.DotsSpinner.Duration(),
	}
	s.message = "Fetching floats"
	s.showTimer = false
	return s
}

// NewIngestSpinner creates a spinner for NetCDF ingest uploads.
func NewIngestSpinner() Spinner {
	s := NewSpinner()
	s.spinner.Spinner = spinner.Spinner{
		Frames: styles.WaveSpinner.Frames,
		FPS:    styles.WaveSpinner.Duration(),
	}
	s.message = "Ingesting"
	s.showTimer = true
	return s
}

// SetMessage sets the text displayed next to the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.message = msg
}

// SetShowTimer enables or disables the elapsed time display.
func (s *Spinner) SetShowTimer(show bool) {
	s.showTimer = show
}

// =============================================================================
// STATE MANAGEMENT
// =============================================================================

// Start activates the spinner and records the start time.
func (s *Spinner) Start() tea.Cmd {
	s.isActive = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.isActive = false
}

// IsActive returns whether the spinner is currently running.
func (s *Spinner) IsActive() bool {
	return s.isActive
}

// Elapsed returns how long the spinner has been active.
func (s *Spinner) Elapsed() time.Duration {
	if !s.isActive {
		return 0
	}
	return time.Since(s.startTime)
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Update handles spinner tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if !s.isActive {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner with its message and optional elapsed timer.
func (s Spinner) View() string {
	if !s.isActive {
		return ""
	}

	messageStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	out := s.spinner.View() + " " + messageStyle.Render(s.message+"...")

	if s.showTimer {
		elapsed := s.Elapsed().Round(time.Second)
		timerStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		out += " " + timerStyle.Render("("+elapsed.String()+")")
	}

	return out
}
