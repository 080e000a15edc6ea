// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the FloatChat TUI.
package styles

import (
	"strings"
	"time"
)

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// LineSpinner - Simple line rotation shown while a query is in flight
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner - Classic three-dot animation for background fetches
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// WaveSpinner - Rising and falling water level for ingest progress
var WaveSpinner = SpinnerConfig{
	Frames: []string{"_", ".", "-", "~", "-", "."},
	FPS:    8,
}

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// ProgressBar characters for histogram bars and loading displays.
var (
	ProgressFull    = "#"
	ProgressEmpty   = "-"
	ProgressPartial = []string{".", ":", "+", "#", "#", "#", "#"}
)

// RenderProgressBar creates a progress bar string.
// width: total width of the bar in characters
// percent: 0-100 percentage complete
func RenderProgressBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filledWidth := float64(width) * percent / 100
	fullBlocks := int(filledWidth)
	partialIndex := int((filledWidth - float64(fullBlocks)) * float64(len(ProgressPartial)))

	// PERFORMANCE: strings.Builder avoids quadratic allocations
	var sb strings.Builder
	sb.Grow(width)

	for i := 0; i < fullBlocks && i < width; i++ {
		sb.WriteString(ProgressFull)
	}

	if fullBlocks < width && partialIndex > 0 {
		sb.WriteString(ProgressPartial[partialIndex-1])
		fullBlocks++
	}

	for i := fullBlocks; i < width; i++ {
		sb.WriteString(ProgressEmpty)
	}

	return sb.String()
}

// =============================================================================
// TREE CONNECTORS
// =============================================================================

// TreeChars for rendering tree structures (like insight breakdowns)
var TreeChars = struct {
	Pipe   string
	Tee    string
	Corner string
	Dash   string
}{
	Pipe:   "|",
	Tee:    "+",
	Corner: "`",
	Dash:   "-",
}

// RenderTreeLine creates a tree line prefix.
// isLast: true if this is the last item in the list
func RenderTreeLine(isLast bool) string {
	if isLast {
		return TreeChars.Corner + TreeChars.Dash + " "
	}
	return TreeChars.Tee + TreeChars.Dash + " "
}

// =============================================================================
// BORDER CHARACTERS (for custom borders)
// =============================================================================

// BoxChars for custom box drawing (ASCII-safe)
var BoxChars = struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}{
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
	Horizontal:  "-",
	Vertical:    "|",
}
