// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the FloatChat TUI.

This package defines the complete color palette, theme, and animation
system used throughout the application. All colors use Lip Gloss AdaptiveColor
for automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Ocean - Brand color for headers, tabs, and user highlights
  - Teal - Secondary accent for bot messages and chart series
  - SeaGreen - Success states and active floats
  - Amber - Warnings and inactive floats
  - Coral - Errors and lost floats

## Semantic Colors

Message bubbles and float markers use semantic color tokens:

	UserBubbleBg  - Background for user messages
	UserBubbleFg  - Text color for user messages
	BotBubbleBg   - Background for bot messages
	BotBubbleFg   - Text color for bot messages
	FloatActive   - Marker color for active floats
	FloatInactive - Marker color for quiet floats
	FloatLost     - Marker color for presumed-lost floats

## Surface Colors

Layered surface system for depth:

	Surface    - Main background
	SurfaceDim - Subtle backgrounds (headers, status bars)
	Overlay    - Borders, separators, popups

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}

# Animation System (animations.go)

## Spinner Configurations

Pre-defined spinner styles:

	LineSpinner - Simple line rotation for in-flight queries
	DotsSpinner - Classic three-dot animation for background fetches
	WaveSpinner - Water-level animation for NetCDF ingest

## Status Indicators

ASCII indicators for various states:

	StatusIndicators.Success - [OK]
	StatusIndicators.Error   - [X]
	StatusIndicators.Warning - [!]
	StatusIndicators.Info    - [i]

Float markers pair shape with color so statuses stay distinguishable
for colorblind users:

	FloatMarkers.Active   - "o"
	FloatMarkers.Inactive - "*"
	FloatMarkers.Lost     - "x"
	FloatMarkers.Selected - "@"

# Usage Example

	import "github.com/floatchat/floatchat-tui/internal/ui/styles"

	// Use adaptive colors
	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)

	// Use theme for runtime detection
	theme := styles.NewTheme()
	marker := theme.MarkerStyle("active").Render(styles.FloatMarkers.Active)

	// Use spinner configuration
	spinner := styles.LineSpinner
	interval := spinner.Duration()
*/
package styles
