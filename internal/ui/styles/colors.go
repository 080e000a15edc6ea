// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the FloatChat TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Ocean - Brand color, headers, user highlights
var Ocean = lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#38BDF8"}

// OceanDeep - Darker ocean blue for backgrounds
var OceanDeep = lipgloss.AdaptiveColor{Light: "#075985", Dark: "#0C4A6E"}

// Teal - Secondary accent, bot messages, chart lines
var Teal = lipgloss.AdaptiveColor{Light: "#0D9488", Dark: "#2DD4BF"}

// TealDeep - Darker teal for backgrounds
var TealDeep = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#134E4A"}

// SeaGreen - Success states, active floats
var SeaGreen = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// SeaGreenDeep - Darker sea green for backgrounds
var SeaGreenDeep = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#064E3B"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Coral - Errors, lost floats, danger states
var Coral = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// CoralDeep - Darker coral for backgrounds
var CoralDeep = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#881337"}

// Amber - Warnings, inactive floats, caution states
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// AmberDeep - Darker amber for backgrounds
var AmberDeep = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#78350F"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#0B1120"}

// SurfaceBright - Slightly lighter/darker surface for highlights
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#1E293B"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#1E293B"}

// OverlayDim - Dimmer overlay for less prominent elements
var OverlayDim = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#334155"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1E293B", Dark: "#E2E8F0"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"}

// TextMuted - Hints, timestamps, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - Blue tones
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1D4ED8"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#E0F2FE"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

// Bot message bubble - Soft teal tones (muted, not saturated)
var BotBubbleBg = lipgloss.AdaptiveColor{Light: "#F0FDFA", Dark: "#1A3A38"}
var BotBubbleFg = lipgloss.AdaptiveColor{Light: "#115E59", Dark: "#CCFBF1"}
var BotBubbleBorder = lipgloss.AdaptiveColor{Light: "#5EEAD4", Dark: "#2DD4BF"}

// System message bubble - Amber/yellow tones
var SystemBubbleBg = lipgloss.AdaptiveColor{Light: "#FEF3C7", Dark: "#78350F"}
var SystemBubbleFg = lipgloss.AdaptiveColor{Light: "#92400E", Dark: "#FEF3C7"}
var SystemBubbleBorder = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

// Error message bubble - Coral for failed queries
var ErrorBubbleBg = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#881337"}
var ErrorBubbleFg = lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#FECACA"}

// =============================================================================
// FLOAT STATUS COLORS
// =============================================================================

// FloatActive - Float reporting within the last 30 days
var FloatActive = SeaGreen

// FloatInactive - Float seen, but quiet
var FloatInactive = Amber

// FloatLost - Float presumed lost
var FloatLost = Coral

// FloatSelected - Currently selected float on the map
var FloatSelected = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// =============================================================================
// SYNTAX HIGHLIGHTING (Catppuccin Latte/Mocha)
// =============================================================================

var SyntaxKeyword = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}  // Mauve
var SyntaxString = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}   // Green
var SyntaxNumber = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"}   // Peach
var SyntaxComment = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"}  // Overlay0
var SyntaxFunction = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // Blue
var SyntaxOperator = lipgloss.AdaptiveColor{Light: "#04A5E5", Dark: "#89DCEB"} // Sky

// =============================================================================
// SPECIAL EFFECTS
// =============================================================================

// Gradient start/end for header effects
var GradientStart = lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#38BDF8"} // Ocean
var GradientEnd = lipgloss.AdaptiveColor{Light: "#0D9488", Dark: "#2DD4BF"}   // Teal

// Focus ring color
var FocusRing = Ocean

// Selection highlight
var SelectionBg = lipgloss.AdaptiveColor{Light: "#BFDBFE", Dark: "#1E3A5F"}

// =============================================================================
// ACCESSIBILITY: Shapes and high contrast for colorblind users
// =============================================================================

// StatusIndicatorSet contains text/shape indicators for status states.
// These symbols provide visual cues beyond color for colorblind accessibility.
type StatusIndicatorSet struct {
	Success string // Checkmark for success states
	Error   string // X mark for error states
	Warning string // Warning triangle for caution states
	Info    string // Info circle for informational states
	Pending string // Clock for pending/loading states
	Active  string // Dot for active/online states
}

// StatusIndicators provides accessible shape/text indicators alongside colors.
// ACCESSIBILITY: ASCII-only indicators for maximum compatibility and colorblind users.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Pending: "[ ]",
	Active:  "[*]",
}

// FloatMarkerSet contains map markers per float status. Markers differ in
// shape as well as color so statuses stay distinguishable for colorblind users.
type FloatMarkerSet struct {
	Active   string
	Inactive string
	Lost     string
	Selected string
}

// FloatMarkers provides ASCII map markers for each float status.
var FloatMarkers = FloatMarkerSet{
	Active:   "o",
	Inactive: "*",
	Lost:     "x",
	Selected: "@",
}

// =============================================================================
// ACCESSIBILITY: High-contrast color pairs for colorblind users
// =============================================================================

// High contrast success - Bright green with bold, works for most color blindness types
var SuccessHighContrast = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"}

// High contrast error - Bright red with bold, distinct from green even for colorblind
var ErrorHighContrast = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

// High contrast warning - Bright amber/orange, deuteranopia-friendly
var WarningHighContrast = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}

// High contrast info - Bright blue, distinct from red/green spectrum
var InfoHighContrast = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

// LinkColor - Accessible link color with sufficient contrast
var LinkColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// =============================================================================
// ACCESSIBILITY: Helper functions for rendering accessible status messages
// =============================================================================

// RenderSuccess renders a success message with checkmark indicator and high contrast green.
// ACCESSIBILITY: Includes shape indicator for colorblind users.
func RenderSuccess(message string) string {
	style := lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with X mark indicator and high contrast red.
// ACCESSIBILITY: Includes shape indicator for colorblind users.
func RenderError(message string) string {
	style := lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Error + " " + message)
}

// RenderWarning renders a warning message with warning triangle and high contrast amber.
// ACCESSIBILITY: Includes shape indicator for colorblind users.
func RenderWarning(message string) string {
	style := lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Warning + " " + message)
}

// RenderInfo renders an info message with info circle and high contrast blue.
// ACCESSIBILITY: Includes shape indicator for colorblind users.
func RenderInfo(message string) string {
	style := lipgloss.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Info + " " + message)
}

// RenderStatus renders a status message based on success/failure with appropriate indicator.
// ACCESSIBILITY: Uses shapes and high contrast colors for colorblind users.
func RenderStatus(success bool, message string) string {
	if success {
		return RenderSuccess(message)
	}
	return RenderError(message)
}

// RenderLink renders text as an accessible link with underline.
// ACCESSIBILITY: Underline provides visual cue beyond color for links.
func RenderLink(text string) string {
	style := lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)
	return style.Render(text)
}
