// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the FloatChat TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER AND TAB STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	TabBar         lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble   lipgloss.Style
	BotBubble    lipgloss.Style
	SystemBubble lipgloss.Style
	ErrorBubble  lipgloss.Style
	Timestamp    lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar       lipgloss.Style
	StatusConnected lipgloss.Style
	StatusOffline   lipgloss.Style
	StatusBusy      lipgloss.Style
	ShortcutKey     lipgloss.Style
	ShortcutDesc    lipgloss.Style

	// ==========================================================================
	// COMPLETION POPUP STYLES
	// ==========================================================================

	CompletionPopup    lipgloss.Style
	CompletionItem     lipgloss.Style
	CompletionSelected lipgloss.Style
	CompletionMatch    lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style
	ThinkingTime lipgloss.Style

	// ==========================================================================
	// CODE BLOCK STYLES
	// ==========================================================================

	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style
	CodeLineNum   lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox        lipgloss.Style
	ErrorTitle      lipgloss.Style
	ErrorMessage    lipgloss.Style
	ErrorSuggestion lipgloss.Style

	// ==========================================================================
	// MAP VIEW STYLES
	// ==========================================================================

	MapBox           lipgloss.Style
	MapWater         lipgloss.Style
	MapMarkerActive  lipgloss.Style
	MapMarkerIdle    lipgloss.Style
	MapMarkerLost    lipgloss.Style
	MapMarkerCurrent lipgloss.Style
	MapLegend        lipgloss.Style

	// ==========================================================================
	// CHART VIEW STYLES
	// ==========================================================================

	ChartBox    lipgloss.Style
	ChartTitle  lipgloss.Style
	ChartAxis   lipgloss.Style
	ChartSeries lipgloss.Style
	ChartBar    lipgloss.Style
	ChartEmpty  lipgloss.Style

	// ==========================================================================
	// FLOAT TABLE STYLES
	// ==========================================================================

	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style
	FilterLabel      lipgloss.Style
	FilterValue      lipgloss.Style

	// ==========================================================================
	// SESSION LIST STYLES
	// ==========================================================================

	SessionList         lipgloss.Style
	SessionItem         lipgloss.Style
	SessionItemSelected lipgloss.Style
	SessionID           lipgloss.Style
	SessionTitle        lipgloss.Style
	SessionMeta         lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox     lipgloss.Style
	WelcomeLogo    lipgloss.Style
	WelcomeVersion lipgloss.Style
	WelcomeInfo    lipgloss.Style
	WelcomeKey     lipgloss.Style

	// ==========================================================================
	// SUMMARY AND INSIGHT STYLES
	// ==========================================================================

	SummaryBlock lipgloss.Style
	InsightBlock lipgloss.Style
	SQLBadge     lipgloss.Style

	// ==========================================================================
	// ACCESSIBILITY: Status indicator styles with shapes and high contrast
	// ==========================================================================

	// SuccessStyle - Used for success states with checkmark indicator
	SuccessStyle lipgloss.Style
	// ErrorStyle - Used for error states with X mark indicator
	ErrorStyle lipgloss.Style
	// WarningStyle - Used for warning states with warning triangle indicator
	WarningStyle lipgloss.Style
	// InfoStyle - Used for info states with info circle indicator
	InfoStyle lipgloss.Style
	// LinkStyle - Used for links with underline for visual distinction
	LinkStyle lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header and tabs
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ocean).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ocean)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.TabBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.TabActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Ocean).
		Bold(true).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(BotBubbleFg).
		Background(BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BotBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(SystemBubbleFg).
		Background(SystemBubbleBg).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(SystemBubbleBorder).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(ErrorBubbleFg).
		Background(ErrorBubbleBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Coral).
		BorderLeft(true).
		PaddingLeft(2)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Ocean).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusConnected = lipgloss.NewStyle().
		Foreground(SeaGreen).
		Bold(true)

	t.StatusOffline = lipgloss.NewStyle().
		Foreground(Coral).
		Bold(true)

	t.StatusBusy = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Ocean).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Completion popup
	t.CompletionPopup = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.CompletionItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.CompletionSelected = lipgloss.NewStyle().
		Background(Ocean).
		Foreground(TextInverse).
		Bold(true)

	t.CompletionMatch = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	// Spinner and loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(Teal)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ThinkingTime = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Code blocks
	t.CodeBlock = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	t.CodeLangBadge = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 1).
		Bold(true)

	t.CodeLineNum = lipgloss.NewStyle().
		Foreground(TextMuted).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	// Error boxes
	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Coral).
		Background(CoralDeep).
		Padding(1, 2)

	t.ErrorTitle = lipgloss.NewStyle().
		Foreground(Coral).
		Bold(true)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ErrorSuggestion = lipgloss.NewStyle().
		Foreground(TextSecondary).
		PaddingLeft(2)

	// Map view
	t.MapBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OceanDeep).
		Padding(0, 1)

	t.MapWater = lipgloss.NewStyle().
		Foreground(OverlayDim)

	t.MapMarkerActive = lipgloss.NewStyle().
		Foreground(FloatActive).
		Bold(true)

	t.MapMarkerIdle = lipgloss.NewStyle().
		Foreground(FloatInactive)

	t.MapMarkerLost = lipgloss.NewStyle().
		Foreground(FloatLost)

	t.MapMarkerCurrent = lipgloss.NewStyle().
		Foreground(FloatSelected).
		Bold(true).
		Reverse(true)

	t.MapLegend = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	// Chart view
	t.ChartBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ChartTitle = lipgloss.NewStyle().
		Foreground(Ocean).
		Bold(true)

	t.ChartAxis = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ChartSeries = lipgloss.NewStyle().
		Foreground(Teal)

	t.ChartBar = lipgloss.NewStyle().
		Foreground(Ocean)

	t.ChartEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Align(lipgloss.Center)

	// Float table
	t.TableHeader = lipgloss.NewStyle().
		Foreground(Ocean).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableRowSelected = lipgloss.NewStyle().
		Background(SelectionBg).
		Foreground(TextPrimary).
		Bold(true)

	t.FilterLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.FilterValue = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	// Session list
	t.SessionList = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(1, 2)

	t.SessionItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.SessionItemSelected = lipgloss.NewStyle().
		Background(Ocean).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	t.SessionID = lipgloss.NewStyle().
		Foreground(TextMuted).
		Width(14)

	t.SessionTitle = lipgloss.NewStyle().
		Foreground(Ocean).
		Bold(true)

	t.SessionMeta = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Ocean).
		Padding(2, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Foreground(Ocean).
		Bold(true)

	t.WelcomeVersion = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.WelcomeKey = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	// Summaries and insights
	t.SummaryBlock = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Teal).
		PaddingLeft(2)

	t.InsightBlock = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true).
		PaddingLeft(2)

	t.SQLBadge = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 1)

	// ==========================================================================
	// ACCESSIBILITY: Status indicator styles with shapes and high contrast
	// ==========================================================================

	// SuccessStyle - High contrast green with bold for colorblind accessibility
	// ACCESSIBILITY: Use with StatusIndicators.Success symbol
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	// ErrorStyle - High contrast red with bold for colorblind accessibility
	// ACCESSIBILITY: Use with StatusIndicators.Error symbol
	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	// WarningStyle - High contrast amber with bold for colorblind accessibility
	// ACCESSIBILITY: Use with StatusIndicators.Warning symbol
	t.WarningStyle = lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)

	// InfoStyle - High contrast blue with bold for colorblind accessibility
	// ACCESSIBILITY: Use with StatusIndicators.Info symbol
	t.InfoStyle = lipgloss.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)

	// LinkStyle - Blue with underline for visual distinction beyond color
	// ACCESSIBILITY: Underline provides non-color visual cue for links
	t.LinkStyle = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)
}

// MarkerStyle returns the map marker style for a float status string.
// Unknown statuses fall back to the idle style.
func (t *Theme) MarkerStyle(status string) lipgloss.Style {
	switch status {
	case "active":
		return t.MapMarkerActive
	case "lost":
		return t.MapMarkerLost
	default:
		return t.MapMarkerIdle
	}
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
