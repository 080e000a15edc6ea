// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the FloatChat TUI.
package styles

import (
	"strings"
	"testing"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestAdaptiveColorsDefined(t *testing.T) {
	colors := []struct {
		name  string
		light string
		dark  string
	}{
		{"Ocean", Ocean.Light, Ocean.Dark},
		{"Teal", Teal.Light, Teal.Dark},
		{"SeaGreen", SeaGreen.Light, SeaGreen.Dark},
		{"Coral", Coral.Light, Coral.Dark},
		{"Amber", Amber.Light, Amber.Dark},
		{"Surface", Surface.Light, Surface.Dark},
		{"TextPrimary", TextPrimary.Light, TextPrimary.Dark},
		{"TextMuted", TextMuted.Light, TextMuted.Dark},
		{"UserBubbleBg", UserBubbleBg.Light, UserBubbleBg.Dark},
		{"BotBubbleBg", BotBubbleBg.Light, BotBubbleBg.Dark},
		{"FloatSelected", FloatSelected.Light, FloatSelected.Dark},
	}

	for _, c := range colors {
		if !strings.HasPrefix(c.light, "#") {
			t.Errorf("%s light color %q should be a hex value", c.name, c.light)
		}
		if !strings.HasPrefix(c.dark, "#") {
			t.Errorf("%s dark color %q should be a hex value", c.name, c.dark)
		}
	}
}

func TestFloatStatusColorsDistinct(t *testing.T) {
	// Active, inactive, and lost must be visually distinguishable
	if FloatActive == FloatInactive {
		t.Error("FloatActive and FloatInactive should differ")
	}
	if FloatActive == FloatLost {
		t.Error("FloatActive and FloatLost should differ")
	}
	if FloatInactive == FloatLost {
		t.Error("FloatInactive and FloatLost should differ")
	}
}

// =============================================================================
// STATUS INDICATOR TESTS
// =============================================================================

func TestStatusIndicatorsASCII(t *testing.T) {
	indicators := []struct {
		name  string
		value string
	}{
		{"Success", StatusIndicators.Success},
		{"Error", StatusIndicators.Error},
		{"Warning", StatusIndicators.Warning},
		{"Info", StatusIndicators.Info},
		{"Pending", StatusIndicators.Pending},
		{"Active", StatusIndicators.Active},
	}

	for _, ind := range indicators {
		if ind.value == "" {
			t.Errorf("StatusIndicators.%s should not be empty", ind.name)
		}
		for _, r := range ind.value {
			if r > 127 {
				t.Errorf("StatusIndicators.%s contains non-ASCII rune %q", ind.name, r)
			}
		}
	}
}

func TestFloatMarkersDistinct(t *testing.T) {
	markers := map[string]string{
		"Active":   FloatMarkers.Active,
		"Inactive": FloatMarkers.Inactive,
		"Lost":     FloatMarkers.Lost,
		"Selected": FloatMarkers.Selected,
	}

	seen := make(map[string]string)
	for name, marker := range markers {
		if marker == "" {
			t.Errorf("FloatMarkers.%s should not be empty", name)
		}
		if prev, ok := seen[marker]; ok {
			t.Errorf("FloatMarkers.%s reuses marker %q from %s", name, marker, prev)
		}
		seen[marker] = name
	}
}

// =============================================================================
// RENDER HELPER TESTS
// =============================================================================

func TestRenderHelpers(t *testing.T) {
	tests := []struct {
		name      string
		render    func(string) string
		indicator string
	}{
		{"RenderSuccess", RenderSuccess, StatusIndicators.Success},
		{"RenderError", RenderError, StatusIndicators.Error},
		{"RenderWarning", RenderWarning, StatusIndicators.Warning},
		{"RenderInfo", RenderInfo, StatusIndicators.Info},
	}

	for _, tc := range tests {
		got := tc.render("message")
		if !strings.Contains(got, tc.indicator) {
			t.Errorf("%s(%q) = %q, should contain indicator %q", tc.name, "message", got, tc.indicator)
		}
		if !strings.Contains(got, "message") {
			t.Errorf("%s should include the message text", tc.name)
		}
	}
}

func TestRenderStatus(t *testing.T) {
	success := RenderStatus(true, "done")
	if !strings.Contains(success, StatusIndicators.Success) {
		t.Errorf("RenderStatus(true) = %q, should contain %q", success, StatusIndicators.Success)
	}

	failure := RenderStatus(false, "failed")
	if !strings.Contains(failure, StatusIndicators.Error) {
		t.Errorf("RenderStatus(false) = %q, should contain %q", failure, StatusIndicators.Error)
	}
}

func TestRenderLink(t *testing.T) {
	got := RenderLink("https://example.com")
	if !strings.Contains(got, "https://example.com") {
		t.Errorf("RenderLink should include the link text, got %q", got)
	}
}
