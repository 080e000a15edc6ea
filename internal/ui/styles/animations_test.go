// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the FloatChat TUI.
package styles

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// SPINNER TESTS
// =============================================================================

func TestSpinnerConfigs(t *testing.T) {
	spinners := []struct {
		name    string
		spinner SpinnerConfig
	}{
		{"LineSpinner", LineSpinner},
		{"DotsSpinner", DotsSpinner},
		{"WaveSpinner", WaveSpinner},
	}

	for _, s := range spinners {
		if len(s.spinner.Frames) == 0 {
			t.Errorf("%s should have frames", s.name)
		}
		if s.spinner.FPS <= 0 {
			t.Errorf("%s FPS = %d, should be positive", s.name, s.spinner.FPS)
		}
	}
}

func TestSpinnerDuration(t *testing.T) {
	s := SpinnerConfig{Frames: []string{"|", "/"}, FPS: 10}
	want := 100 * time.Millisecond
	if got := s.Duration(); got != want {
		t.Errorf("Duration() = %v, want %v", got, want)
	}
}

// =============================================================================
// PROGRESS BAR TESTS
// =============================================================================

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent float64
		want    string
	}{
		{"empty", 10, 0, "----------"},
		{"full", 10, 100, "##########"},
		{"half", 10, 50, "#####-----"},
		{"clamped low", 10, -5, "----------"},
		{"clamped high", 10, 150, "##########"},
		{"zero width", 0, 50, ""},
		{"negative width", -3, 50, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderProgressBar(tc.width, tc.percent)
			if got != tc.want {
				t.Errorf("RenderProgressBar(%d, %v) = %q, want %q", tc.width, tc.percent, got, tc.want)
			}
		})
	}
}

func TestRenderProgressBarWidth(t *testing.T) {
	// Output length must match requested width for any percentage
	for _, percent := range []float64{0, 13, 37.5, 66.6, 99, 100} {
		got := RenderProgressBar(20, percent)
		if len(got) != 20 {
			t.Errorf("RenderProgressBar(20, %v) length = %d, want 20", percent, len(got))
		}
	}
}

// =============================================================================
// TREE CONNECTOR TESTS
// =============================================================================

func TestRenderTreeLine(t *testing.T) {
	last := RenderTreeLine(true)
	if !strings.HasPrefix(last, TreeChars.Corner) {
		t.Errorf("RenderTreeLine(true) = %q, should start with corner", last)
	}

	middle := RenderTreeLine(false)
	if !strings.HasPrefix(middle, TreeChars.Tee) {
		t.Errorf("RenderTreeLine(false) = %q, should start with tee", middle)
	}
}
