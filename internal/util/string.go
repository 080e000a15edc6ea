// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the FloatChat TUI.
package util

import "github.com/mattn/go-runewidth"

// UNICODE: Width-aware truncation keeps table cells aligned when values
// contain double-width characters (CJK) that take 2 terminal columns.

// TruncateWidth truncates a string to a maximum display width. If the
// string is truncated, "…" is appended within the width budget.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadWidth pads a string with spaces to the given display width, truncating
// if it is already wider. Used for aligning table cells.
func PadWidth(s string, width int) string {
	s = TruncateWidth(s, width)
	return s + spaces(width-runewidth.StringWidth(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
