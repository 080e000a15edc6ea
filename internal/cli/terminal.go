// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - TTY detection for output formatting decisions.
package cli

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdin is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY reports whether stdout is attached to a terminal. Markdown
// rendering and color are disabled when it is not, so piped output stays
// clean.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalWidth returns the terminal width, or 80 when it cannot be
// determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
