// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// output.go - shared output helpers: JSON envelope, markdown rendering,
// and the handful of lipgloss styles the line-mode commands use.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Ocean).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Coral).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(styles.SeaGreen).
		Bold(true)
)

// =============================================================================
// JSON OUTPUT
// =============================================================================

// JSONResponse is the shape every --json command prints. It mirrors the
// backend envelope, so scripted callers handle both the same way.
type JSONResponse struct {
	Success bool   `json:"success"`
	Command string `json:"command"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Print writes the response as indented JSON to stdout.
func (r *JSONResponse) Print() error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// OutputJSON runs handler and prints its result in the JSON envelope.
// Errors become a success=false envelope with exit handled by the caller.
func OutputJSON(command string, handler func() (any, error)) error {
	data, err := handler()
	resp := &JSONResponse{Success: err == nil, Command: command, Data: data}
	if err != nil {
		resp.Message = err.Error()
	}
	if printErr := resp.Print(); printErr != nil {
		return printErr
	}
	return err
}

// =============================================================================
// MARKDOWN
// =============================================================================

// markdownRenderer renders bot answers for terminal display. Nil when the
// renderer could not initialize; output falls back to plain text.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(GetTerminalWidth(), 100)),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown, falling back to the raw content.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayAnswer prints an answer, with markdown rendering only on a TTY
// so piped output is not corrupted by ANSI sequences.
func displayAnswer(answer string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(answer))
		return
	}
	fmt.Println(answer)
}

// printError writes a styled error line to stderr.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
}
