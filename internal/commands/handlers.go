// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the TUI.
package commands

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatchat/floatchat-tui/internal/chart"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// These messages are sent by command handlers to update the application state.

// ShowHelpMsg triggers the help display.
type ShowHelpMsg struct{}

// NewSessionMsg starts a fresh conversation.
type NewSessionMsg struct{}

// SaveSessionMsg triggers saving the current conversation.
type SaveSessionMsg struct {
	Name string // Optional name/title
}

// SaveCompleteMsg indicates save completion.
type SaveCompleteMsg struct {
	ID    string
	Error error
}

// ListSessionsMsg triggers showing the session list.
type ListSessionsMsg struct{}

// LoadSessionMsg triggers loading a saved session.
type LoadSessionMsg struct {
	ID string
}

// ClearConversationMsg triggers clearing the conversation.
type ClearConversationMsg struct{}

// RetryQueryMsg re-runs the most recent query.
type RetryQueryMsg struct{}

// CopyLastReplyMsg copies the last bot reply to the clipboard.
type CopyLastReplyMsg struct{}

// ExportResultMsg exports the last query results to CSV.
type ExportResultMsg struct{}

// ExportTranscriptMsg exports the conversation transcript to Markdown.
type ExportTranscriptMsg struct{}

// ExportCompleteMsg indicates export completion.
type ExportCompleteMsg struct {
	Path  string
	Error error
}

// ExplainResultMsg requests an insight digest of the last results.
type ExplainResultMsg struct{}

// SuggestQueriesMsg asks the backend for follow-up suggestions.
type SuggestQueriesMsg struct {
	Topic string
}

// RefreshFloatsMsg reloads the float catalog.
type RefreshFloatsMsg struct{}

// ShowSQLMsg shows the SQL behind the last result.
type ShowSQLMsg struct{}

// SetChartMsg switches the chart panel mode.
type SetChartMsg struct {
	Kind chart.Kind
}

// ShowStatusMsg triggers showing backend connection status.
type ShowStatusMsg struct{}

// CommandErrorMsg reports a command that could not run.
type CommandErrorMsg struct {
	Message string
}

// =============================================================================
// HANDLERS
// =============================================================================

// Handlers translate parsed commands into messages. The root model owns the
// state, so anything touching floats, results, or the conversation is done
// there in response to these messages.

func handleHelp(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return ShowHelpMsg{} }
}

func handleQuit(ctx *Context, args []string) tea.Cmd {
	return tea.Quit
}

func handleNew(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return NewSessionMsg{} }
}

func handleSave(ctx *Context, args []string) tea.Cmd {
	name := strings.Join(args, " ")
	return func() tea.Msg { return SaveSessionMsg{Name: name} }
}

func handleSessions(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return ListSessionsMsg{} }
}

func handleLoad(ctx *Context, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return CommandErrorMsg{Message: "usage: /load <id> (see /sessions for IDs)"}
		}
	}
	id := args[0]
	return func() tea.Msg { return LoadSessionMsg{ID: id} }
}

func handleClear(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return ClearConversationMsg{} }
}

func handleRetry(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return RetryQueryMsg{} }
}

func handleCopy(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return CopyLastReplyMsg{} }
}

func handleExport(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return ExportResultMsg{} }
}

func handleTranscript(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return ExportTranscriptMsg{} }
}

func handleExplain(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return ExplainResultMsg{} }
}

func handleSuggest(ctx *Context, args []string) tea.Cmd {
	topic := strings.Join(args, " ")
	return func() tea.Msg { return SuggestQueriesMsg{Topic: topic} }
}

func handleRefresh(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return RefreshFloatsMsg{} }
}

func handleSQL(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return ShowSQLMsg{} }
}

func handleChart(ctx *Context, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return CommandErrorMsg{Message: "usage: /chart <" + strings.Join(chartKindValues(), "|") + ">"}
		}
	}
	kind, ok := chart.ParseKind(strings.ToLower(args[0]))
	if !ok {
		name := args[0]
		return func() tea.Msg {
			return CommandErrorMsg{Message: "unknown chart kind '" + name + "'"}
		}
	}
	return func() tea.Msg { return SetChartMsg{Kind: kind} }
}

func handleStatus(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg { return ShowStatusMsg{} }
}
