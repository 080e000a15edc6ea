// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat tab of the FloatChat TUI.
package chat

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// QueryResultMsg carries a successful backend answer for a submitted query.
type QueryResultMsg struct {
	Query  string
	Result *api.QueryResult
}

// QueryErrorMsg carries a failed query along with the question that caused it.
type QueryErrorMsg struct {
	Query string
	Err   error
}

// SuggestResultMsg carries alternative phrasings from the backend.
type SuggestResultMsg struct {
	Query       string
	Suggestions []string
	Err         error
}

// CopyDoneMsg reports the outcome of a clipboard copy.
type CopyDoneMsg struct {
	TurnID int64
	Err    error
}

// FlashExpiredMsg clears a transient status flash.
type FlashExpiredMsg struct {
	At time.Time
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// QueryCmd submits a natural-language question to the backend. The client
// carries its own request timeout, so the context here is plain Background.
func QueryCmd(client *api.Client, query string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Query(context.Background(), query)
		if err != nil {
			return QueryErrorMsg{Query: query, Err: err}
		}
		return QueryResultMsg{Query: query, Result: result}
	}
}

// SuggestCmd asks the backend for alternative phrasings of a query. The
// client rate-limits this endpoint internally.
func SuggestCmd(client *api.Client, query string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := client.Suggest(context.Background(), query)
		return SuggestResultMsg{Query: query, Suggestions: suggestions, Err: err}
	}
}

// CopyCmd writes a turn's content to the system clipboard.
func CopyCmd(turnID int64, content string) tea.Cmd {
	return func() tea.Msg {
		return CopyDoneMsg{TurnID: turnID, Err: clipboard.WriteAll(content)}
	}
}

// FlashCmd schedules the expiry of a transient status flash.
func FlashCmd(at time.Time, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return FlashExpiredMsg{At: at}
	})
}
