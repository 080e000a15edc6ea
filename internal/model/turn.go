// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"sync/atomic"
	"time"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a chat turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleBot:
		return "FloatChat"
	default:
		return string(r)
	}
}

// =============================================================================
// CHAT TURN
// =============================================================================

// ChatTurn is a single entry in the transcript. Turns are immutable once
// appended; the transient "copied" flash lives in the view, not here.
type ChatTurn struct {
	// Identity
	ID        int64     `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string `json:"content"`

	// Data carries the raw result payload for bot turns that answered a
	// query, so actions like export and /explain can reach it later.
	Data *api.QueryResult `json:"data,omitempty"`

	// Error marks turns that render an error reply.
	Error bool `json:"error,omitempty"`

	// OriginalQuery stores the question that produced this turn, for
	// /retry and /suggest.
	OriginalQuery string `json:"original_query,omitempty"`
}

// NewUserTurn creates a user turn.
func NewUserTurn(content string) *ChatTurn {
	return &ChatTurn{
		ID:        nextTurnID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewBotTurn creates a bot turn, optionally carrying the query result that
// produced it.
func NewBotTurn(content string, data *api.QueryResult, originalQuery string) *ChatTurn {
	return &ChatTurn{
		ID:            nextTurnID(),
		Role:          RoleBot,
		Content:       content,
		Timestamp:     time.Now(),
		Data:          data,
		OriginalQuery: originalQuery,
	}
}

// NewErrorTurn creates a bot turn flagged as an error reply.
func NewErrorTurn(content string, originalQuery string) *ChatTurn {
	return &ChatTurn{
		ID:            nextTurnID(),
		Role:          RoleBot,
		Content:       content,
		Timestamp:     time.Now(),
		Error:         true,
		OriginalQuery: originalQuery,
	}
}

// HasResults reports whether the turn carries result rows.
func (t *ChatTurn) HasResults() bool {
	return t.Data != nil && len(t.Data.Results) > 0
}

// Preview returns a truncated preview of the turn content.
// Rune-based so multi-byte characters are never split.
func (t *ChatTurn) Preview(maxLen int) string {
	runes := []rune(t.Content)
	if len(runes) <= maxLen {
		return t.Content
	}
	return string(runes[:maxLen-3]) + "..."
}

// =============================================================================
// ID GENERATION
// =============================================================================

// turnCounter is seeded once from the wall clock and only ever incremented,
// so two turns appended within the same clock tick still get distinct,
// strictly increasing IDs.
var turnCounter atomic.Int64

func init() {
	turnCounter.Store(time.Now().UnixMilli() << 16)
}

// nextTurnID returns a unique, monotonically increasing turn ID.
func nextTurnID() int64 {
	return turnCounter.Add(1)
}
