// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// MaxTurns is the maximum number of turns kept in the transcript. When
// exceeded, the oldest turns are pruned to prevent unbounded memory growth.
const MaxTurns = 1000

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is the append-only chat transcript. It is the single source
// of truth for what the chat view displays: turns are appended through the
// Add* methods and never edited, removed, or reordered afterwards.
type Conversation struct {
	// Identity
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Turns, in arrival order.
	Turns []*ChatTurn `json:"turns"`
}

// NewConversation creates a new conversation with a generated ID.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        generateConversationID(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Turns:     make([]*ChatTurn, 0),
	}
}

// =============================================================================
// TURN MANAGEMENT
// =============================================================================

// Append adds a turn to the transcript.
func (c *Conversation) Append(turn *ChatTurn) {
	c.Turns = append(c.Turns, turn)
	c.UpdatedAt = time.Now()
	c.updateTitle()
	c.pruneOldTurns()
}

// AddUserTurn creates and appends a user turn.
func (c *Conversation) AddUserTurn(content string) *ChatTurn {
	turn := NewUserTurn(content)
	c.Append(turn)
	return turn
}

// AddBotTurn creates and appends a bot turn.
func (c *Conversation) AddBotTurn(content string, data *api.QueryResult, originalQuery string) *ChatTurn {
	turn := NewBotTurn(content, data, originalQuery)
	c.Append(turn)
	return turn
}

// AddErrorTurn creates and appends an error reply turn.
func (c *Conversation) AddErrorTurn(content string, originalQuery string) *ChatTurn {
	turn := NewErrorTurn(content, originalQuery)
	c.Append(turn)
	return turn
}

// LastTurn returns the most recent turn, or nil if empty.
func (c *Conversation) LastTurn() *ChatTurn {
	if len(c.Turns) == 0 {
		return nil
	}
	return c.Turns[len(c.Turns)-1]
}

// LastResultTurn returns the most recent bot turn that carries result rows.
func (c *Conversation) LastResultTurn() *ChatTurn {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].Role == RoleBot && c.Turns[i].HasResults() {
			return c.Turns[i]
		}
	}
	return nil
}

// LastUserQuery returns the content of the most recent user turn.
func (c *Conversation) LastUserQuery() string {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].Role == RoleUser {
			return c.Turns[i].Content
		}
	}
	return ""
}

// TurnCount returns the number of turns.
func (c *Conversation) TurnCount() int {
	return len(c.Turns)
}

// IsEmpty returns true if there are no turns.
func (c *Conversation) IsEmpty() bool {
	return len(c.Turns) == 0
}

// History returns the turns for display.
func (c *Conversation) History() []*ChatTurn {
	return c.Turns
}

// =============================================================================
// TITLE MANAGEMENT
// =============================================================================

// updateTitle auto-generates a title from the first user turn if not set.
func (c *Conversation) updateTitle() {
	if c.Title != "" {
		return
	}
	for _, turn := range c.Turns {
		if turn.Role == RoleUser {
			c.Title = turn.Preview(50)
			return
		}
	}
}

// GetTitle returns the conversation title or a default.
func (c *Conversation) GetTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return "New Session"
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateConversationID creates a unique conversation ID.
func generateConversationID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "sess_" + hex.EncodeToString(bytes)
}

// pruneOldTurns drops the oldest turns once the transcript exceeds MaxTurns.
func (c *Conversation) pruneOldTurns() {
	if len(c.Turns) <= MaxTurns {
		return
	}
	c.Turns = c.Turns[len(c.Turns)-MaxTurns:]
}
