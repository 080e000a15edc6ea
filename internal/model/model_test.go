// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"strings"
	"testing"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// =============================================================================
// TURN ID TESTS
// =============================================================================

func TestTurnIDs_MonotonicAndUnique(t *testing.T) {
	// Rapid successive appends must never collide even within the same
	// clock tick.
	seen := make(map[int64]bool)
	var prev int64
	for i := 0; i < 10000; i++ {
		turn := NewUserTurn("q")
		if seen[turn.ID] {
			t.Fatalf("duplicate turn ID %d after %d turns", turn.ID, i)
		}
		if turn.ID <= prev {
			t.Fatalf("turn ID %d not greater than previous %d", turn.ID, prev)
		}
		seen[turn.ID] = true
		prev = turn.ID
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_AppendPreservesOrder(t *testing.T) {
	conv := NewConversation()
	conv.AddUserTurn("first")
	conv.AddBotTurn("reply one", nil, "first")
	conv.AddUserTurn("second")
	conv.AddErrorTurn("failed", "second")

	if conv.TurnCount() != 4 {
		t.Fatalf("TurnCount() = %d, want 4", conv.TurnCount())
	}

	wantContents := []string{"first", "reply one", "second", "failed"}
	for i, turn := range conv.History() {
		if turn.Content != wantContents[i] {
			t.Errorf("turn %d content = %q, want %q", i, turn.Content, wantContents[i])
		}
	}

	last := conv.LastTurn()
	if !last.Error {
		t.Error("last turn should carry the error flag")
	}
	if last.OriginalQuery != "second" {
		t.Errorf("OriginalQuery = %q, want %q", last.OriginalQuery, "second")
	}
}

func TestConversation_LastResultTurn(t *testing.T) {
	conv := NewConversation()
	if conv.LastResultTurn() != nil {
		t.Error("LastResultTurn() on empty conversation should be nil")
	}

	result := &api.QueryResult{
		Results: []api.Row{{"float_id": "F1"}},
		Count:   1,
	}
	conv.AddUserTurn("q1")
	conv.AddBotTurn("with data", result, "q1")
	conv.AddUserTurn("q2")
	conv.AddBotTurn("no data", nil, "q2")

	turn := conv.LastResultTurn()
	if turn == nil {
		t.Fatal("LastResultTurn() = nil, want the turn carrying rows")
	}
	if turn.Content != "with data" {
		t.Errorf("LastResultTurn().Content = %q, want %q", turn.Content, "with data")
	}
}

func TestConversation_TitleFromFirstUserTurn(t *testing.T) {
	conv := NewConversation()
	if conv.GetTitle() != "New Session" {
		t.Errorf("GetTitle() = %q, want default", conv.GetTitle())
	}

	conv.AddBotTurn("welcome", nil, "")
	conv.AddUserTurn(strings.Repeat("x", 80))

	title := conv.GetTitle()
	if len([]rune(title)) != 50 {
		t.Errorf("title length = %d runes, want 50", len([]rune(title)))
	}
	if !strings.HasSuffix(title, "...") {
		t.Errorf("title %q should be truncated with ellipsis", title)
	}
}

func TestConversation_PruneOldTurns(t *testing.T) {
	conv := NewConversation()
	for i := 0; i < MaxTurns+25; i++ {
		conv.AddUserTurn("q")
	}
	if conv.TurnCount() != MaxTurns {
		t.Errorf("TurnCount() = %d, want %d after pruning", conv.TurnCount(), MaxTurns)
	}
}

func TestConversation_LastUserQuery(t *testing.T) {
	conv := NewConversation()
	conv.AddUserTurn("old question")
	conv.AddBotTurn("answer", nil, "old question")
	conv.AddUserTurn("new question")

	if got := conv.LastUserQuery(); got != "new question" {
		t.Errorf("LastUserQuery() = %q, want %q", got, "new question")
	}
}
