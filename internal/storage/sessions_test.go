// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"testing"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/model"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	store, err := NewSessionStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewSessionStoreWithDir: %v", err)
	}
	return store
}

func sampleConversation() *model.Conversation {
	conv := model.NewConversation()
	conv.AddUserTurn("Show me active floats in the Indian Ocean")
	conv.AddBotTurn("✅ **Query Results:** Found 1 records", &api.QueryResult{
		Count:   1,
		Results: []api.Row{{"float_id": "F1", "status": "active"}},
	}, "Show me active floats in the Indian Ocean")
	return conv
}

func TestSessionStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	conv := sampleConversation()

	id, err := store.Save(FromConversation(conv))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	restored := loaded.ToConversation()
	if restored.TurnCount() != 2 {
		t.Fatalf("expected 2 turns, got %d", restored.TurnCount())
	}
	if restored.Turns[0].Role != model.RoleUser || restored.Turns[1].Role != model.RoleBot {
		t.Error("roles not preserved")
	}
	if !restored.Turns[1].HasResults() {
		t.Error("query result data not preserved")
	}
	if restored.Turns[1].Data.Results[0]["float_id"] != "F1" {
		t.Errorf("result rows not preserved: %v", restored.Turns[1].Data.Results)
	}
}

func TestSessionStore_ListNewestFirst(t *testing.T) {
	store := newTestStore(t)

	first := FromConversation(sampleConversation())
	first.ID = "sess_first"
	if _, err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := FromConversation(sampleConversation())
	second.ID = "sess_second"
	if _, err := store.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(metas))
	}
	if metas[0].ID != "sess_second" {
		t.Errorf("most recent session should list first, got %q", metas[0].ID)
	}
	if metas[0].Preview == "" {
		t.Error("preview should come from the first user turn")
	}
}

func TestSessionStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load("sess_nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Save(FromConversation(sampleConversation()))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionStore_EnforcesLimit(t *testing.T) {
	store := newTestStore(t)
	store.MaxSessions = 2

	for _, id := range []string{"sess_a", "sess_b", "sess_c"} {
		sess := FromConversation(sampleConversation())
		sess.ID = id
		if _, err := store.Save(sess); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Errorf("expected limit of 2 sessions, got %d", len(metas))
	}
	for _, meta := range metas {
		if meta.ID == "sess_a" {
			t.Error("oldest session should have been evicted")
		}
	}
}

func TestSessionStore_Search(t *testing.T) {
	store := newTestStore(t)

	conv := model.NewConversation()
	conv.AddUserTurn("salinity trends near the equator")
	sess := FromConversation(conv)
	sess.ID = "sess_sal"
	if _, err := store.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	other := FromConversation(sampleConversation())
	other.ID = "sess_other"
	if _, err := store.Save(other); err != nil {
		t.Fatalf("Save: %v", err)
	}

	results, err := store.Search("salinity")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "sess_sal" {
		t.Errorf("Search = %v", results)
	}
}
