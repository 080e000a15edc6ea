// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, q := range []string{"first query", "second query", "third query"} {
		_, err := store.Record(ctx, Entry{Query: q, ResultCount: i, Succeeded: true, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Query != "third query" || entries[1].Query != "second query" {
		t.Errorf("wrong order: %q, %q", entries[0].Query, entries[1].Query)
	}
}

func TestStore_RejectsEmptyQuery(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Record(context.Background(), Entry{Query: "   "}); err == nil {
		t.Error("expected error for blank query")
	}
}

func TestStore_RecordsFailures(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Record(ctx, Entry{Query: "bad query", Succeeded: false, ErrorMessage: "backend unavailable"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if entries[0].Succeeded || entries[0].ErrorMessage != "backend unavailable" {
		t.Errorf("failure not preserved: %+v", entries[0])
	}
}

func TestStore_Search(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"salinity near equator", "temperature profile", "salinity trends"} {
		if _, err := store.Record(ctx, Entry{Query: q, Succeeded: true}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.Search(ctx, "salinity", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 matches, got %d", len(entries))
	}
}

func TestStore_Prune(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	if _, err := store.Record(ctx, Entry{Query: "old query", CreatedAt: old}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := store.Record(ctx, Entry{Query: "new query"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	removed, err := store.Prune(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 pruned entry, got %d", removed)
	}

	entries, _ := store.Recent(ctx, 10)
	if len(entries) != 1 || entries[0].Query != "new query" {
		t.Errorf("unexpected remaining entries: %v", entries)
	}
}
