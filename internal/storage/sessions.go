// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides session persistence for the FloatChat TUI.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/model"
	"github.com/floatchat/floatchat-tui/internal/util"
)

// =============================================================================
// STORED SESSION TYPES
// =============================================================================

// StoredSession is the on-disk form of a conversation.
type StoredSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Turns []StoredTurn `json:"turns"`
}

// StoredTurn is the on-disk form of one chat turn.
type StoredTurn struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"` // "user" or "bot"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	Error         bool   `json:"error,omitempty"`
	OriginalQuery string `json:"original_query,omitempty"`

	Data *api.QueryResult `json:"data,omitempty"`
}

// SessionMeta contains metadata for listing sessions.
type SessionMeta struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TurnCount int       `json:"turn_count"`
	Preview   string    `json:"preview"` // First user turn, truncated
}

// =============================================================================
// CONVERSION
// =============================================================================

// FromConversation converts the in-memory conversation to its stored form.
func FromConversation(conv *model.Conversation) *StoredSession {
	stored := &StoredSession{
		ID:        conv.ID,
		Title:     conv.GetTitle(),
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
	for _, turn := range conv.Turns {
		stored.Turns = append(stored.Turns, StoredTurn{
			ID:            turn.ID,
			Role:          turn.Role.String(),
			Content:       turn.Content,
			Timestamp:     turn.Timestamp,
			Error:         turn.Error,
			OriginalQuery: turn.OriginalQuery,
			Data:          turn.Data,
		})
	}
	return stored
}

// ToConversation rebuilds the in-memory conversation from its stored form.
func (s *StoredSession) ToConversation() *model.Conversation {
	conv := &model.Conversation{
		ID:        s.ID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	for _, turn := range s.Turns {
		role := model.RoleBot
		if turn.Role == model.RoleUser.String() {
			role = model.RoleUser
		}
		conv.Turns = append(conv.Turns, &model.ChatTurn{
			ID:            turn.ID,
			Role:          role,
			Content:       turn.Content,
			Timestamp:     turn.Timestamp,
			Error:         turn.Error,
			OriginalQuery: turn.OriginalQuery,
			Data:          turn.Data,
		})
	}
	return conv
}

// =============================================================================
// SESSION STORE
// =============================================================================

// SessionStore handles session persistence as one JSON file per session.
type SessionStore struct {
	// BaseDir is the directory for storing sessions.
	// Default: ~/.floatchat/sessions/
	BaseDir string

	// MaxSessions limits stored sessions (0 = unlimited).
	MaxSessions int
}

// NewSessionStore creates a store rooted under the user's home directory.
func NewSessionStore() (*SessionStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewSessionStoreWithDir(filepath.Join(homeDir, ".floatchat", "sessions"))
}

// NewSessionStoreWithDir creates a store with a custom directory.
func NewSessionStoreWithDir(baseDir string) (*SessionStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &SessionStore{
		BaseDir:     baseDir,
		MaxSessions: 100,
	}, nil
}

// =============================================================================
// SAVE OPERATIONS
// =============================================================================

// Save persists a session and returns its ID.
func (s *SessionStore) Save(sess *StoredSession) (string, error) {
	sess.UpdatedAt = time.Now()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = sess.UpdatedAt
	}
	if sess.Title == "" {
		sess.Title = "New Session"
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return "", err
	}

	// Atomic write so a crash never leaves a half-written session.
	if err := util.AtomicWriteFile(s.filePath(sess.ID), data, 0644); err != nil {
		return "", err
	}

	if s.MaxSessions > 0 {
		s.enforceLimit()
	}

	return sess.ID, nil
}

// enforceLimit removes the oldest sessions if over limit.
func (s *SessionStore) enforceLimit() {
	metas, err := s.List()
	if err != nil || len(metas) <= s.MaxSessions {
		return
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.Before(metas[j].UpdatedAt)
	})

	excess := len(metas) - s.MaxSessions
	for i := 0; i < excess; i++ {
		s.Delete(metas[i].ID)
	}
}

// =============================================================================
// LOAD OPERATIONS
// =============================================================================

// Load retrieves a session by ID.
func (s *SessionStore) Load(id string) (*StoredSession, error) {
	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var sess StoredSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// LoadByIndex loads a session by its index in the list (0 = most recent).
func (s *SessionStore) LoadByIndex(index int) (*StoredSession, error) {
	metas, err := s.List()
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(metas) {
		return nil, ErrSessionNotFound
	}

	return s.Load(metas[index].ID)
}

// =============================================================================
// LIST OPERATIONS
// =============================================================================

// List returns all saved sessions, most recent first.
func (s *SessionStore) List() ([]SessionMeta, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMeta{}, nil
		}
		return nil, err
	}

	var metas []SessionMeta

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		sess, err := s.Load(id)
		if err != nil {
			continue // Skip corrupted files
		}

		preview := ""
		for _, turn := range sess.Turns {
			if turn.Role == "user" {
				preview = truncateString(turn.Content, 80)
				break
			}
		}

		metas = append(metas, SessionMeta{
			ID:        sess.ID,
			Title:     sess.Title,
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt,
			TurnCount: len(sess.Turns),
			Preview:   preview,
		})
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})

	return metas, nil
}

// Search finds sessions whose title or preview matches the query string.
func (s *SessionStore) Search(query string) ([]SessionMeta, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	var results []SessionMeta

	for _, meta := range all {
		if strings.Contains(strings.ToLower(meta.Title), query) ||
			strings.Contains(strings.ToLower(meta.Preview), query) {
			results = append(results, meta)
		}
	}

	return results, nil
}

// =============================================================================
// DELETE OPERATIONS
// =============================================================================

// Delete removes a session by ID.
func (s *SessionStore) Delete(id string) error {
	if err := os.Remove(s.filePath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// Clear removes all saved sessions.
func (s *SessionStore) Clear() error {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			os.Remove(filepath.Join(s.BaseDir, entry.Name()))
		}
	}

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// filePath returns the file path for a session ID.
func (s *SessionStore) filePath(id string) string {
	return filepath.Join(s.BaseDir, id+".json")
}

// truncateString truncates a string to maxLen characters, adding "..." if
// truncated. Rune-based for proper Unicode handling.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrSessionNotFound is returned when a session doesn't exist.
// Use errors.Is(err, ErrSessionNotFound) to check for this error.
var ErrSessionNotFound = &SessionError{Message: "session not found"}

// SessionError represents a session-related error.
type SessionError struct {
	Message string
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing session errors.
func (e *SessionError) Is(target error) bool {
	t, ok := target.(*SessionError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
