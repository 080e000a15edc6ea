// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the FloatChat TUI.
package components

import (
	"errors"
	"strings"
	"sync"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// =============================================================================
// ERROR CATEGORIES
// =============================================================================

// ErrorCategory represents the type of error for better organization and display.
type ErrorCategory string

const (
	// CategoryBackend represents backend connectivity and API errors
	CategoryBackend ErrorCategory = "Backend"
	// CategoryQuery represents natural-language query failures
	CategoryQuery ErrorCategory = "Query"
	// CategoryIngest represents NetCDF ingestion errors
	CategoryIngest ErrorCategory = "Ingest"
	// CategoryConfig represents configuration errors
	CategoryConfig ErrorCategory = "Config"
	// CategoryTimeout represents timeout errors
	CategoryTimeout ErrorCategory = "Timeout"
	// CategoryStorage represents history and session storage errors
	CategoryStorage ErrorCategory = "Storage"
	// CategoryParse represents parsing and format errors
	CategoryParse ErrorCategory = "Parse"
	// CategoryUnknown represents unclassified errors
	CategoryUnknown ErrorCategory = "Error"
)

// =============================================================================
// ERROR PATTERN MATCHER
// =============================================================================

// ErrorPattern defines a pattern to match against error strings and provide suggestions.
type ErrorPattern struct {
	// Keywords to match in the error message (case-insensitive, any match triggers)
	Keywords []string

	// Category classifies the error type
	Category ErrorCategory

	// Title for the error display
	Title string

	// Suggestions to help resolve the error
	Suggestions []string
}

// ErrorPatternMatcher analyzes error strings and provides smart suggestions.
type ErrorPatternMatcher struct {
	mu       sync.RWMutex
	patterns []ErrorPattern
}

var (
	defaultMatcher     *ErrorPatternMatcher
	defaultMatcherOnce sync.Once
)

// GetDefaultMatcher returns the singleton pattern matcher instance.
func GetDefaultMatcher() *ErrorPatternMatcher {
	defaultMatcherOnce.Do(func() {
		defaultMatcher = NewErrorPatternMatcher()
	})
	return defaultMatcher
}

// NewErrorPatternMatcher creates a new error pattern matcher with default patterns.
func NewErrorPatternMatcher() *ErrorPatternMatcher {
	matcher := &ErrorPatternMatcher{
		patterns: make([]ErrorPattern, 0),
	}

	matcher.registerDefaultPatterns()

	return matcher
}

// registerDefaultPatterns registers common error patterns with actionable suggestions.
// IMPORTANT: Patterns are registered from MOST SPECIFIC to LEAST SPECIFIC.
// The first matching pattern wins, so specific patterns must come before general ones.
func (m *ErrorPatternMatcher) registerDefaultPatterns() {
	// Missing base URL (must be before general config errors)
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"base url is not configured", "base_url",
		},
		Category: CategoryConfig,
		Title:    "Backend Not Configured",
		Suggestions: []string{
			"Set api.base_url in ~/.floatchat/config.toml",
			"Or export FLOATCHAT_API_URL=http://localhost:8000",
			"Check connection status with /status",
		},
	})

	// Request timeout (before general connection errors)
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"request timed out", "context deadline exceeded",
			"operation timed out", "timeout",
		},
		Category: CategoryTimeout,
		Title:    "Request Timeout",
		Suggestions: []string{
			"Try again - the backend may be busy translating your query",
			"Narrow the query to fewer floats or a shorter time range",
			"Raise api.timeout_secs in ~/.floatchat/config.toml",
		},
	})

	// Rate limiting
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"rate limit", "too many requests", "429", "throttled",
		},
		Category: CategoryBackend,
		Title:    "Rate Limit Exceeded",
		Suggestions: []string{
			"Wait a moment and retry with /retry",
			"Suggestions are throttled to protect the backend LLM",
		},
	})

	// NetCDF ingest failures
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"netcdf", ".nc file", "ingest failed", "ingestion",
		},
		Category: CategoryIngest,
		Title:    "Ingest Failed",
		Suggestions: []string{
			"Verify the file is a valid ARGO NetCDF profile file",
			"Check the file path and read permissions",
			"Review the backend logs for parser details",
		},
	})

	// SQL translation failures from the backend
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"could not translate", "no sql generated",
			"unable to answer", "query failed",
		},
		Category: CategoryQuery,
		Title:    "Query Not Understood",
		Suggestions: []string{
			"Rephrase the question in simpler terms",
			"Ask /suggest for example queries that work",
			"Mention a region, metric, or float ID explicitly",
		},
	})

	// History database errors
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"database is locked", "sqlite", "query_history",
		},
		Category: CategoryStorage,
		Title:    "History Database Error",
		Suggestions: []string{
			"Close other FloatChat instances using ~/.floatchat/history.db",
			"Disable history with FLOATCHAT_NO_HISTORY=1 if the problem persists",
		},
	})

	// Configuration errors
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"invalid config", "config validation", "configuration error",
			"toml",
		},
		Category: CategoryConfig,
		Title:    "Configuration Error",
		Suggestions: []string{
			"Check ~/.floatchat/config.toml syntax",
			"Remove the file to regenerate defaults",
		},
	})

	// JSON/parse errors
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"unmarshal", "parse error", "invalid json",
			"unexpected payload",
		},
		Category: CategoryParse,
		Title:    "Unexpected Response",
		Suggestions: []string{
			"The backend may be a different version than this client",
			"Retry the query with /retry",
		},
	})

	// General connection errors (fallback - must be LAST)
	m.AddPattern(ErrorPattern{
		Keywords: []string{
			"connection refused", "connect: connection refused",
			"dial tcp", "no such host", "network unreachable",
			"connection reset", "broken pipe", "not reachable",
			"cannot connect", "failed to connect",
		},
		Category: CategoryBackend,
		Title:    "Backend Unreachable",
		Suggestions: []string{
			"Start the FloatChat backend (uvicorn app.main:app)",
			"Verify api.base_url points at the right host and port",
			"Check connectivity with /status",
		},
	})
}

// AddPattern adds a custom error pattern to the matcher. Thread-safe.
func (m *ErrorPatternMatcher) AddPattern(pattern ErrorPattern) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patterns = append(m.patterns, pattern)
}

// Match analyzes an error string and returns an ErrorDisplay with suggestions.
// Returns nil if no pattern matches. Thread-safe.
func (m *ErrorPatternMatcher) Match(errMsg string) *ErrorDisplay {
	if errMsg == "" {
		return nil
	}

	errLower := strings.ToLower(errMsg)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, pattern := range m.patterns {
		if m.matchesPattern(errLower, pattern) {
			display := NewEnhancedError(pattern, errMsg)
			return &display
		}
	}

	return nil
}

// MatchOrDefault analyzes an error string and returns an ErrorDisplay.
// If no pattern matches, returns a generic error display with the given title.
func (m *ErrorPatternMatcher) MatchOrDefault(title, errMsg string) ErrorDisplay {
	if matched := m.Match(errMsg); matched != nil {
		return *matched
	}

	return NewError(title, errMsg)
}

// matchesPattern checks if an error message matches a pattern's keywords.
func (m *ErrorPatternMatcher) matchesPattern(errMsg string, pattern ErrorPattern) bool {
	for _, keyword := range pattern.Keywords {
		if strings.Contains(errMsg, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// =============================================================================
// SMART ERROR CREATION
// =============================================================================

// SmartError creates an error display with auto-detected pattern matching.
// This is the recommended way to create errors with remediation suggestions.
func SmartError(title, message string) ErrorDisplay {
	matcher := GetDefaultMatcher()
	return matcher.MatchOrDefault(title, message)
}

// SmartErrorFromError creates an error display from a Go error.
// Typed API client errors get routed by their error type before falling
// back to keyword matching.
func SmartErrorFromError(title string, err error) ErrorDisplay {
	if err == nil {
		return NewError(title, "Unknown error")
	}

	var clientErr *api.ClientError
	if errors.As(err, &clientErr) {
		if pattern, ok := patternForClientError(clientErr); ok {
			return NewEnhancedError(pattern, clientErr.Error())
		}
	}

	return SmartError(title, err.Error())
}

// patternForClientError maps a typed client error to a display pattern.
func patternForClientError(err *api.ClientError) (ErrorPattern, bool) {
	switch err.Type {
	case api.ErrTypeConnection:
		return ErrorPattern{
			Category: CategoryBackend,
			Title:    "Backend Unreachable",
			Suggestions: []string{
				"Start the FloatChat backend (uvicorn app.main:app)",
				"Verify api.base_url points at the right host and port",
				"Check connectivity with /status",
			},
		}, true
	case api.ErrTypeTimeout:
		return ErrorPattern{
			Category: CategoryTimeout,
			Title:    "Request Timeout",
			Suggestions: []string{
				"Try again - the backend may be busy translating your query",
				"Raise api.timeout_secs in ~/.floatchat/config.toml",
			},
		}, true
	case api.ErrTypeBackend:
		return ErrorPattern{
			Category: CategoryQuery,
			Title:    "Backend Error",
			Suggestions: []string{
				"Rephrase the question in simpler terms",
				"Ask /suggest for example queries that work",
			},
		}, true
	case api.ErrTypeConfig:
		return ErrorPattern{
			Category: CategoryConfig,
			Title:    "Backend Not Configured",
			Suggestions: []string{
				"Set api.base_url in ~/.floatchat/config.toml",
				"Or export FLOATCHAT_API_URL=http://localhost:8000",
			},
		}, true
	case api.ErrTypeFormat:
		return ErrorPattern{
			Category: CategoryParse,
			Title:    "Unexpected Response",
			Suggestions: []string{
				"The backend may be a different version than this client",
				"Retry the query with /retry",
			},
		}, true
	default:
		return ErrorPattern{}, false
	}
}
