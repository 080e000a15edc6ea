// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// the FloatChat TUI.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.floatchat/config.toml
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete FloatChat configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// API configuration for the backend the dashboard talks to
	API APIConfig `toml:"api" json:"api"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Export configuration
	Export ExportConfig `toml:"export" json:"export"`

	// History configuration
	History HistoryConfig `toml:"history" json:"history"`

	// Sessions configuration
	Sessions SessionsConfig `toml:"sessions" json:"sessions"`
}

// APIConfig contains backend API configuration.
type APIConfig struct {
	// BaseURL is the backend API base URL. Required.
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs is the per-request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// SuggestIntervalSecs is the minimum interval between suggestion requests
	SuggestIntervalSecs int `toml:"suggest_interval_secs" json:"suggest_interval_secs"`
	// SuggestBurst is the suggestion request burst allowance
	SuggestBurst int `toml:"suggest_burst" json:"suggest_burst"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// ShowSQL displays the generated SQL under bot replies
	ShowSQL bool `toml:"show_sql" json:"show_sql"`
	// CompactMode uses a more compact UI layout
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// DemoQueries shows the demo query hints on the welcome screen
	DemoQueries bool `toml:"demo_queries" json:"demo_queries"`
}

// ExportConfig contains export configuration.
type ExportConfig struct {
	// OutputDir is where exported files are written (empty = current directory)
	OutputDir string `toml:"output_dir" json:"output_dir"`
	// OpenAfterExport opens exported files in the default application
	OpenAfterExport bool `toml:"open_after_export" json:"open_after_export"`
}

// HistoryConfig contains query history configuration.
type HistoryConfig struct {
	// Enabled controls whether query history is recorded
	Enabled bool `toml:"enabled" json:"enabled"`
	// MaxAgeDays prunes history entries older than this (0 = keep forever)
	MaxAgeDays int `toml:"max_age_days" json:"max_age_days"`
}

// SessionsConfig contains session persistence configuration.
type SessionsConfig struct {
	// MaxSessions limits stored sessions (0 = unlimited)
	MaxSessions int `toml:"max_sessions" json:"max_sessions"`
	// AutoSave saves the conversation after every turn
	AutoSave bool `toml:"auto_save" json:"auto_save"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values. The API base URL
// has no default; it must come from the config file or environment.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		API: APIConfig{
			BaseURL:             "",
			TimeoutSecs:         30,
			SuggestIntervalSecs: 2,
			SuggestBurst:        3,
		},

		UI: UIConfig{
			Theme:       "dark",
			ShowSQL:     true,
			CompactMode: false,
			DemoQueries: true,
		},

		Export: ExportConfig{
			OutputDir:       "",
			OpenAfterExport: false,
		},

		History: HistoryConfig{
			Enabled:    true,
			MaxAgeDays: 90,
		},

		Sessions: SessionsConfig{
			MaxSessions: 100,
			AutoSave:    true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the FloatChat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".floatchat"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults.
// Environment overrides are applied last, then the result is validated.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation applied.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# FloatChat configuration file")
	fmt.Fprintln(file, "# Generated by floatchat - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.API.BaseURL == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: "backend API base URL is required (set it in ~/.floatchat/config.toml or FLOATCHAT_API_URL)",
		})
	} else {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "api.base_url",
				Message: fmt.Sprintf("invalid URL '%s'", c.API.BaseURL),
			})
		}
	}

	if c.API.TimeoutSecs < 1 || c.API.TimeoutSecs > 300 {
		errs = append(errs, ValidationError{
			Field:   "api.timeout_secs",
			Message: fmt.Sprintf("must be 1-300 seconds, got %d", c.API.TimeoutSecs),
		})
	}

	if c.API.SuggestIntervalSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "api.suggest_interval_secs",
			Message: "must be non-negative",
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.History.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "history.max_age_days",
			Message: "must be non-negative",
		})
	}

	if c.Sessions.MaxSessions < 0 {
		errs = append(errs, ValidationError{
			Field:   "sessions.max_sessions",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.API.TimeoutSecs == 0 {
		c.API.TimeoutSecs = defaults.API.TimeoutSecs
	}
	if c.API.SuggestIntervalSecs == 0 {
		c.API.SuggestIntervalSecs = defaults.API.SuggestIntervalSecs
	}
	if c.API.SuggestBurst == 0 {
		c.API.SuggestBurst = defaults.API.SuggestBurst
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.History.MaxAgeDays == 0 {
		c.History.MaxAgeDays = defaults.History.MaxAgeDays
	}
	if c.Sessions.MaxSessions == 0 {
		c.Sessions.MaxSessions = defaults.Sessions.MaxSessions
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - FLOATCHAT_API_URL: overrides api.base_url
//   - FLOATCHAT_TIMEOUT_SECS: overrides api.timeout_secs
//   - FLOATCHAT_THEME: overrides ui.theme
//   - FLOATCHAT_EXPORT_DIR: overrides export.output_dir
//   - FLOATCHAT_NO_HISTORY: set to "1" or "true" to disable query history
func (c *Config) ApplyEnvOverrides() {
	if baseURL := os.Getenv("FLOATCHAT_API_URL"); baseURL != "" {
		c.API.BaseURL = baseURL
	}

	if timeout := os.Getenv("FLOATCHAT_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			c.API.TimeoutSecs = secs
		}
	}

	if theme := os.Getenv("FLOATCHAT_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if dir := os.Getenv("FLOATCHAT_EXPORT_DIR"); dir != "" {
		c.Export.OutputDir = dir
	}

	if noHistory := os.Getenv("FLOATCHAT_NO_HISTORY"); noHistory != "" {
		if noHistory == "1" || strings.ToLower(noHistory) == "true" {
			c.History.Enabled = false
		}
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "api.base_url").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "api.base_url").
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field
// equivalent. "base_url" becomes "Baseurl", which FieldByNameFunc matches
// case-insensitively against "BaseURL".
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// String input gets converted to the field's type
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"api.base_url",
		"api.timeout_secs",
		"api.suggest_interval_secs",
		"api.suggest_burst",
		"ui.theme",
		"ui.show_sql",
		"ui.compact_mode",
		"ui.demo_queries",
		"export.output_dir",
		"export.open_after_export",
		"history.enabled",
		"history.max_age_days",
		"sessions.max_sessions",
		"sessions.auto_save",
	}
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
			cfg.ApplyEnvOverrides()
			cfg.SetDefaults()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
