// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := Default()
	cfg.API.BaseURL = "http://localhost:8000"
	return cfg
}

func TestValidate_RequiresBaseURL(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing base URL")
	}
	if !strings.Contains(err.Error(), "api.base_url") {
		t.Errorf("error should name api.base_url, got %q", err)
	}
}

func TestValidate_RejectsBadURL(t *testing.T) {
	cfg := validConfig()
	cfg.API.BaseURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for malformed URL")
	}
}

func TestValidate_RejectsBadTheme(t *testing.T) {
	cfg := validConfig()
	cfg.UI.Theme = "neon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown theme")
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestSaveAndLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := validConfig()
	cfg.API.TimeoutSecs = 45
	cfg.UI.ShowSQL = false

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	loaded := Default()
	if err := LoadTOML(loaded, path); err != nil {
		t.Fatalf("LoadTOML: %v", err)
	}

	if loaded.API.BaseURL != "http://localhost:8000" {
		t.Errorf("base URL = %q", loaded.API.BaseURL)
	}
	if loaded.API.TimeoutSecs != 45 {
		t.Errorf("timeout = %d", loaded.API.TimeoutSecs)
	}
	if loaded.UI.ShowSQL {
		t.Error("show_sql should round-trip as false")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	os.Setenv("FLOATCHAT_API_URL", "http://api.example.com")
	os.Setenv("FLOATCHAT_TIMEOUT_SECS", "60")
	os.Setenv("FLOATCHAT_NO_HISTORY", "true")
	defer func() {
		os.Unsetenv("FLOATCHAT_API_URL")
		os.Unsetenv("FLOATCHAT_TIMEOUT_SECS")
		os.Unsetenv("FLOATCHAT_NO_HISTORY")
	}()

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.BaseURL != "http://api.example.com" {
		t.Errorf("base URL override failed: %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSecs != 60 {
		t.Errorf("timeout override failed: %d", cfg.API.TimeoutSecs)
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled by FLOATCHAT_NO_HISTORY")
	}
}

func TestGetSet_DotNotation(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Set("api.timeout_secs", "90"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cfg.API.TimeoutSecs != 90 {
		t.Errorf("Set did not apply: %d", cfg.API.TimeoutSecs)
	}

	got, err := cfg.Get("ui.theme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "dark" {
		t.Errorf("Get(ui.theme) = %v", got)
	}

	if _, err := cfg.Get("nonsense.key"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	if cfg.API.TimeoutSecs != 30 {
		t.Errorf("timeout default = %d", cfg.API.TimeoutSecs)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme default = %q", cfg.UI.Theme)
	}
	if cfg.Sessions.MaxSessions != 100 {
		t.Errorf("max sessions default = %d", cfg.Sessions.MaxSessions)
	}
}
