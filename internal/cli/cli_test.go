// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := Parse(nil)
	if cmd != CmdTUI {
		t.Errorf("no args = %v, want CmdTUI", cmd)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"tui", []string{"tui"}, CmdTUI},
		{"ask", []string{"ask", "how", "many", "floats"}, CmdAsk},
		{"repl", []string{"repl"}, CmdRepl},
		{"chat alias", []string{"chat"}, CmdRepl},
		{"status", []string{"status"}, CmdStatus},
		{"status short", []string{"s"}, CmdStatus},
		{"config", []string{"config", "show"}, CmdConfig},
		{"ingest", []string{"ingest", "file.nc"}, CmdIngest},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"-h"}, CmdHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := Parse(tt.argv)
			if cmd != tt.want {
				t.Errorf("Parse(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseBareQuestionBecomesAsk(t *testing.T) {
	cmd, args := Parse([]string{"how", "many", "floats", "are", "active"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "how many floats are active" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParseAskJoinsQueryAndSkipsFlags(t *testing.T) {
	cmd, args := Parse([]string{"--sql", "ask", "deepest", "profile"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if !args.ShowSQL {
		t.Error("--sql not picked up")
	}
	if args.Query != "deepest profile" {
		t.Errorf("query = %q, want %q", args.Query, "deepest profile")
	}
}

func TestParseGlobalFlags(t *testing.T) {
	_, args := Parse([]string{"--json", "--backend", "http://example:8000", "-q", "status"})
	if !args.JSON || !args.Quiet {
		t.Errorf("flags = %+v, want JSON and Quiet set", args)
	}
	if args.Backend != "http://example:8000" {
		t.Errorf("backend = %q", args.Backend)
	}
}

func TestParseBackendEqualsForm(t *testing.T) {
	_, args := Parse([]string{"--backend=http://example:9000", "status"})
	if args.Backend != "http://example:9000" {
		t.Errorf("backend = %q", args.Backend)
	}
}

func TestParseConfigArgs(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		sub     string
		key     string
		value   string
	}{
		{"bare", []string{"config"}, "show", "", ""},
		{"get", []string{"config", "get", "api.base_url"}, "get", "api.base_url", ""},
		{"set", []string{"config", "set", "ui.theme", "light"}, "set", "ui.theme", "light"},
		{"set multiword", []string{"config", "set", "export.output_dir", "/tmp/my exports"}, "set", "export.output_dir", "/tmp/my exports"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, args := Parse(tt.argv)
			if args.Subcommand != tt.sub || args.ConfigKey != tt.key || args.ConfigVal != tt.value {
				t.Errorf("got sub=%q key=%q val=%q, want sub=%q key=%q val=%q",
					args.Subcommand, args.ConfigKey, args.ConfigVal, tt.sub, tt.key, tt.value)
			}
		})
	}
}

func TestParseIngestFile(t *testing.T) {
	_, args := Parse([]string{"ingest", "profiles.nc"})
	if args.File != "profiles.nc" {
		t.Errorf("file = %q", args.File)
	}
}

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"show", "--lines", "50", "--since=2024-01-01", "--json", "extra"})

	if p.Subcommand() != "show" {
		t.Errorf("subcommand = %q", p.Subcommand())
	}
	if p.Flag("lines") != "50" {
		t.Errorf("lines = %q", p.Flag("lines"))
	}
	if p.Flag("since") != "2024-01-01" {
		t.Errorf("since = %q", p.Flag("since"))
	}
	if !p.BoolFlag("json") {
		t.Error("json flag not set")
	}
	if p.Positional(1) != "extra" {
		t.Errorf("positional 1 = %q", p.Positional(1))
	}
	if p.Positional(9) != "" {
		t.Error("out-of-range positional should be empty")
	}
}

func TestArgParserExplicitBool(t *testing.T) {
	p := NewArgParser([]string{"--json=false", "--quiet=true"})
	if p.BoolFlag("json") {
		t.Error("--json=false should read as false")
	}
	if !p.BoolFlag("quiet") {
		t.Error("--quiet=true should read as true")
	}
}

func TestArgParserFlagOrDefault(t *testing.T) {
	p := NewArgParser([]string{"--limit", "10"})
	if got := p.FlagOrDefault("limit", "25"); got != "10" {
		t.Errorf("limit = %q", got)
	}
	if got := p.FlagOrDefault("missing", "25"); got != "25" {
		t.Errorf("missing = %q, want default", got)
	}
}
