// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"reflect"
	"testing"

	"github.com/floatchat/floatchat-tui/internal/chart"
)

// =============================================================================
// PARSER TESTS
// =============================================================================

func TestParse_PlainInputIsNotCommand(t *testing.T) {
	p := NewParser(NewRegistry())
	result := p.Parse("show me active floats")
	if result.IsCommand {
		t.Error("plain text should not parse as a command")
	}
}

func TestParse_CommandWithArgs(t *testing.T) {
	p := NewParser(NewRegistry())
	result := p.Parse("/chart salinity")

	if !result.IsCommand {
		t.Fatal("expected command")
	}
	if result.CommandName != "/chart" {
		t.Errorf("CommandName = %q", result.CommandName)
	}
	if result.Command == nil || result.Command.Name != "/chart" {
		t.Errorf("command lookup failed: %+v", result.Command)
	}
	if !reflect.DeepEqual(result.Args, []string{"salinity"}) {
		t.Errorf("Args = %v", result.Args)
	}
}

func TestParse_QuotedArgs(t *testing.T) {
	p := NewParser(NewRegistry())
	result := p.Parse(`/save "indian ocean survey"`)

	if !reflect.DeepEqual(result.Args, []string{"indian ocean survey"}) {
		t.Errorf("Args = %v", result.Args)
	}
}

func TestParse_CollapsesRepeatedSpaces(t *testing.T) {
	p := NewParser(NewRegistry())
	result := p.Parse("/chart   salinity")
	if !reflect.DeepEqual(result.Args, []string{"salinity"}) {
		t.Errorf("Args = %v", result.Args)
	}
}

func TestGetPartialArg(t *testing.T) {
	tests := []struct {
		input     string
		wantIndex int
		wantText  string
	}{
		{"/chart te", 0, "te"},
		{"/chart salinity ", 1, ""},
		{"/load sess_a", 0, "sess_a"},
		{"/load", 0, ""},
	}
	for _, tc := range tests {
		idx, text := GetPartialArg(tc.input)
		if idx != tc.wantIndex || text != tc.wantText {
			t.Errorf("GetPartialArg(%q) = (%d, %q), want (%d, %q)",
				tc.input, idx, text, tc.wantIndex, tc.wantText)
		}
	}
}

func TestParse_AliasResolves(t *testing.T) {
	p := NewParser(NewRegistry())
	result := p.Parse("/r")
	if result.Command == nil || result.Command.Name != "/retry" {
		t.Errorf("alias /r should resolve to /retry, got %+v", result.Command)
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	p := NewParser(NewRegistry())
	result := p.Parse("/frobnicate")
	if !result.IsCommand {
		t.Error("should still be recognized as command syntax")
	}
	if result.Command != nil {
		t.Error("unknown command should not resolve")
	}
}

// =============================================================================
// HANDLER TESTS
// =============================================================================

func runHandler(t *testing.T, input string) interface{} {
	t.Helper()
	p := NewParser(NewRegistry())
	result := p.Parse(input)
	if result.Command == nil {
		t.Fatalf("command %q not found", input)
	}
	cmd := result.Command.Handler(&Context{}, result.Args)
	if cmd == nil {
		t.Fatalf("handler for %q returned nil", input)
	}
	return cmd()
}

func TestHandleChart_ValidKind(t *testing.T) {
	msg := runHandler(t, "/chart distribution")
	set, ok := msg.(SetChartMsg)
	if !ok {
		t.Fatalf("expected SetChartMsg, got %T", msg)
	}
	if set.Kind != chart.KindDistribution {
		t.Errorf("Kind = %v", set.Kind)
	}
}

func TestHandleChart_UnknownKind(t *testing.T) {
	msg := runHandler(t, "/chart pressure")
	if _, ok := msg.(CommandErrorMsg); !ok {
		t.Fatalf("expected CommandErrorMsg, got %T", msg)
	}
}

func TestHandleSave_JoinsName(t *testing.T) {
	msg := runHandler(t, "/save monsoon study")
	save, ok := msg.(SaveSessionMsg)
	if !ok {
		t.Fatalf("expected SaveSessionMsg, got %T", msg)
	}
	if save.Name != "monsoon study" {
		t.Errorf("Name = %q", save.Name)
	}
}

func TestHandleLoad_RequiresID(t *testing.T) {
	msg := runHandler(t, "/load")
	if _, ok := msg.(CommandErrorMsg); !ok {
		t.Fatalf("expected CommandErrorMsg, got %T", msg)
	}
}

func TestSimpleHandlers_EmitExpectedMessages(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"/help", ShowHelpMsg{}},
		{"/new", NewSessionMsg{}},
		{"/clear", ClearConversationMsg{}},
		{"/retry", RetryQueryMsg{}},
		{"/export", ExportResultMsg{}},
		{"/explain", ExplainResultMsg{}},
		{"/refresh", RefreshFloatsMsg{}},
		{"/sql", ShowSQLMsg{}},
		{"/status", ShowStatusMsg{}},
	}
	for _, tc := range tests {
		msg := runHandler(t, tc.input)
		if reflect.TypeOf(msg) != reflect.TypeOf(tc.want) {
			t.Errorf("%s emitted %T, want %T", tc.input, msg, tc.want)
		}
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidateArgs_MissingRequired(t *testing.T) {
	registry := NewRegistry()
	cmd := registry.Get("/chart")

	if err := ValidateArgs(cmd, nil); err == nil {
		t.Error("expected error for missing required argument")
	}
	if err := ValidateArgs(cmd, []string{"temperature"}); err != nil {
		t.Errorf("valid args rejected: %v", err)
	}
	if err := ValidateArgs(cmd, []string{"pressure"}); err == nil {
		t.Error("expected error for invalid enum value")
	}
}

// =============================================================================
// COMPLETION TESTS
// =============================================================================

func TestComplete_CommandNames(t *testing.T) {
	c := NewCompleter(NewRegistry())

	matches := c.Complete("/s")
	wantSome := map[string]bool{"/save": false, "/sessions": false, "/sql": false}
	for _, m := range matches {
		if _, ok := wantSome[m]; ok {
			wantSome[m] = true
		}
	}
	for name, found := range wantSome {
		if !found {
			t.Errorf("expected %s in completions, got %v", name, matches)
		}
	}
}

func TestComplete_EnumArg(t *testing.T) {
	c := NewCompleter(NewRegistry())

	matches := c.Complete("/chart te")
	if !reflect.DeepEqual(matches, []string{"temperature"}) {
		t.Errorf("Complete(/chart te) = %v", matches)
	}
}

func TestComplete_SessionArg(t *testing.T) {
	c := NewCompleter(NewRegistry())
	c.SessionIDs = func() []string { return []string{"sess_abc", "sess_def"} }

	matches := c.Complete("/load sess_a")
	if !reflect.DeepEqual(matches, []string{"sess_abc"}) {
		t.Errorf("Complete(/load sess_a) = %v", matches)
	}
}

func TestComplete_NonCommand(t *testing.T) {
	c := NewCompleter(NewRegistry())
	if matches := c.Complete("hello"); matches != nil {
		t.Errorf("non-command input should not complete, got %v", matches)
	}
}
