// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the TUI.
package commands

import (
	"fmt"
	"strings"
	"unicode"
)

// =============================================================================
// PARSER
// =============================================================================

// ParseResult is the outcome of parsing one line of chat input.
type ParseResult struct {
	// IsCommand is true when the input starts with /
	IsCommand bool

	// Command is the resolved command, nil when the name matched nothing.
	Command *Command

	// CommandName is the typed name, including the leading slash.
	CommandName string

	// Args are the tokenized arguments after the name.
	Args []string
}

// Parser resolves slash input against a command registry.
type Parser struct {
	registry *Registry
}

// NewParser creates a parser backed by the given registry.
func NewParser(registry *Registry) *Parser {
	return &Parser{registry: registry}
}

// Parse splits input into a command name and arguments and resolves the
// name through the registry. Input without a leading slash is a natural
// language query and comes back with IsCommand=false.
func (p *Parser) Parse(input string) ParseResult {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return ParseResult{}
	}

	result := ParseResult{IsCommand: true}
	parts := tokenize(input)
	if len(parts) == 0 {
		return result
	}

	result.CommandName = parts[0]
	result.Args = parts[1:]
	result.Command = p.registry.Get(result.CommandName)
	return result
}

// tokenize splits on whitespace, keeping double-quoted spans as single
// tokens so names like /save "indian ocean survey" survive intact.
// Quotes are stripped from the token.
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuote = !inQuote
		case unicode.IsSpace(r) && !inQuote:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// =============================================================================
// INPUT INSPECTION
// =============================================================================

// IsCommand reports whether the input should go to the command dispatcher
// instead of the query pipeline.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}

// ExtractCommandName returns the leading /name of the input, or "".
func ExtractCommandName(input string) string {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return ""
	}
	if end := strings.IndexFunc(input, unicode.IsSpace); end != -1 {
		return input[:end]
	}
	return input
}

// GetPartialCommand returns the command name still being typed. Once a
// space ends the name the caller should complete arguments instead.
func GetPartialCommand(input string) string {
	if !strings.HasPrefix(input, "/") {
		return ""
	}
	if strings.IndexFunc(input, unicode.IsSpace) != -1 {
		return ""
	}
	return input
}

// GetPartialArg returns the zero-based index and text of the argument
// under the cursor. Trailing whitespace means a new argument is starting.
func GetPartialArg(input string) (int, string) {
	parts := tokenize(input)
	if len(parts) <= 1 {
		return 0, ""
	}
	if strings.HasSuffix(input, " ") || strings.HasSuffix(input, `"`) {
		return len(parts) - 1, ""
	}
	return len(parts) - 2, parts[len(parts)-1]
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidateArgs checks args against the command's declared argument specs.
func ValidateArgs(cmd *Command, args []string) error {
	if cmd == nil {
		return nil
	}

	for i, spec := range cmd.Args {
		if spec.Required && i >= len(args) {
			return &ValidationError{
				Command:  cmd.Name,
				Arg:      spec.Name,
				Message:  "required argument missing",
				Expected: spec.Description,
			}
		}
		if i >= len(args) || spec.Type != ArgTypeEnum || len(spec.Values) == 0 {
			continue
		}

		valid := false
		for _, v := range spec.Values {
			if strings.EqualFold(args[i], v) {
				valid = true
				break
			}
		}
		if !valid {
			return &ValidationError{
				Command:  cmd.Name,
				Arg:      spec.Name,
				Message:  "invalid value",
				Got:      args[i],
				Expected: strings.Join(spec.Values, ", "),
			}
		}
	}
	return nil
}

// ValidationError describes an argument that failed validation.
type ValidationError struct {
	Command  string
	Arg      string
	Message  string
	Got      string
	Expected string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Command, e.Message)
	if e.Arg != "" {
		fmt.Fprintf(&b, " for argument '%s'", e.Arg)
	}
	if e.Got != "" {
		fmt.Fprintf(&b, " (got: %s)", e.Got)
	}
	if e.Expected != "" {
		fmt.Fprintf(&b, " - expected: %s", e.Expected)
	}
	return b.String()
}
