// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the TUI.
package commands

import (
	"sort"
	"strings"
)

// =============================================================================
// COMPLETION
// =============================================================================

// Completer provides tab completion over the registry.
type Completer struct {
	registry *Registry

	// SessionIDs supplies saved session IDs for ArgTypeSession completion.
	SessionIDs func() []string
}

// NewCompleter creates a completer backed by the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Complete returns candidate completions for the current input. For a
// partial command name it completes command names and aliases; for a
// completed command it completes the argument being typed.
func (c *Completer) Complete(input string) []string {
	if !strings.HasPrefix(input, "/") {
		return nil
	}

	partial := GetPartialCommand(input)
	if partial != "" {
		return c.completeCommandNames(partial)
	}

	cmd := c.registry.Get(ExtractCommandName(input))
	if cmd == nil {
		return nil
	}

	argIndex, partialArg := GetPartialArg(input)
	return c.completeArg(cmd, argIndex, partialArg)
}

func (c *Completer) completeCommandNames(partial string) []string {
	var matches []string
	for _, cmd := range c.registry.All() {
		if cmd.Hidden {
			continue
		}
		if strings.HasPrefix(cmd.Name, partial) {
			matches = append(matches, cmd.Name)
		}
		for _, alias := range cmd.Aliases {
			if strings.HasPrefix(alias, partial) {
				matches = append(matches, alias)
			}
		}
	}
	sort.Strings(matches)
	return matches
}

func (c *Completer) completeArg(cmd *Command, argIndex int, partial string) []string {
	if argIndex >= len(cmd.Args) {
		return nil
	}
	arg := cmd.Args[argIndex]

	var candidates []string
	switch arg.Type {
	case ArgTypeEnum:
		candidates = arg.Values
	case ArgTypeSession:
		if c.SessionIDs != nil {
			candidates = c.SessionIDs()
		}
	default:
		return nil
	}

	var matches []string
	for _, v := range candidates {
		if strings.HasPrefix(v, partial) {
			matches = append(matches, v)
		}
	}
	sort.Strings(matches)
	return matches
}
