// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the TUI.
//
// Commands start with "/" and are parsed out of the chat input before it is
// sent to the backend. Each handler translates the parsed command into a
// typed tea.Msg; the root model reacts to the message and mutates state.
//
// # Key Types
//
//   - Command: a registered slash command with args and a handler
//   - Registry: name and alias lookup for all built-in commands
//   - Parser: splits input into command name and quoted arguments
//   - Completer: tab completion for command names and enum arguments
//
// # Usage
//
//	registry := commands.NewRegistry()
//	parser := commands.NewParser(registry)
//
//	result := parser.Parse("/chart salinity")
//	if result.IsCommand && result.Command != nil {
//		cmd := result.Command.Handler(ctx, result.Args)
//		// dispatch cmd through Bubble Tea
//	}
package commands
