// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the TUI.
package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/chart"
	"github.com/floatchat/floatchat-tui/internal/config"
	"github.com/floatchat/floatchat-tui/internal/history"
	"github.com/floatchat/floatchat-tui/internal/model"
	"github.com/floatchat/floatchat-tui/internal/storage"
	"github.com/floatchat/floatchat-tui/internal/viewstate"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command represents a slash command that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "/help")
	Name string

	// Aliases are alternative names (e.g., "/h", "/?")
	Aliases []string

	// Description is shown in help and completion
	Description string

	// Usage shows argument syntax (e.g., "/chart <kind>")
	Usage string

	// Args defines the expected arguments
	Args []ArgDef

	// Handler is the function that executes the command
	Handler func(ctx *Context, args []string) tea.Cmd

	// Hidden commands don't appear in help
	Hidden bool

	// Category for grouping in help display
	Category string
}

// ArgDef defines an argument for a command.
type ArgDef struct {
	// Name of the argument
	Name string

	// Required indicates if the argument must be provided
	Required bool

	// Type determines completion behavior
	Type ArgType

	// Description explains the argument
	Description string

	// Values for enum types
	Values []string
}

// ArgType indicates what kind of completion to provide.
type ArgType int

const (
	ArgTypeString  ArgType = iota // Free-form string
	ArgTypeSession                // Session ID from saved sessions
	ArgTypeEnum                   // One of predefined values
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Context provides access to application state for command handlers.
type Context struct {
	// Config provides access to application configuration
	Config *config.Config

	// Client talks to the backend API
	Client *api.Client

	// Conversation is the active chat conversation
	Conversation *model.Conversation

	// State is the shared dashboard view state
	State *viewstate.State

	// Sessions handles session persistence
	Sessions *storage.SessionStore

	// History records submitted queries
	History *history.Store
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewRegistry creates a new command registry with all built-in commands.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd
	}
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(name string) *Command {
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns all registered commands.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	return cmds
}

// ByCategory returns commands grouped by category.
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.commands {
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func chartKindValues() []string {
	values := make([]string, 0, len(chart.Kinds))
	for _, k := range chart.Kinds {
		values = append(values, string(k))
	}
	return values
}

func (r *Registry) registerBuiltins() {
	// Navigation commands
	r.Register(&Command{
		Name:        "/help",
		Aliases:     []string{"/h", "/?"},
		Description: "Show help and available commands",
		Category:    "Navigation",
		Handler:     handleHelp,
	})

	r.Register(&Command{
		Name:        "/quit",
		Aliases:     []string{"/q", "/exit"},
		Description: "Exit floatchat",
		Category:    "Navigation",
		Handler:     handleQuit,
	})

	// Conversation commands
	r.Register(&Command{
		Name:        "/new",
		Aliases:     []string{"/n"},
		Description: "Start a new session",
		Category:    "Conversation",
		Handler:     handleNew,
	})

	r.Register(&Command{
		Name:        "/save",
		Aliases:     []string{"/s"},
		Description: "Save current session",
		Usage:       "/save [name]",
		Args: []ArgDef{
			{Name: "name", Required: false, Type: ArgTypeString, Description: "Optional name for the session"},
		},
		Category: "Conversation",
		Handler:  handleSave,
	})

	r.Register(&Command{
		Name:        "/sessions",
		Aliases:     []string{"/ls"},
		Description: "List saved sessions",
		Category:    "Conversation",
		Handler:     handleSessions,
	})

	r.Register(&Command{
		Name:        "/load",
		Description: "Load a saved session",
		Usage:       "/load <id>",
		Args: []ArgDef{
			{Name: "id", Required: true, Type: ArgTypeSession, Description: "Session ID to load"},
		},
		Category: "Conversation",
		Handler:  handleLoad,
	})

	r.Register(&Command{
		Name:        "/clear",
		Description: "Clear the current conversation",
		Category:    "Conversation",
		Handler:     handleClear,
	})

	r.Register(&Command{
		Name:        "/retry",
		Aliases:     []string{"/r"},
		Description: "Re-run the last query",
		Category:    "Conversation",
		Handler:     handleRetry,
	})

	r.Register(&Command{
		Name:        "/copy",
		Description: "Copy the last reply to the clipboard",
		Category:    "Conversation",
		Handler:     handleCopy,
	})

	// Data commands
	r.Register(&Command{
		Name:        "/export",
		Aliases:     []string{"/e"},
		Description: "Export the last query results to CSV",
		Category:    "Data",
		Handler:     handleExport,
	})

	r.Register(&Command{
		Name:        "/transcript",
		Description: "Export the conversation transcript to Markdown",
		Category:    "Data",
		Handler:     handleTranscript,
	})

	r.Register(&Command{
		Name:        "/explain",
		Description: "Summarize the last query results",
		Category:    "Data",
		Handler:     handleExplain,
	})

	r.Register(&Command{
		Name:        "/suggest",
		Description: "Ask the backend for follow-up query suggestions",
		Category:    "Data",
		Handler:     handleSuggest,
	})

	r.Register(&Command{
		Name:        "/refresh",
		Description: "Reload the float catalog from the backend",
		Category:    "Data",
		Handler:     handleRefresh,
	})

	r.Register(&Command{
		Name:        "/sql",
		Description: "Show the SQL behind the last result",
		Category:    "Data",
		Handler:     handleSQL,
	})

	// View commands
	r.Register(&Command{
		Name:        "/chart",
		Description: "Switch the chart panel mode",
		Usage:       "/chart <kind>",
		Args: []ArgDef{
			{
				Name:        "kind",
				Required:    true,
				Type:        ArgTypeEnum,
				Values:      chartKindValues(),
				Description: "Chart kind",
			},
		},
		Category: "View",
		Handler:  handleChart,
	})

	r.Register(&Command{
		Name:        "/status",
		Description: "Show backend connection status",
		Category:    "View",
		Handler:     handleStatus,
	})
}
