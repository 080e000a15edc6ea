// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the chat tab of the FloatChat TUI.

The chat tab is the primary surface of the dashboard: the user asks free-form
questions about ARGO floats, the backend answers with normalized query
results, and the transcript keeps the exchange.

# Key Components

## Model (model.go)

The Model struct holds the tab state:
  - Conversation transcript and the active query lifecycle
  - Input line with slash-command completion
  - Viewport for transcript scrolling
  - Markdown renderer for bot replies

## Update Loop (update.go)

Handles keys and messages:
  - Query submission with a single-in-flight guard
  - Slash-command parsing and dispatch through the registry
  - Query results, query errors, and suggestion replies
  - Clipboard copy with a transient "Copied" flash

## View Rendering (view.go)

Renders the transcript with role-specific bubbles, glamour-rendered bot
content, optional generated-SQL blocks, and the welcome screen with demo
queries when the conversation is empty.

## Messages (messages.go)

Typed Bubble Tea messages plus the tea.Cmd constructors that run backend
calls off the update loop.

Shared dashboard state (floats, selection, chart kind) is owned by the root
model; this package only reports results upward through the same messages
the root model observes.
*/
package chat
