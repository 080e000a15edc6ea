// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
//
// # Key Types
//
//   - Conversation: append-only container for a chat session
//   - ChatTurn: single transcript entry with role, content, and optional
//     query-result payload
//   - Role: turn role enumeration (user, bot)
//
// Turn IDs are monotonically increasing and collision-free even for turns
// created within the same clock tick, because the generator combines a
// wall-clock seed with an atomic counter.
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.AddUserTurn("show me all active floats")
//	conv.AddBotTurn(summaryText, result, "show me all active floats")
package model
