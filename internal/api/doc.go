// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the FloatChat backend API.
//
// The backend owns everything hard: natural-language-to-query translation,
// storage, and NetCDF parsing. This package only speaks its JSON contract
// and normalizes every failure mode into a ClientError that the UI can turn
// into a user-visible message.
//
// # Key Types
//
//   - Client: HTTP client for the backend endpoints
//   - FloatRecord: one catalog float, with boundary-coerced coordinates
//   - ProfileRecord: one depth-indexed measurement level
//   - QueryResult: normalized natural-language query output
//   - ClientError: categorized error (connection, timeout, backend, format, config)
//
// # Usage
//
//	client, err := api.NewClient(&api.ClientConfig{BaseURL: "http://localhost:8000"})
//	if err != nil {
//	    // ErrNoBaseURL: configuration problem, show it to the user
//	}
//	floats, err := client.ListFloats(ctx)
//	result, err := client.Query(ctx, "show me all active floats")
//
// All endpoints share the {success, data, message} envelope; a response with
// success=false becomes a ClientError of type ErrTypeBackend carrying the
// backend's message.
package api
