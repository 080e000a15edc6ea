// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the FloatChat TUI.

Each component is a small, self-contained renderer used by the tab models:

  - Header: title bar with Chat/Map/Profiles/Floats tab navigation
  - StatusBar: bottom bar showing backend connectivity, float counts,
    selection, active chart kind, and keyboard shortcuts
  - Welcome: first-run banner with demo queries
  - Spinner: loading indicators for queries, catalog fetches, and ingest
  - ErrorDisplay: error box with remediation suggestions; SmartErrorFromError
    maps typed API client errors to actionable fixes
  - CodeBlock / RenderSQL: chroma-highlighted code blocks for generated SQL
  - CompletionPopup: slash-command completion candidates

Components take their colors from the styles package and render with
Lip Gloss. They hold no application state beyond what their setters
receive; the tab models own all state.
*/
package components
