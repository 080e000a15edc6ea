// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements the non-TUI command surface of floatchat.

The binary defaults to the full-screen TUI; everything else lives here:

	floatchat ask "question"   one-shot natural-language query
	floatchat repl             line-mode REPL for narrow terminals and ssh
	floatchat status           backend reachability and catalog summary
	floatchat config           show, get, and set configuration values
	floatchat ingest <file>    upload a NetCDF profile file
	floatchat version          version information

Output adapts to the terminal: markdown rendering and color only when
stdout is a TTY, plain text when piped, and JSON with --json so the
commands compose in scripts.
*/
package cli
