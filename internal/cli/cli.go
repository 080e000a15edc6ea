// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - argument parsing and dispatch for the floatchat binary.
package cli

import (
	"fmt"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdRepl
	CmdStatus
	CmdConfig
	CmdIngest
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	JSON    bool   // machine-readable output
	Backend string // --backend overrides the configured base URL

	// Command-specific
	Query      string // joined free text for ask
	File       string // NetCDF path for ingest
	Subcommand string // config subcommand (show/get/set/path)
	ConfigKey  string
	ConfigVal  string
	ShowSQL    bool // print generated SQL alongside results

	// Raw args remaining after the command word
	Raw []string
}

const usageText = `floatchat - conversational dashboard for ARGO ocean float data

Floatchat talks to a FloatChat backend and turns natural-language
questions into SQL over the ARGO float catalog.

Usage:
  floatchat                    Start the TUI (default)
  floatchat ask "question"     Ask a single question and print the answer
  floatchat repl               Line-mode REPL (no alternate screen)
  floatchat status, s          Backend reachability and catalog summary
  floatchat config [show|get|set|path]
                               Configuration management
  floatchat ingest <file.nc>   Upload a NetCDF profile file
  floatchat version, -v        Version information
  floatchat help, -h           This help

Flags:
  --backend URL   Override the configured backend base URL
  --json          Machine-readable JSON output
  --sql           Include the generated SQL with results (ask, repl)
  --quiet, -q     Suppress informational output

Examples:
  floatchat ask "average salinity near the equator in March 2024"
  floatchat ask --sql "deepest profile per float in the Arabian Sea"
  floatchat status --json | jq .data.reachable
  floatchat ingest data/argo_profiles_2024_03.nc

Configuration lives in ~/.floatchat/config.toml. The backend URL can
also be set with the FLOATCHAT_API_URL environment variable.

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("floatchat version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments (without the program name) and
// returns the command and its args.
func Parse(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "ask":
		parseAskArgs(&args, remaining)
		return CmdAsk, args

	case "repl", "chat":
		return CmdRepl, args

	case "status", "s":
		return CmdStatus, args

	case "config":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args

	case "ingest":
		if len(remaining) > 0 {
			args.File = remaining[0]
		}
		return CmdIngest, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		// An unknown first word is treated as a question, so
		// `floatchat how many floats are active` just works.
		args.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, args
	}
}

// parseGlobalFlags strips flags that apply to every command and returns
// the remaining arguments.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	remaining := make([]string, 0, len(argv))

	i := 0
	for i < len(argv) {
		switch argv[i] {
		case "--quiet", "-q":
			args.Quiet = true
		case "--json":
			args.JSON = true
		case "--sql":
			args.ShowSQL = true
		case "--backend":
			if i+1 < len(argv) {
				args.Backend = argv[i+1]
				i++
			}
		default:
			if v, ok := strings.CutPrefix(argv[i], "--backend="); ok {
				args.Backend = v
			} else {
				remaining = append(remaining, argv[i])
			}
		}
		i++
	}

	return remaining, args
}

// parseAskArgs joins everything that is not a flag into the query text.
func parseAskArgs(args *Args, remaining []string) {
	words := make([]string, 0, len(remaining))
	for _, arg := range remaining {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		words = append(words, arg)
	}
	args.Query = strings.Join(words, " ")
}

// parseConfigArgs reads the config subcommand and its key/value.
func parseConfigArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Subcommand = parser.Subcommand()
	if args.Subcommand == "" {
		args.Subcommand = "show"
	}
	args.ConfigKey = parser.Positional(1)
	args.ConfigVal = strings.Join(parser.PositionalFrom(2), " ")
}
