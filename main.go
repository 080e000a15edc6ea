// FloatChat TUI - a terminal dashboard for ARGO ocean float data.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/cli"
	"github.com/floatchat/floatchat-tui/internal/config"
	"github.com/floatchat/floatchat-tui/internal/history"
	"github.com/floatchat/floatchat-tui/internal/storage"
	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	cmd, args := cli.Parse(os.Args[1:])

	switch cmd {
	case cli.CmdTUI:
		err = runTUI(cfg, args)

	case cli.CmdAsk:
		err = cli.HandleAsk(args)

	case cli.CmdRepl:
		err = cli.HandleRepl(args)

	case cli.CmdStatus:
		err = cli.HandleStatus(args)

	case cli.CmdConfig:
		err = cli.HandleConfig(args)

	case cli.CmdIngest:
		err = cli.HandleIngest(args)

	case cli.CmdVersion:
		cli.PrintVersion()

	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the full-screen dashboard. Session and history stores
// are best effort; the TUI runs without them when they fail to open.
func runTUI(cfg *config.Config, args cli.Args) error {
	baseURL := cfg.API.BaseURL
	if args.Backend != "" {
		baseURL = args.Backend
	}
	client, err := api.NewClient(&api.ClientConfig{
		BaseURL:         baseURL,
		Timeout:         time.Duration(cfg.API.TimeoutSecs) * time.Second,
		SuggestInterval: time.Duration(cfg.API.SuggestIntervalSecs) * time.Second,
		SuggestBurst:    cfg.API.SuggestBurst,
	})
	if err != nil {
		return fmt.Errorf("backend not configured: %w (set api.base_url or FLOATCHAT_API_URL)", err)
	}

	var sessions *storage.SessionStore
	if store, err := storage.NewSessionStore(); err == nil {
		sessions = store
	}

	var hist *history.Store
	if cfg.History.Enabled {
		if path, err := history.DefaultPath(); err == nil {
			if store, err := history.Open(path); err == nil {
				hist = store
				defer hist.Close()
			}
		}
	}

	if os.Getenv("FLOATCHAT_DEBUG") != "" {
		if f, err := tea.LogToFile("floatchat-debug.log", "debug"); err == nil {
			defer f.Close()
		}
	}

	app := NewApp(styles.NewTheme(), cfg, client, sessions, hist)
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}
