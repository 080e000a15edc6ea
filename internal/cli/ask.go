// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - one-shot natural-language query from the command line.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/config"
	"github.com/floatchat/floatchat-tui/internal/summary"
	"github.com/floatchat/floatchat-tui/internal/ui/components"
)

// newClient builds an API client from global config, with the --backend
// flag taking precedence over the configured base URL.
func newClient(args Args) (*api.Client, error) {
	cfg := config.Global()
	clientCfg := &api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.TimeoutSecs) * time.Second,
	}
	if args.Backend != "" {
		clientCfg.BaseURL = args.Backend
	}
	return api.NewClient(clientCfg)
}

// HandleAsk runs a single question against the backend and prints the
// answer. Exit status is non-zero when the query fails.
func HandleAsk(args Args) error {
	if args.Query == "" {
		return fmt.Errorf("ask requires a question, e.g. floatchat ask \"how many floats are active\"")
	}

	client, err := newClient(args)
	if err != nil {
		return err
	}

	if args.JSON {
		return OutputJSON("ask", func() (any, error) {
			return client.Query(context.Background(), args.Query)
		})
	}

	result, err := client.Query(context.Background(), args.Query)
	if err != nil {
		printSmartError(err)
		return err
	}

	displayAnswer(summary.ShortSummary(result, args.Query))

	if (args.ShowSQL || config.Global().UI.ShowSQL) && result.SQLQuery != "" {
		fmt.Println(labelStyle.Render("Generated SQL:"))
		fmt.Println(components.RenderSQL(result.SQLQuery, GetTerminalWidth()))
	}
	return nil
}

// printSmartError prints the pattern-matched error shape the TUI uses,
// with its recovery suggestions, to stderr.
func printSmartError(err error) {
	display := components.SmartErrorFromError("Query Failed", err)
	printError(fmt.Errorf("%s: %s", display.GetTitle(), display.GetMessage()))
	for _, s := range display.GetSuggestions() {
		fmt.Println(infoStyle.Render("  - " + s))
	}
}
