// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - backend reachability and catalog summary.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/config"
)

// statusReport is the machine-readable shape of `status --json`.
type statusReport struct {
	Backend     string `json:"backend"`
	Reachable   bool   `json:"reachable"`
	Error       string `json:"error,omitempty"`
	TotalFloats int    `json:"total_floats"`
	Active      int    `json:"active_floats"`
	ConfigPath  string `json:"config_path,omitempty"`
}

// HandleStatus probes the backend and summarizes the float catalog.
func HandleStatus(args Args) error {
	client, err := newClient(args)
	if err != nil {
		if args.JSON {
			return OutputJSON("status", func() (any, error) { return nil, err })
		}
		printError(err)
		return err
	}

	report := buildStatusReport(client)

	if args.JSON {
		return OutputJSON("status", func() (any, error) { return report, nil })
	}

	fmt.Println(labelStyle.Render("floatchat status"))
	fmt.Printf("  %s %s\n", infoStyle.Render("Backend:"), report.Backend)
	if report.Reachable {
		fmt.Printf("  %s %s\n", infoStyle.Render("State:"), okStyle.Render("reachable"))
		fmt.Printf("  %s %d (%d active)\n", infoStyle.Render("Floats:"), report.TotalFloats, report.Active)
	} else {
		fmt.Printf("  %s %s\n", infoStyle.Render("State:"), errorStyle.Render("unreachable"))
		fmt.Printf("  %s %s\n", infoStyle.Render("Error:"), report.Error)
	}
	if report.ConfigPath != "" {
		fmt.Printf("  %s %s\n", infoStyle.Render("Config:"), report.ConfigPath)
	}

	if !report.Reachable {
		return fmt.Errorf("backend unreachable")
	}
	return nil
}

func buildStatusReport(client *api.Client) statusReport {
	report := statusReport{Backend: client.BaseURL()}
	if path, err := config.ConfigPath(); err == nil {
		report.ConfigPath = path
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.CheckReachable(ctx); err != nil {
		report.Error = err.Error()
		return report
	}
	report.Reachable = true

	floats, err := client.ListFloats(ctx)
	if err != nil {
		return report
	}
	report.TotalFloats = len(floats)
	for _, f := range floats {
		if f.Status == api.StatusActive {
			report.Active++
		}
	}
	return report
}
