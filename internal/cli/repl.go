// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - line-mode REPL for narrow terminals, ssh sessions, and
// anyone who prefers readline over the alternate screen.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/config"
	"github.com/floatchat/floatchat-tui/internal/history"
	"github.com/floatchat/floatchat-tui/internal/summary"
	"github.com/floatchat/floatchat-tui/internal/ui/components"
)

// =============================================================================
// INPUT
// =============================================================================

// replInput wraps liner with persistent history in the config directory.
type replInput struct {
	line        *liner.State
	historyFile string
}

func newReplInput() *replInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	input := &replInput{
		line:        line,
		historyFile: filepath.Join(configDir, "repl_history"),
	}
	if f, err := os.Open(input.historyFile); err == nil {
		input.line.ReadHistory(f)
		f.Close()
	}
	return input
}

func (r *replInput) read(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

func (r *replInput) close() {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			r.line.WriteHistory(f)
			f.Close()
		}
	}
	r.line.Close()
}

// =============================================================================
// SESSION
// =============================================================================

// replSession holds the state for one REPL run.
type replSession struct {
	client     *api.Client
	input      *replInput
	hist       *history.Store
	lastResult *api.QueryResult
	lastQuery  string
	showSQL    bool
	started    time.Time
	queries    int
}

// HandleRepl runs the interactive line-mode loop until EOF, Ctrl+C, or
// /quit.
func HandleRepl(args Args) error {
	client, err := newClient(args)
	if err != nil {
		return err
	}

	session := &replSession{
		client:  client,
		input:   newReplInput(),
		showSQL: args.ShowSQL || config.Global().UI.ShowSQL,
		started: time.Now(),
	}
	defer session.input.close()

	if config.Global().History.Enabled {
		if path, err := history.DefaultPath(); err == nil {
			if store, err := history.Open(path); err == nil {
				session.hist = store
				defer store.Close()
			}
		}
	}

	if !args.Quiet {
		fmt.Println(labelStyle.Render("floatchat " + Version))
		fmt.Println(infoStyle.Render("Ask about ARGO floats in plain language. /help lists commands, /quit exits."))
		fmt.Println()
	}

	for {
		input, err := session.input.read(promptStyle.Render("floatchat> "))
		if err != nil {
			// Ctrl+C aborts the prompt, Ctrl+D is EOF; both end the
			// session cleanly.
			if !errors.Is(err, liner.ErrPromptAborted) && !errors.Is(err, liner.ErrNotTerminalOutput) {
				fmt.Println()
			}
			session.printSummary()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if done := session.handleCommand(input); done {
				session.printSummary()
				return nil
			}
			continue
		}

		session.runQuery(input)
	}
}

func (s *replSession) runQuery(query string) {
	result, err := s.client.Query(context.Background(), query)
	s.queries++

	if s.hist != nil {
		entry := history.Entry{Query: query, Succeeded: err == nil}
		if err != nil {
			entry.ErrorMessage = err.Error()
		} else {
			entry.SQLQuery = result.SQLQuery
			entry.ResultCount = result.Count
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, _ = s.hist.Record(ctx, entry)
		cancel()
	}

	if err != nil {
		printSmartError(err)
		return
	}

	s.lastResult = result
	s.lastQuery = query
	displayAnswer(summary.ShortSummary(result, query))

	if s.showSQL && result.SQLQuery != "" {
		fmt.Println(components.RenderSQL(result.SQLQuery, GetTerminalWidth()))
	}
}

// handleCommand dispatches a slash command and reports whether the
// session should end.
func (s *replSession) handleCommand(input string) bool {
	parts := strings.Fields(input)
	switch parts[0] {
	case "/quit", "/exit", "/q":
		return true

	case "/help":
		fmt.Println(infoStyle.Render(`  /sql       show the SQL behind the last answer
  /explain   statistical digest of the last result
  /suggest   related questions for a topic
  /retry     re-run the last question
  /help      this list
  /quit      exit`))

	case "/sql":
		if s.lastResult == nil || s.lastResult.SQLQuery == "" {
			printError(errors.New("no SQL yet; run a query first"))
			break
		}
		fmt.Println(components.RenderSQL(s.lastResult.SQLQuery, GetTerminalWidth()))

	case "/explain":
		if s.lastResult == nil {
			printError(errors.New("nothing to explain yet; run a query first"))
			break
		}
		displayAnswer(summary.InsightDigest(s.lastResult))

	case "/suggest":
		topic := strings.Join(parts[1:], " ")
		if topic == "" {
			topic = s.lastQuery
		}
		if topic == "" {
			printError(errors.New("usage: /suggest <topic>"))
			break
		}
		suggestions, err := s.client.Suggest(context.Background(), topic)
		if err != nil {
			printSmartError(err)
			break
		}
		for _, sug := range suggestions {
			fmt.Println(infoStyle.Render("  - " + sug))
		}

	case "/retry":
		if s.lastQuery == "" {
			printError(errors.New("no query to retry yet"))
			break
		}
		s.runQuery(s.lastQuery)

	default:
		printError(fmt.Errorf("unknown command %s; /help lists commands", parts[0]))
	}
	return false
}

func (s *replSession) printSummary() {
	if s.queries == 0 {
		return
	}
	elapsed := time.Since(s.started).Round(time.Second)
	fmt.Println(infoStyle.Render(fmt.Sprintf("%d queries in %s", s.queries, elapsed)))
}
