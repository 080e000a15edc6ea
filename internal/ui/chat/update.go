// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat tab of the FloatChat TUI.
package chat

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatchat/floatchat-tui/internal/commands"
	"github.com/floatchat/floatchat-tui/internal/model"
	"github.com/floatchat/floatchat-tui/internal/summary"
	"github.com/floatchat/floatchat-tui/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles keys and messages for the chat tab. The root model forwards
// every message here; key messages only arrive while this tab is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case QueryResultMsg:
		return m.handleQueryResult(msg)

	case QueryErrorMsg:
		return m.handleQueryError(msg)

	case SuggestResultMsg:
		return m.handleSuggestResult(msg)

	case CopyDoneMsg:
		if msg.Err != nil {
			return m, m.setFlash("Copy failed: " + msg.Err.Error())
		}
		m.copiedID = msg.TurnID
		m.refreshTranscript()
		return m, m.setFlash("Copied")

	case FlashExpiredMsg:
		if msg.At.Equal(m.flashAt) {
			m.flash = ""
			m.copiedID = 0
			m.refreshTranscript()
		}
		return m, nil

	case commands.ShowHelpMsg:
		m.AddBotNote(m.helpText())
		return m, nil

	case commands.NewSessionMsg, commands.ClearConversationMsg:
		m.ResetConversation()
		return m, nil

	case commands.RetryQueryMsg:
		return m.handleRetry()

	case commands.CopyLastReplyMsg:
		return m.handleCopyLastReply()

	case commands.ExplainResultMsg:
		return m.handleExplain()

	case commands.ShowSQLMsg:
		return m.handleShowSQL()

	case commands.SuggestQueriesMsg:
		return m.handleSuggestRequest(msg)

	case commands.CommandErrorMsg:
		m.AddErrorNote(msg.Message)
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.spinner, cmd = m.spinner.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleSubmit()

	case "tab":
		if m.completion.HasCandidates() {
			m.acceptCompletion()
			return m, nil
		}

	case "up":
		if m.completion.HasCandidates() {
			m.completion.Prev()
			return m, nil
		}
		m.viewport.LineUp(1)
		return m, nil

	case "down":
		if m.completion.HasCandidates() {
			m.completion.Next()
			return m, nil
		}
		m.viewport.LineDown(1)
		return m, nil

	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil

	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil

	case "esc":
		if m.completion.HasCandidates() {
			m.completion.Clear()
			return m, nil
		}
		m.input.Reset()
		return m, nil

	case "1", "2", "3", "4":
		// Demo query shortcuts, only from the welcome screen.
		if m.conversation.IsEmpty() && m.input.Value() == "" {
			idx := int(msg.String()[0] - '1')
			queries := components.DefaultDemoQueries
			if m.cfg != nil && !m.cfg.UI.DemoQueries {
				queries = nil
			}
			if idx < len(queries) {
				m.input.SetValue(queries[idx])
				m.input.CursorEnd()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshCompletion()
	return m, cmd
}

// handleSubmit dispatches the input line: slash commands go through the
// registry, everything else is a query for the backend.
func (m Model) handleSubmit() (Model, tea.Cmd) {
	if m.completion.HasCandidates() {
		m.acceptCompletion()
		return m, nil
	}

	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return m, nil
	}

	if commands.IsCommand(value) {
		return m.dispatchCommand(value)
	}
	return m.submitQuery(value)
}

func (m Model) dispatchCommand(value string) (Model, tea.Cmd) {
	m.input.Reset()
	m.completion.Clear()

	result := m.parser.Parse(value)
	if result.Command == nil {
		m.AddErrorNote("Unknown command " + result.CommandName + ". Type /help to list commands.")
		return m, nil
	}
	if err := commands.ValidateArgs(result.Command, result.Args); err != nil {
		m.AddErrorNote(err.Error())
		return m, nil
	}
	return m, result.Command.Handler(m.cmdCtx, result.Args)
}

// submitQuery starts a backend query. Only one runs at a time; a second
// submission while one is in flight is refused with a flash, not queued.
func (m Model) submitQuery(query string) (Model, tea.Cmd) {
	if m.state == StateQuerying {
		return m, m.setFlash("A query is already running")
	}

	m.input.Reset()
	m.completion.Clear()

	m.conversation.AddUserTurn(query)
	m.state = StateQuerying
	m.refreshTranscript()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		m.spinner.Start(),
		QueryCmd(m.client, query),
	)
}

// acceptCompletion merges the selected candidate into the input. Command
// name candidates replace the whole line; argument candidates replace only
// the word being typed.
func (m *Model) acceptCompletion() {
	selected := m.completion.Selected()
	if selected == "" {
		return
	}

	value := selected
	if !strings.HasPrefix(selected, "/") {
		current := m.input.Value()
		if idx := strings.LastIndex(current, " "); idx >= 0 {
			value = current[:idx+1] + selected
		}
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.completion.Clear()
}

// refreshCompletion recomputes the popup from the current input value.
func (m *Model) refreshCompletion() {
	value := m.input.Value()
	if !strings.HasPrefix(value, "/") {
		m.completion.Clear()
		return
	}
	m.completion.SetCandidates(m.completer.Complete(value))
}

// =============================================================================
// QUERY LIFECYCLE
// =============================================================================

func (m Model) handleQueryResult(msg QueryResultMsg) (Model, tea.Cmd) {
	m.state = StateReady
	m.spinner.Stop()

	content := summary.ShortSummary(msg.Result, msg.Query)
	m.conversation.AddBotTurn(content, msg.Result, msg.Query)
	m.refreshTranscript()
	m.viewport.GotoBottom()
	return m, nil
}

func (m Model) handleQueryError(msg QueryErrorMsg) (Model, tea.Cmd) {
	m.state = StateReady
	m.spinner.Stop()

	m.conversation.AddErrorTurn(formatQueryError(msg.Err), msg.Query)
	m.refreshTranscript()
	m.viewport.GotoBottom()
	return m, nil
}

// formatQueryError produces the fixed-shape error turn: title, message, and
// remediation bullets from the pattern matcher.
func formatQueryError(err error) string {
	disp := components.SmartErrorFromError("Query Failed", err)

	var sb strings.Builder
	sb.WriteString(disp.GetTitle())
	sb.WriteString("\n")
	sb.WriteString(disp.GetMessage())

	if suggestions := disp.GetSuggestions(); len(suggestions) > 0 {
		sb.WriteString("\n\nTry:")
		for _, s := range suggestions {
			sb.WriteString("\n- ")
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// =============================================================================
// COMMAND OUTCOMES
// =============================================================================

func (m Model) handleRetry() (Model, tea.Cmd) {
	query := m.conversation.LastUserQuery()
	if query == "" {
		m.AddErrorNote("Nothing to retry yet. Ask a question first.")
		return m, nil
	}
	return m.submitQuery(query)
}

func (m Model) handleCopyLastReply() (Model, tea.Cmd) {
	turn := lastBotReply(m.conversation)
	if turn == nil {
		m.AddErrorNote("No reply to copy yet.")
		return m, nil
	}
	return m, CopyCmd(turn.ID, turn.Content)
}

func (m Model) handleExplain() (Model, tea.Cmd) {
	turn := m.conversation.LastResultTurn()
	if turn == nil {
		m.AddErrorNote("No query results to explain. Run a query first.")
		return m, nil
	}
	m.AddBotNote(summary.InsightDigest(turn.Data))
	return m, nil
}

func (m Model) handleShowSQL() (Model, tea.Cmd) {
	turn := m.conversation.LastResultTurn()
	if turn == nil || turn.Data.SQLQuery == "" {
		m.AddErrorNote("No SQL is available for the last result.")
		return m, nil
	}
	m.AddBotNote("Generated SQL:\n```sql\n" + turn.Data.SQLQuery + "\n```")
	return m, nil
}

func (m Model) handleSuggestRequest(msg commands.SuggestQueriesMsg) (Model, tea.Cmd) {
	topic := strings.TrimSpace(msg.Topic)
	if topic == "" {
		topic = m.conversation.LastUserQuery()
	}
	if topic == "" {
		m.AddErrorNote("Nothing to suggest from. Ask a question first, or use /suggest <topic>.")
		return m, nil
	}
	return m, SuggestCmd(m.client, topic)
}

func (m Model) handleSuggestResult(msg SuggestResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.conversation.AddErrorTurn(formatQueryError(msg.Err), msg.Query)
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, nil
	}
	if len(msg.Suggestions) == 0 {
		m.AddBotNote("No suggestions for that one. Try rephrasing the question.")
		return m, nil
	}

	var sb strings.Builder
	sb.WriteString("You could also ask:")
	for _, s := range msg.Suggestions {
		sb.WriteString("\n- ")
		sb.WriteString(s)
	}
	m.AddBotNote(sb.String())
	return m, nil
}

// lastBotReply finds the most recent non-error bot turn.
func lastBotReply(conv *model.Conversation) *model.ChatTurn {
	history := conv.History()
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == model.RoleBot && !history[i].Error {
			return history[i]
		}
	}
	return nil
}

// helpText builds the /help reply from the registry, grouped by category.
func (m *Model) helpText() string {
	byCategory := m.registry.ByCategory()

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString("**Commands**\n")
	for _, category := range categories {
		cmds := byCategory[category]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

		sb.WriteString("\n" + category + ":\n")
		for _, cmd := range cmds {
			usage := cmd.Name
			if cmd.Usage != "" {
				usage = cmd.Usage
			}
			sb.WriteString("  " + usage + " - " + cmd.Description + "\n")
		}
	}
	sb.WriteString("\nTab cycles views. Digits 1-4 on the welcome screen fill in a demo query.")
	return sb.String()
}
