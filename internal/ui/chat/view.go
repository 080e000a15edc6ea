// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat tab of the FloatChat TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/model"
	"github.com/floatchat/floatchat-tui/internal/ui/components"
	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// timestampLayout is the per-turn clock format.
const timestampLayout = "15:04"

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat tab: transcript viewport on top, input area below,
// with the completion popup and status flash layered above the input.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	transcript := m.viewport.View()
	input := m.renderInput()

	parts := []string{transcript}
	if m.completion.HasCandidates() {
		parts = append(parts, m.completion.View())
	}
	parts = append(parts, input)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderInput renders the bordered input line. While a query is in flight
// the spinner replaces the prompt; the transient flash wins over both.
func (m Model) renderInput() string {
	var line string
	switch {
	case m.flash != "":
		line = m.theme.ThinkingText.Render(m.flash)
	case m.state == StateQuerying:
		line = m.spinner.View()
	default:
		line = m.input.View()
	}

	return m.theme.InputContainer.
		Width(m.width - 2).
		Render(line)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshTranscript re-renders the conversation into the viewport. Called
// after every transcript mutation and on resize; scroll position is managed
// by the callers.
func (m *Model) refreshTranscript() {
	if m.conversation == nil || m.conversation.IsEmpty() {
		m.viewport.SetContent(m.welcome.View())
		return
	}

	var parts []string
	for _, turn := range m.conversation.History() {
		parts = append(parts, m.renderTurn(turn))
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
}

// renderTurn renders one transcript entry according to its role.
func (m *Model) renderTurn(turn *model.ChatTurn) string {
	switch {
	case turn.Role == model.RoleUser:
		return m.renderUserTurn(turn)
	case turn.Error:
		return m.renderErrorTurn(turn)
	default:
		return m.renderBotTurn(turn)
	}
}

func (m *Model) renderUserTurn(turn *model.ChatTurn) string {
	header := m.theme.Timestamp.Render(
		turn.Role.DisplayName() + " " + turn.Timestamp.Format(timestampLayout))

	bubble := m.theme.UserBubble.
		MaxWidth(m.bubbleWidth()).
		Render(turn.Content)

	return header + "\n" + bubble
}

func (m *Model) renderBotTurn(turn *model.ChatTurn) string {
	header := turn.Role.DisplayName() + " " + turn.Timestamp.Format(timestampLayout)
	if m.copiedID != 0 && m.copiedID == turn.ID {
		header += " " + styles.RenderSuccess("(copied)")
	}

	body := m.renderMarkdown(turn.Content)

	// The generated SQL rides under the answer when configured on.
	if turn.Data != nil && turn.Data.SQLQuery != "" && m.cfg != nil && m.cfg.UI.ShowSQL {
		badge := m.theme.SQLBadge.Render("SQL")
		body += "\n" + badge + "\n" + components.RenderSQL(turn.Data.SQLQuery, m.bubbleWidth())
	}

	bubble := m.theme.BotBubble.
		MaxWidth(m.bubbleWidth()).
		Render(body)

	return m.theme.Timestamp.Render(header) + "\n" + bubble
}

func (m *Model) renderErrorTurn(turn *model.ChatTurn) string {
	header := m.theme.Timestamp.Render(
		turn.Role.DisplayName() + " " + turn.Timestamp.Format(timestampLayout))

	content := styles.StatusIndicators.Error + " " + turn.Content
	bubble := m.theme.ErrorBubble.
		MaxWidth(m.bubbleWidth()).
		Render(content)

	return header + "\n" + bubble
}

// renderMarkdown renders bot content through glamour, falling back to the
// fenced-code parser when the renderer is unavailable.
func (m *Model) renderMarkdown(content string) string {
	if m.markdown != nil {
		if out, err := m.markdown.Render(content); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return components.ParseCodeBlocks(content, m.bubbleWidth())
}

// bubbleWidth is the maximum width of a chat bubble.
func (m *Model) bubbleWidth() int {
	w := m.width - 6
	if w < 20 {
		w = 20
	}
	return w
}
