// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat tab of the FloatChat TUI.
package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/commands"
	"github.com/floatchat/floatchat-tui/internal/config"
	"github.com/floatchat/floatchat-tui/internal/model"
	"github.com/floatchat/floatchat-tui/internal/ui/components"
	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// =============================================================================
// STATE
// =============================================================================

// State is the query lifecycle state of the chat tab.
type State int

const (
	// StateReady accepts input.
	StateReady State = iota

	// StateQuerying has a query in flight. Submissions are ignored until
	// the result or error message arrives, so at most one query runs at a
	// time.
	StateQuerying
)

// inputHeight is the fixed height of the bordered input area.
const inputHeight = 3

// flashDuration is how long transient status flashes stay visible.
const flashDuration = 2 * time.Second

// =============================================================================
// MODEL
// =============================================================================

// Model is the chat tab: transcript viewport, input line, slash-command
// completion, and the query lifecycle.
type Model struct {
	theme  *styles.Theme
	cfg    *config.Config
	client *api.Client

	conversation *model.Conversation
	cmdCtx       *commands.Context
	parser       *commands.Parser
	completer    *commands.Completer
	registry     *commands.Registry

	state  State
	width  int
	height int

	input      textinput.Model
	viewport   viewport.Model
	spinner    components.Spinner
	completion *components.CompletionPopup
	welcome    *components.Welcome

	markdown *glamour.TermRenderer

	// copiedID marks the turn that flashes "copied" after a /copy.
	copiedID int64
	flash    string
	flashAt  time.Time
}

// New creates the chat tab. The commands.Context is shared with the root
// model; its Conversation pointer is kept in sync when the transcript is
// cleared or replaced.
func New(theme *styles.Theme, cfg *config.Config, client *api.Client, registry *commands.Registry, cmdCtx *commands.Context, version string) Model {
	input := textinput.New()
	input.Placeholder = "Ask about ARGO floats, or type / for commands"
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.TextStyle = theme.InputText
	input.PlaceholderStyle = theme.InputPlaceholder
	input.CharLimit = 500
	input.Focus()

	welcome := components.NewWelcome(theme, version)
	if cfg != nil && !cfg.UI.DemoQueries {
		welcome.SetDemoQueries(nil)
	}

	m := Model{
		theme:        theme,
		cfg:          cfg,
		client:       client,
		conversation: cmdCtx.Conversation,
		cmdCtx:       cmdCtx,
		parser:       commands.NewParser(registry),
		completer:    commands.NewCompleter(registry),
		registry:     registry,
		input:        input,
		viewport:     viewport.New(80, 20),
		spinner:      components.NewQuerySpinner(),
		completion:   components.NewCompletionPopup(),
		welcome:      welcome,
	}
	if m.conversation == nil {
		m.conversation = model.NewConversation()
		m.cmdCtx.Conversation = m.conversation
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// SIZING
// =============================================================================

// SetSize resizes the tab to the content area it was given. The viewport
// takes whatever the input area leaves over.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - inputHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight

	m.input.Width = width - 6
	m.completion.SetWidth(width / 2)
	m.welcome.SetSize(width, vpHeight)

	m.rebuildRenderer()
	m.refreshTranscript()
}

// rebuildRenderer recreates the markdown renderer at the current wrap width.
func (m *Model) rebuildRenderer() {
	style := "dark"
	if !m.theme.IsDark {
		style = "light"
	}
	wrap := m.width - 8
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.markdown = nil
		return
	}
	m.markdown = r
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Conversation returns the active transcript.
func (m *Model) Conversation() *model.Conversation { return m.conversation }

// Busy reports whether a query is in flight.
func (m *Model) Busy() bool { return m.state == StateQuerying }

// CompletionOpen reports whether the completion popup is showing. The root
// model leaves Tab to this tab while it is, instead of switching views.
func (m *Model) CompletionOpen() bool { return m.completion.HasCandidates() }

// SetConversation swaps in a loaded transcript, keeping the shared command
// context pointing at it.
func (m *Model) SetConversation(conv *model.Conversation) {
	if conv == nil {
		conv = model.NewConversation()
	}
	m.conversation = conv
	m.cmdCtx.Conversation = conv
	m.refreshTranscript()
	m.viewport.GotoBottom()
}

// ResetConversation starts a fresh transcript.
func (m *Model) ResetConversation() {
	m.SetConversation(model.NewConversation())
}

// AddBotNote appends an informational bot turn. The root model uses it to
// surface outcomes it owns, like session saves and catalog refreshes.
func (m *Model) AddBotNote(content string) {
	m.conversation.AddBotTurn(content, nil, "")
	m.refreshTranscript()
	m.viewport.GotoBottom()
}

// AddErrorNote appends an error bot turn.
func (m *Model) AddErrorNote(content string) {
	m.conversation.AddErrorTurn(content, "")
	m.refreshTranscript()
	m.viewport.GotoBottom()
}

// setFlash shows a transient status line next to the input.
func (m *Model) setFlash(text string) tea.Cmd {
	m.flash = text
	m.flashAt = time.Now()
	return FlashCmd(m.flashAt, flashDuration)
}
