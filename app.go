// FloatChat TUI - a terminal dashboard for ARGO ocean float data.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/api"
	"github.com/floatchat/floatchat-tui/internal/commands"
	"github.com/floatchat/floatchat-tui/internal/config"
	"github.com/floatchat/floatchat-tui/internal/export"
	"github.com/floatchat/floatchat-tui/internal/history"
	"github.com/floatchat/floatchat-tui/internal/storage"
	"github.com/floatchat/floatchat-tui/internal/ui/chartview"
	"github.com/floatchat/floatchat-tui/internal/ui/chat"
	"github.com/floatchat/floatchat-tui/internal/ui/components"
	"github.com/floatchat/floatchat-tui/internal/ui/floats"
	"github.com/floatchat/floatchat-tui/internal/ui/mapview"
	"github.com/floatchat/floatchat-tui/internal/ui/styles"
	"github.com/floatchat/floatchat-tui/internal/viewstate"
)

// =============================================================================
// APP MESSAGES
// =============================================================================

// floatsLoadedMsg carries a catalog fetch result.
type floatsLoadedMsg struct {
	floats []api.FloatRecord
	err    error
}

// floatSelectedMsg reports a selection made on the map or floats tab.
type floatSelectedMsg struct {
	float *api.FloatRecord
}

// profilesLoadedMsg carries the profile fetch for a selection token.
type profilesLoadedMsg struct {
	token    string
	floatID  string
	profiles []api.ProfileRecord
	err      error
}

// backendStatusMsg carries a reachability probe result.
type backendStatusMsg struct {
	err error
}

// sessionLoadedMsg carries a session load result.
type sessionLoadedMsg struct {
	session *storage.StoredSession
	err     error
}

// sessionsListedMsg carries the saved-session listing.
type sessionsListedMsg struct {
	metas []storage.SessionMeta
	err   error
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// App is the root Bubble Tea model: four tabs over one shared dashboard
// state. All backend calls run as tea.Cmds and land back here as typed
// messages; the tabs render from whatever the shared state says.
type App struct {
	theme  *styles.Theme
	cfg    *config.Config
	client *api.Client
	state  *viewstate.State

	header    *components.Header
	statusBar *components.StatusBar
	activeTab components.Tab

	chatTab   chat.Model
	mapTab    mapview.Model
	chartTab  chartview.Model
	floatsTab floats.Model

	sessions *storage.SessionStore
	history  *history.Store

	// reportStatus makes the next backend probe answer in the chat,
	// for /status, instead of only updating the status bar.
	reportStatus bool

	width  int
	height int
}

// NewApp wires the root model. The session store and history store are
// optional; a nil store disables that feature instead of failing startup.
func NewApp(theme *styles.Theme, cfg *config.Config, client *api.Client, sessions *storage.SessionStore, hist *history.Store) *App {
	state := viewstate.New()

	cmdCtx := &commands.Context{
		Config:   cfg,
		Client:   client,
		State:    state,
		Sessions: sessions,
		History:  hist,
	}
	registry := commands.NewRegistry()

	app := &App{
		theme:     theme,
		cfg:       cfg,
		client:    client,
		state:     state,
		header:    components.NewHeader(theme),
		statusBar: components.NewStatusBar(theme),
		chatTab:   chat.New(theme, cfg, client, registry, cmdCtx, Version),
		chartTab:  chartview.New(theme),
		sessions:  sessions,
		history:   hist,
	}

	onSelect := func(f *api.FloatRecord) tea.Cmd {
		selected := *f
		return func() tea.Msg { return floatSelectedMsg{float: &selected} }
	}
	app.mapTab = mapview.New(theme, onSelect)
	app.floatsTab = floats.New(theme, onSelect)

	app.statusBar.SetBackendHost(client.BaseURL())
	app.statusBar.SetChartKind(app.state.ChartKind().Label())
	return app
}

// Init kicks off the initial catalog fetch and backend probe.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.chatTab.Init(),
		fetchFloatsCmd(a.client),
		checkBackendCmd(a.client),
	)
}

// =============================================================================
// BACKEND COMMANDS
// =============================================================================

func fetchFloatsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		floats, err := client.ListFloats(context.Background())
		return floatsLoadedMsg{floats: floats, err: err}
	}
}

func fetchProfilesCmd(client *api.Client, floatID, token string) tea.Cmd {
	return func() tea.Msg {
		profiles, err := client.GetProfiles(context.Background(), floatID)
		return profilesLoadedMsg{token: token, floatID: floatID, profiles: profiles, err: err}
	}
}

func checkBackendCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return backendStatusMsg{err: client.CheckReachable(ctx)}
	}
}

func saveSessionCmd(sessions *storage.SessionStore, sess *storage.StoredSession) tea.Cmd {
	return func() tea.Msg {
		id, err := sessions.Save(sess)
		return commands.SaveCompleteMsg{ID: id, Error: err}
	}
}

func loadSessionCmd(sessions *storage.SessionStore, id string) tea.Cmd {
	return func() tea.Msg {
		sess, err := sessions.Load(id)
		return sessionLoadedMsg{session: sess, err: err}
	}
}

func listSessionsCmd(sessions *storage.SessionStore) tea.Cmd {
	return func() tea.Msg {
		metas, err := sessions.List()
		return sessionsListedMsg{metas: metas, err: err}
	}
}

func exportResultCmd(result *api.QueryResult, opts *export.Options) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteResultCSV(result, opts)
		return commands.ExportCompleteMsg{Path: path, Error: err}
	}
}

func recordHistoryCmd(hist *history.Store, entry history.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		// History is best effort; a broken database never blocks a query.
		_, _ = hist.Record(ctx, entry)
		return nil
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes messages: global keys first, then app-owned state changes,
// then the active tab. Non-key messages always reach the chat tab so its
// query lifecycle and spinner stay live from any tab.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case floatsLoadedMsg:
		return a.handleFloatsLoaded(msg)

	case floatSelectedMsg:
		return a.handleFloatSelected(msg)

	case profilesLoadedMsg:
		return a.handleProfilesLoaded(msg)

	case backendStatusMsg:
		if msg.err != nil {
			a.statusBar.SetConnection(components.ConnectionOffline)
		} else {
			a.statusBar.SetConnection(components.ConnectionOnline)
		}
		if a.reportStatus {
			a.reportStatus = false
			if msg.err != nil {
				a.chatTab.AddErrorNote("Backend " + a.client.BaseURL() + " is unreachable: " + msg.err.Error())
			} else {
				a.chatTab.AddBotNote("Backend " + a.client.BaseURL() + " is reachable.")
			}
		}
		return a, nil

	case chat.QueryResultMsg:
		return a.handleQueryResult(msg)

	case chat.QueryErrorMsg:
		return a.handleQueryError(msg)

	case commands.RefreshFloatsMsg:
		a.statusBar.SetStatus(components.StatusLoading)
		return a, fetchFloatsCmd(a.client)

	case commands.SetChartMsg:
		a.state.SetChartKind(msg.Kind)
		a.syncViews()
		return a, a.profilesForChartCmd()

	case commands.ShowStatusMsg:
		a.reportStatus = true
		return a, checkBackendCmd(a.client)

	case commands.SaveSessionMsg:
		return a.handleSaveSession(msg)

	case commands.SaveCompleteMsg:
		return a.handleSaveComplete(msg)

	case commands.ListSessionsMsg:
		if a.sessions == nil {
			a.chatTab.AddErrorNote("Session storage is unavailable.")
			return a, nil
		}
		return a, listSessionsCmd(a.sessions)

	case sessionsListedMsg:
		return a.handleSessionsListed(msg)

	case commands.LoadSessionMsg:
		if a.sessions == nil {
			a.chatTab.AddErrorNote("Session storage is unavailable.")
			return a, nil
		}
		return a, loadSessionCmd(a.sessions, msg.ID)

	case sessionLoadedMsg:
		return a.handleSessionLoaded(msg)

	case commands.ExportResultMsg:
		return a.handleExportResult()

	case commands.ExportTranscriptMsg:
		return a.handleExportTranscript()

	case commands.ExportCompleteMsg:
		return a.handleExportComplete(msg)

	case floats.FilterChangedMsg:
		a.state.SetSearch(msg.Search)
		a.state.SetStatus(msg.Status)
		a.state.SetRegion(msg.Region)
		a.syncViews()
		return a, nil
	}

	// Everything else flows to the chat tab (query lifecycle, spinner
	// ticks, command outcome messages it owns).
	var cmd tea.Cmd
	a.chatTab, cmd = a.chatTab.Update(msg)
	return a, cmd
}

// =============================================================================
// KEYS
// =============================================================================

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return a, tea.Quit

	case "tab":
		// The chat completion popup gets Tab while it is open.
		if a.activeTab == components.TabChat && a.chatTab.CompletionOpen() {
			break
		}
		a.setTab(a.activeTab.Next())
		return a, nil

	case "shift+tab":
		a.setTab(a.activeTab.Prev())
		return a, nil
	}

	var cmd tea.Cmd
	switch a.activeTab {
	case components.TabChat:
		a.chatTab, cmd = a.chatTab.Update(msg)
	case components.TabMap:
		a.mapTab, cmd = a.mapTab.Update(msg)
	case components.TabProfiles:
		a.chartTab, cmd = a.chartTab.Update(msg)
	case components.TabFloats:
		a.floatsTab, cmd = a.floatsTab.Update(msg)
	}
	return a, cmd
}

func (a *App) setTab(tab components.Tab) {
	a.activeTab = tab
	a.header.SetActive(tab)
}

// =============================================================================
// DATA FLOW
// =============================================================================

func (a *App) handleFloatsLoaded(msg floatsLoadedMsg) (tea.Model, tea.Cmd) {
	a.statusBar.SetStatus(components.StatusReady)
	if msg.err != nil {
		a.statusBar.SetConnection(components.ConnectionOffline)
		a.chatTab.AddErrorNote("Could not load the float catalog: " + msg.err.Error())
		return a, nil
	}

	a.statusBar.SetConnection(components.ConnectionOnline)
	a.state.SetFloats(msg.floats)
	a.syncViews()
	return a, nil
}

func (a *App) handleFloatSelected(msg floatSelectedMsg) (tea.Model, tea.Cmd) {
	token := a.state.SelectFloat(msg.float)
	a.syncViews()
	if msg.float == nil {
		return a, nil
	}
	return a, fetchProfilesCmd(a.client, msg.float.FloatID, token)
}

func (a *App) handleProfilesLoaded(msg profilesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.chatTab.AddErrorNote("Could not load profiles for float " + msg.floatID + ": " + msg.err.Error())
		return a, nil
	}
	// Stale tokens are dropped: the user has moved on to another float.
	if !a.state.AcceptProfiles(msg.token, msg.profiles) {
		return a, nil
	}
	a.syncViews()
	return a, nil
}

// profilesForChartCmd fetches profiles when a metric chart needs them and
// none are loaded for the current selection.
func (a *App) profilesForChartCmd() tea.Cmd {
	if !a.state.ChartKind().IsMetric() {
		return nil
	}
	selected := a.state.Selected()
	if selected == nil || len(a.state.Profiles()) > 0 {
		return nil
	}
	token := a.state.SelectFloat(selected)
	return fetchProfilesCmd(a.client, selected.FloatID, token)
}

func (a *App) handleQueryResult(msg chat.QueryResultMsg) (tea.Model, tea.Cmd) {
	// One atomic publish: the chart flips to query results, and
	// float-shaped rows replace the catalog behind the map and table.
	a.state.SetQueryResult(msg.Result)
	a.syncViews()

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.chatTab, cmd = a.chatTab.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	if a.history != nil && a.cfg.History.Enabled {
		cmds = append(cmds, recordHistoryCmd(a.history, history.Entry{
			Query:       msg.Query,
			SQLQuery:    msg.Result.SQLQuery,
			ResultCount: msg.Result.Count,
			Succeeded:   true,
		}))
	}
	if a.cfg.Sessions.AutoSave && a.sessions != nil {
		cmds = append(cmds, saveSessionCmd(a.sessions, storage.FromConversation(a.chatTab.Conversation())))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleQueryError(msg chat.QueryErrorMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.chatTab, cmd = a.chatTab.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	if a.history != nil && a.cfg.History.Enabled {
		cmds = append(cmds, recordHistoryCmd(a.history, history.Entry{
			Query:        msg.Query,
			Succeeded:    false,
			ErrorMessage: msg.Err.Error(),
		}))
	}
	return a, tea.Batch(cmds...)
}

// =============================================================================
// SESSIONS AND EXPORT
// =============================================================================

func (a *App) handleSaveSession(msg commands.SaveSessionMsg) (tea.Model, tea.Cmd) {
	if a.sessions == nil {
		a.chatTab.AddErrorNote("Session storage is unavailable.")
		return a, nil
	}
	if a.chatTab.Conversation().IsEmpty() {
		a.chatTab.AddErrorNote("Nothing to save yet.")
		return a, nil
	}

	sess := storage.FromConversation(a.chatTab.Conversation())
	if msg.Name != "" {
		sess.Title = msg.Name
	}
	return a, saveSessionCmd(a.sessions, sess)
}

func (a *App) handleSaveComplete(msg commands.SaveCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		a.chatTab.AddErrorNote("Save failed: " + msg.Error.Error())
		return a, nil
	}
	a.chatTab.AddBotNote("Session saved as " + msg.ID + ". Load it later with /load " + msg.ID + ".")
	return a, nil
}

func (a *App) handleSessionsListed(msg sessionsListedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.chatTab.AddErrorNote("Could not list sessions: " + msg.err.Error())
		return a, nil
	}
	if len(msg.metas) == 0 {
		a.chatTab.AddBotNote("No saved sessions yet. Use /save to keep this one.")
		return a, nil
	}

	note := "Saved sessions:\n"
	for _, meta := range msg.metas {
		note += "\n- " + meta.ID + "  " + meta.Title +
			"  (" + meta.UpdatedAt.Format("Jan 2 15:04") + ")"
	}
	a.chatTab.AddBotNote(note)
	return a, nil
}

func (a *App) handleSessionLoaded(msg sessionLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.chatTab.AddErrorNote("Could not load session: " + msg.err.Error())
		return a, nil
	}
	a.chatTab.SetConversation(msg.session.ToConversation())
	a.chatTab.AddBotNote("Loaded session " + msg.session.ID + " (" + msg.session.Title + ").")
	return a, nil
}

func (a *App) handleExportResult() (tea.Model, tea.Cmd) {
	turn := a.chatTab.Conversation().LastResultTurn()
	if turn == nil {
		a.chatTab.AddErrorNote("No query results to export. Run a query first.")
		return a, nil
	}

	opts := export.DefaultOptions()
	opts.OutputDir = a.cfg.Export.OutputDir
	opts.OpenAfterExport = a.cfg.Export.OpenAfterExport
	return a, exportResultCmd(turn.Data, opts)
}

func (a *App) handleExportTranscript() (tea.Model, tea.Cmd) {
	conv := a.chatTab.Conversation()
	if conv.IsEmpty() {
		a.chatTab.AddErrorNote("Nothing to export yet.")
		return a, nil
	}

	opts := export.DefaultOptions()
	opts.OutputDir = a.cfg.Export.OutputDir
	return a, func() tea.Msg {
		path, err := export.WriteTranscript(conv, opts)
		return commands.ExportCompleteMsg{Path: path, Error: err}
	}
}

func (a *App) handleExportComplete(msg commands.ExportCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		a.chatTab.AddErrorNote("Export failed: " + msg.Error.Error())
		return a, nil
	}
	a.chatTab.AddBotNote("Exported to " + msg.Path + ".")
	return a, nil
}

// =============================================================================
// VIEW SYNC
// =============================================================================

// syncViews pushes the shared state into every tab in one place, so a
// single state change fans out consistently.
func (a *App) syncViews() {
	visible := a.state.Visible()

	a.mapTab.SetFloats(visible)
	a.floatsTab.SetFloats(visible, len(a.state.Floats()))
	a.floatsTab.SetRegions(a.state.Regions())
	a.chartTab.SetSpec(a.state.ChartSpec())

	selectedID := ""
	if selected := a.state.Selected(); selected != nil {
		selectedID = selected.FloatID
	}
	a.mapTab.SetSelected(selectedID)

	a.statusBar.SetFloatCounts(len(a.state.Floats()), len(visible))
	a.statusBar.SetSelectedFloat(selectedID)
	a.statusBar.SetChartKind(a.state.ChartKind().Label())
	if a.chatTab.Busy() {
		a.statusBar.SetStatus(components.StatusQuerying)
	} else {
		a.statusBar.SetStatus(components.StatusReady)
	}
}

// =============================================================================
// LAYOUT
// =============================================================================

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.theme.SetSize(width, height)

	a.header.SetWidth(width)
	a.statusBar.SetWidth(width)

	headerHeight := lipgloss.Height(a.header.View())
	contentHeight := height - headerHeight - 1
	if contentHeight < 4 {
		contentHeight = 4
	}

	a.chatTab.SetSize(width, contentHeight)
	a.mapTab.SetSize(width, contentHeight)
	a.chartTab.SetSize(width, contentHeight)
	a.floatsTab.SetSize(width, contentHeight)
}

// View stacks the header, the active tab, and the status bar.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.activeTab {
	case components.TabMap:
		content = a.mapTab.View()
	case components.TabProfiles:
		content = a.chartTab.View()
	case components.TabFloats:
		content = a.floatsTab.View()
	default:
		content = a.chatTab.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(),
		content,
		a.statusBar.View(),
	)
}
