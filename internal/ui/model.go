package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"promodeck/internal/catalog"
	"promodeck/internal/config"
	"promodeck/internal/eventbus"
	"promodeck/internal/filters"
	"promodeck/internal/ui/commands"
	"promodeck/internal/ui/handlers"
	"promodeck/internal/ui/input"
	inputtypes "promodeck/internal/ui/input/types"
	"promodeck/internal/ui/services/navigation"
	"promodeck/internal/ui/state"
	"promodeck/internal/ui/views"
	"promodeck/internal/window"
)

// wheelRows is how far one mouse wheel notch scrolls
const wheelRows = 3

// Option configures a Model
type Option func(*Model)

// WithInitialQuery starts the list from an encoded query instead of the saved one
func WithInitialQuery(query string) Option {
	return func(m *Model) { m.initialQuery = query }
}

// WithReloader sets how the r key reloads the catalog
func WithReloader(reload func() error) Option {
	return func(m *Model) { m.reload = reload }
}

// WithCatalogSource names the catalog shown in the status bar
func WithCatalogSource(source string) Option {
	return func(m *Model) { m.state.CatalogSource = source }
}

// WithClipboard replaces the system clipboard writer
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.copyText = write }
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger
	state  *state.AppState // centralized state
	store  catalog.Store

	// UI-specific state not in AppState
	width        int
	height       int
	inPagerMode  bool // tracks if we're currently in pager mode
	closed       bool
	initialQuery string

	// One controller and one scroll window per mounted list
	controller *filters.Controller
	nav        *navigation.Service
	layout     views.Layout

	// Handlers
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *PagerOps

	reload   func() error
	copyText func(string) error
	// send delivers messages from timer goroutines into the update loop
	send func(tea.Msg)

	// Program reference for terminal management
	program *tea.Program
}

// ResolveInitialQuery picks the query the list starts from: an explicit one
// wins, otherwise the remembered one when remembering is enabled
func ResolveInitialQuery(explicit string, cfg *config.Config) string {
	if explicit != "" {
		return explicit
	}
	if cfg != nil && cfg.RememberQuery {
		return cfg.LastQuery
	}
	return ""
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store catalog.Store, logger *zap.Logger, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		logger:       logger,
		state:        state.NewAppState(),
		store:        store,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		copyText:     clipboard.WriteAll,
		send:         func(tea.Msg) {},
	}
	m.initialQuery = ResolveInitialQuery("", cfg)
	for _, opt := range opts {
		opt(m)
	}

	initial := filters.FromQueryString(m.initialQuery)
	m.controller = filters.NewController(logger.Named("filters"), initial, m.onQueryChanged, cfg.UISettings.DebounceDelay())
	m.state.Query = m.controller.Query()

	m.eventHandler = handlers.NewEventHandler(m.state, logger, m.refresh)
	m.cmdExecutor = commands.NewExecutor(m.state, store, bus, logger, m.reload)

	m.layout = m.renderer.Layouts().Lookup(cfg.UISettings.Layout)
	m.state.Layout = m.layout.Name
	m.nav = navigation.NewService(m.newWindow())

	m.refresh()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
	if p != nil {
		m.send = p.Send
	}
}

// Config returns the configuration, updated with the last query and layout once the model is closed
func (m *Model) Config() *config.Config {
	return m.config
}

// Criteria returns the current filter criteria
func (m *Model) Criteria() filters.Criteria {
	return m.controller.Criteria()
}

// Close unmounts the list: pending keyword commits are dropped and the
// query is remembered when configured
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.controller.Close()
	if m.config.RememberQuery {
		m.config.LastQuery = m.controller.Query()
	}
	m.config.UISettings.Layout = m.layout.Name
	m.logger.Info("List closed", zap.String("query", m.config.LastQuery))
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.nav.Scroll(-wheelRows)
		case tea.MouseButtonWheelDown:
			m.nav.Scroll(wheelRows)
		}
		m.state.Cursor = m.nav.Cursor()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State:          m.state,
			Criteria:       m.controller.Criteria(),
			ConfirmDeletes: m.config.UISettings.ConfirmDelete,
		}

		modeBefore := m.inputHandler.CurrentMode()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		// Opening or closing a prompt changes the room left for the list
		if m.inputHandler.CurrentMode() != modeBefore {
			m.updateViewportHeight()
		}
		return m, tea.Batch(cmds...)

	default:
		// The text input needs cursor blink messages; everything else is ours
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Items:         m.state.Items,
		Cursor:        m.state.Cursor,
		Layout:        m.layout,
		Window:        m.nav.Window(),
		Virtualized:   m.state.Virtualized,
		Criteria:      m.controller.Criteria(),
		Query:         m.state.Query,
		Pagination:    m.state.Pagination,
		Stats:         m.state.Stats,
		CatalogSource: m.state.CatalogSource,
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeKeyword, inputtypes.ModeDateRange:
		vs.InputOpen = true
		vs.InputPrompt = m.inputHandler.Prompt()
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.TextInput = ti.View()
		}
	case inputtypes.ModeDeleteConfirm:
		if _, title := m.inputHandler.ConfirmTarget(); title != "" {
			vs.DeleteTarget = title
		}
	}

	return m.renderer.Render(vs)
}

// onQueryChanged is the controller's query sink. It runs on the update loop.
func (m *Model) onQueryChanged(query string) {
	m.state.Query = query
	m.logger.Debug("Query changed", zap.String("query", query))
	if m.bus != nil {
		m.bus.Publish(eventbus.QueryChangedEvent{Query: query})
	}
}

// refresh re-runs the query for the current criteria, clamping an out of range page
func (m *Model) refresh() {
	result := catalog.Query(m.store, m.controller.Criteria())
	if m.controller.CorrectPage(result.Pagination.TotalPages) {
		result = catalog.Query(m.store, m.controller.Criteria())
	}

	m.state.SetItems(result.Items)
	m.state.Pagination = result.Pagination
	m.state.Stats = result.Stats
	m.state.Query = m.controller.Query()

	ui := m.config.UISettings
	m.state.Virtualized = result.Pagination.TotalItems > ui.VirtualizeAbove ||
		result.Pagination.PageSize > ui.VirtualizePageSize

	m.nav.SetItemCount(len(result.Items))
	m.state.Cursor = m.nav.Cursor()
}

// refreshFromTop re-runs the query and moves to the first item, used after the criteria change
func (m *Model) refreshFromTop() {
	m.refresh()
	m.nav.Navigate(navigation.DirectionHome)
	m.state.Cursor = m.nav.Cursor()
}

// newWindow creates the scroll window for the current layout
func (m *Model) newWindow() *window.Window {
	return window.New(m.layout.ItemHeight, m.config.UISettings.BufferCount, m.listHeight(), len(m.state.Items))
}

// remount discards the list window and builds a new one for the current layout
func (m *Model) remount() {
	m.nav.SetWindow(m.newWindow())
	m.state.Cursor = m.nav.Cursor()
}

func (m *Model) listHeight() int {
	height := m.height
	if height <= 0 {
		height = 24
	}
	mode := m.inputHandler.CurrentMode()
	return views.ListHeight(height, mode == inputtypes.ModeKeyword || mode == inputtypes.ModeDateRange)
}

func (m *Model) updateViewportHeight() {
	m.nav.SetViewportHeight(m.listHeight())
	m.state.Cursor = m.nav.Cursor()
}

// commitKeyword is the debounce callback. It runs on a timer goroutine, so it
// only forwards the keyword into the update loop.
func (m *Model) commitKeyword(kc filters.KeywordCommit) {
	m.send(keywordCommitMsg{commit: kc})
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(what, content string) tea.Cmd {
	if m.pager == nil || m.program == nil {
		m.state.SetError("Pager is not available")
		return handlers.ClearStatusAfter(handlers.StatusTimeout)
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch action := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Navigate(navigation.Direction(action.Direction))
		m.state.Cursor = m.nav.Cursor()
		return nil

	case inputtypes.UpdateTextAction:
		if action.Mode == inputtypes.ModeKeyword {
			m.controller.DebouncedKeywordUpdate(action.Text, m.commitKeyword, m.config.UISettings.DebounceDelay())
		}
		return nil

	case inputtypes.SubmitTextAction:
		switch action.Mode {
		case inputtypes.ModeKeyword:
			m.controller.CommitKeyword(strings.TrimSpace(action.Text))
			m.refreshFromTop()
		case inputtypes.ModeDateRange:
			start, end, err := filters.ParseDateRange(action.Text)
			if err != nil {
				m.state.SetError(fmt.Sprintf("Date range: %v", err))
				return handlers.ClearStatusAfter(handlers.StatusTimeout)
			}
			m.controller.SetDateRange(start, end)
			m.refreshFromTop()
		}
		return nil

	case inputtypes.CancelTextAction:
		if action.Mode == inputtypes.ModeKeyword {
			m.controller.CancelKeyword()
			// Undo keywords committed while typing
			if m.controller.Criteria().Keyword != action.Original {
				m.controller.CommitKeyword(action.Original)
				m.refreshFromTop()
			}
		}
		return nil

	case inputtypes.SetStatusFilterAction:
		m.controller.SetStatus(action.Status)
		m.refreshFromTop()
		return nil

	case inputtypes.PageAction:
		return m.changePage(action.Direction)

	case inputtypes.CyclePageSizeAction:
		next := filters.NextPageSize(m.controller.Criteria().PageSize, m.config.UISettings.PageSizeOptions)
		m.controller.SetPageSize(next)
		m.refreshFromTop()
		m.state.SetStatus(fmt.Sprintf("Page size %d", next))
		return handlers.ClearStatusAfter(handlers.StatusTimeout)

	case inputtypes.ResetFiltersAction:
		m.controller.Reset()
		m.refreshFromTop()
		m.state.SetStatus("Filters reset")
		return handlers.ClearStatusAfter(handlers.StatusTimeout)

	case inputtypes.SwitchLayoutAction:
		m.layout = m.renderer.Layouts().Next(m.layout.Name)
		m.state.Layout = m.layout.Name
		m.remount()
		m.state.SetStatus(fmt.Sprintf("Layout: %s", m.layout.Name))
		return handlers.ClearStatusAfter(handlers.StatusTimeout)

	case inputtypes.OpenDetailAction:
		activity, err := m.store.Get(action.ID)
		if err != nil {
			m.state.SetError(fmt.Sprintf("Cannot open activity: %v", err))
			return handlers.ClearStatusAfter(handlers.StatusTimeout)
		}
		return m.showInPager("detail", m.renderer.Activities().DetailText(activity))

	case inputtypes.DeleteActivityAction:
		cmd := m.cmdExecutor.ExecuteDelete(action.ID)
		m.refresh()
		return tea.Batch(cmd, handlers.ClearStatusAfter(handlers.StatusTimeout))

	case inputtypes.ReloadCatalogAction:
		return m.cmdExecutor.ExecuteReload()

	case inputtypes.CopyQueryAction:
		link := m.controller.Criteria().String()
		if link == "" {
			m.state.SetStatus("No filters set, nothing to copy")
			return handlers.ClearStatusAfter(handlers.StatusTimeout)
		}
		if err := m.copyText(link); err != nil {
			m.logger.Debug("Clipboard unavailable", zap.Error(err))
			m.state.SetStatus(fmt.Sprintf("Query link: %s", link))
		} else {
			m.state.SetStatus(fmt.Sprintf("Copied %s", link))
		}
		return handlers.ClearStatusAfter(handlers.StatusTimeout)

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

// changePage moves between result pages
func (m *Model) changePage(direction string) tea.Cmd {
	p := m.state.Pagination
	target := p.Page
	switch direction {
	case "prev":
		if p.HasPrev() {
			target--
		}
	case "next":
		if p.HasNext() {
			target++
		}
	case "first":
		target = 1
	case "last":
		if p.TotalPages > 0 {
			target = p.TotalPages
		}
	}
	if target == p.Page {
		return nil
	}
	m.controller.SetPage(target)
	m.refreshFromTop()
	return nil
}

// handleNonKeyboardMsg handles all non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case keywordCommitMsg:
		if m.closed {
			return m, nil
		}
		// Esc or newer typing may have landed while the message was queued
		if _, ok := m.controller.CommitIfCurrent(msg.commit); ok {
			m.refreshFromTop()
		}
		return m, nil

	case commands.ReloadFinishedMsg:
		if msg.Err != nil {
			m.logger.Warn("Catalog reload failed", zap.Error(msg.Err))
			m.state.SetError(fmt.Sprintf("Reload failed: %v", msg.Err))
			return m, handlers.ClearStatusAfter(handlers.StatusTimeout)
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("Pager failed", zap.String("content", msg.what), zap.Error(msg.err))
			m.state.SetError(fmt.Sprintf("Pager failed: %v", msg.err))
			return m, handlers.ClearStatusAfter(handlers.StatusTimeout)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case handlers.ClearStatusMsg:
		m.state.ClearStatus()
		return m, nil

	default:
		return m, nil
	}
}
