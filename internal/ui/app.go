package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/postboard/internal/logging"
	"github.com/five82/postboard/internal/nav"
	"github.com/five82/postboard/internal/posts"
	"github.com/five82/postboard/internal/prefs"
	"github.com/five82/postboard/internal/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    posts.Source
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	logger    *slog.Logger
	prefsPath string

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	showHelp bool

	// Screens
	router *nav.Router
	list   listScreen
	detail detailScreen
}

// New creates a new Bubble Tea model with the list screen mounted.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		logger:    logger,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
		width:     defaultWidth,
		height:    defaultHeight,
		router:    nav.NewRouter(),
		list:      newListScreen(state.NewController(opts.Source, logger)),
		detail:    newDetailScreen(),
	}
	m.applyTheme()
	m.resize()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.list.spinner.Tick,
		loadPostsCmd(m.ctx, m.list.controller),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case postsLoadedMsg:
		if msg.err != nil && !errors.Is(msg.err, state.ErrAlreadyLoaded) && !errors.Is(msg.err, state.ErrTornDown) {
			m.logger.Error("posts load did not run", slog.String("error", msg.err.Error()))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.list.controller.State().IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input housekeeping
	if m.list.searching {
		return m, m.list.updateInput(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.router.Current().Screen == nav.ScreenDetail {
		return m.renderDetail()
	}
	return m.renderList()
}

// Teardown releases the list screen. A fetch still in flight is cancelled
// and its result dropped.
func (m Model) Teardown() {
	m.list.controller.Teardown()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	screen := m.router.Current().Screen
	if screen == nav.ScreenList && m.list.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	if screen == nav.ScreenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.LeaveInput):
		m.list.blurSearch()
		return m, nil
	case msg.Type == tea.KeyUp:
		m.list.move(-1)
		return m, nil
	case msg.Type == tea.KeyDown:
		m.list.move(1)
		return m, nil
	}
	return m, m.list.updateInput(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.list.focusSearch()
	case key.Matches(msg, m.keys.Open):
		m.openSelected()
	case key.Matches(msg, m.keys.Up):
		m.list.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.move(-m.list.visible)
	case key.Matches(msg, m.keys.PageDown):
		m.list.move(m.list.visible)
	case key.Matches(msg, m.keys.Top):
		m.list.moveTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.list.moveTo(len(m.list.controller.State().Filtered()) - 1)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.router.Back()
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Top):
		m.detail.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detail.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.detail.viewport, cmd = m.detail.viewport.Update(msg)
	return m, cmd
}

// openSelected pushes the detail route for the highlighted card. The
// detail screen reads its post back out of the encoded route.
func (m *Model) openSelected() {
	p, ok := m.list.selected()
	if !ok {
		return
	}
	route, err := m.router.Open(p)
	if err != nil {
		m.logger.Error("open post", slog.String("error", err.Error()))
		return
	}
	m.logger.Debug("navigated", slog.String("route", route.Path()), slog.Int("depth", m.router.Depth()))
	m.detail.show(route.Post(), m.theme.Styles())
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save prefs", slog.String("error", err.Error()))
		}
	}
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.list.applyTheme(styles)
	m.detail.render(styles)
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

func (m *Model) resize() {
	// footer padding
	m.help.Width = maxInt(m.width-2, 1)
	m.list.resize(m.width, m.height-listChromeHeight)
	m.detail.resize(m.width, m.height-detailChromeHeight, m.theme.Styles())
}

// Messages

type postsLoadedMsg struct {
	err error
}

// Commands

func loadPostsCmd(ctx context.Context, c *state.Controller) tea.Cmd {
	return func() tea.Msg {
		return postsLoadedMsg{err: c.Load(ctx)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	defer m.Teardown()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
