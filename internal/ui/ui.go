package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amii911/AlgoTrack/internal/api"
	"github.com/Amii911/AlgoTrack/internal/auth"
	"github.com/Amii911/AlgoTrack/internal/filter"
	"github.com/Amii911/AlgoTrack/internal/state"
	"github.com/Amii911/AlgoTrack/internal/stats"
	"github.com/Amii911/AlgoTrack/internal/tracker"
)

// Options configure the UI runtime.
type Options struct {
	Context     context.Context
	Session     *auth.Manager
	Catalog     *state.CatalogStore
	Attempts    *state.AttemptStore
	Coordinator *tracker.Coordinator
	Timeout     time.Duration
	ThemeName   string
	PageSize    int
	PrefsPath   string
}

type viewKind int

const (
	viewCatalog viewKind = iota
	viewProfile
	viewForm
)

const uiRefreshInterval = time.Second

// Model is the bubbletea model for the whole application.
type Model struct {
	opts   Options
	theme  Theme
	styles Styles

	width  int
	height int

	view     viewKind
	prevView viewKind

	// Catalog view
	search     textinput.Model
	searchMode bool
	criteria   filter.Criteria
	catTable   table.Model
	visible    []api.Problem

	// Profile view
	progTable table.Model

	// Forms (login, register, add problem, track, edit)
	form *form

	// Latest store snapshots and derived data
	catalogSnap state.CatalogSnapshot
	attemptSnap state.AttemptSnapshot
	statistics  stats.Statistics

	busy      bool
	statusMsg string
	statusBad bool
}

// Run starts the TUI and blocks until the context is cancelled or the
// user quits.
func Run(opts Options) error {
	if opts.Catalog == nil || opts.Attempts == nil || opts.Coordinator == nil || opts.Session == nil {
		return fmt.Errorf("ui requires session, stores, and coordinator")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	model := newModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := program.Run()
	return err
}

func newModel(opts Options) *Model {
	theme := themeByName(opts.ThemeName)

	search := textinput.New()
	search.Placeholder = "search problems..."
	search.Prompt = "/ "
	search.CharLimit = 80

	m := &Model{
		opts:   opts,
		theme:  theme,
		styles: theme.Styles(),
		search: search,
		view:   viewCatalog,
	}
	m.catTable = m.newCatalogTable()
	m.progTable = m.newProgressTable()
	m.refreshSnapshots()
	return m
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(uiRefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTables()
		return m, nil

	case tickMsg:
		m.refreshSnapshots()
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case authDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.flashError(msg.err)
			return m, nil
		}
		m.closeForm()
		if msg.loggedOut {
			m.flash("logged out")
			return m, nil
		}
		m.flash("signed in as " + msg.user.Name)
		return m, m.loadAttemptsCmd()

	case mutationDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.flashError(msg.err)
			return m, nil
		}
		if msg.warning != "" {
			m.flashWarn(msg.verb + " saved; " + msg.warning)
		} else {
			m.flash(msg.verb + " saved")
		}
		m.closeForm()
		m.refreshSnapshots()
		return m, nil

	case attemptsLoadedMsg:
		if msg.err != nil {
			m.flashError(msg.err)
			return m, nil
		}
		m.refreshSnapshots()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	switch m.view {
	case viewCatalog:
		body = m.renderCatalog()
	case viewProfile:
		body = m.renderProfile()
	case viewForm:
		body = m.renderForm()
	}
	return header + "\n" + body + "\n" + footer
}

// refreshSnapshots pulls fresh store snapshots and recomputes the
// derived views. Both derivations are pure functions over snapshots,
// cheap enough to run on every tick.
func (m *Model) refreshSnapshots() {
	m.catalogSnap = m.opts.Catalog.Snapshot()
	m.attemptSnap = m.opts.Attempts.Snapshot()
	m.visible = filter.Apply(m.catalogSnap.Problems, m.criteria)
	m.statistics = stats.Aggregate(m.attemptSnap.Attempts, m.catalogSnap.Problems)
	m.syncCatalogRows()
	m.syncProgressRows()
}

func (m *Model) flash(msg string) {
	m.statusMsg = msg
	m.statusBad = false
}

func (m *Model) flashWarn(msg string) {
	m.statusMsg = msg
	m.statusBad = false
}

func (m *Model) flashError(err error) {
	m.statusMsg = err.Error()
	m.statusBad = true
}

func (m *Model) showCatalogView() {
	m.view = viewCatalog
}

func (m *Model) showProfileView() {
	m.view = viewProfile
}

func (m *Model) openForm(f *form) {
	if m.view != viewForm {
		m.prevView = m.view
	}
	m.form = f
	m.view = viewForm
}

func (m *Model) closeForm() {
	if m.view == viewForm {
		m.view = m.prevView
	}
	m.form = nil
}
