package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookflix/internal/library"
	"bookflix/internal/openlibrary"
	"bookflix/internal/prefs"
)

// View represents the current navigation mode.
type View int

const (
	ViewHome View = iota
	ViewSearch
	ViewCategory
	ViewWantIt
	ViewTBR
	ViewHistory
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   openlibrary.Searcher
	Library   *library.Store
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	catalog   openlibrary.Searcher
	library   *library.Store
	prefsPath string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Navigation state
	view      View
	viewTitle string
	viewBooks []openlibrary.Book
	loading   bool

	// fetchSeq orders search/category fetches so a late completion from a
	// superseded request cannot overwrite a newer view.
	fetchSeq int

	// Home state
	featured *openlibrary.Book
	homeRows map[string][]openlibrary.Book
	rowIdx   int
	colIdx   int

	// Grid state (non-home views)
	cursor int

	// Detail overlay
	selected *openlibrary.Book

	// Search input
	searching   bool
	searchInput textinput.Model

	// Overlays
	showHelp     bool
	showBrowse   bool
	browseCursor int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "Titles, authors, subjects..."
	input.CharLimit = 120
	input.Width = 40

	return Model{
		ctx:         ctx,
		catalog:     opts.Catalog,
		library:     opts.Library,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		view:        ViewHome,
		homeRows:    make(map[string][]openlibrary.Book),
		searchInput: input,
	}
}

// Init implements tea.Model. It kicks off one fetch per home category; the
// completions arrive in whatever order the catalog answers.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	for _, cat := range homeCategories {
		cmds = append(cmds, m.fetchHomeRowCmd(cat))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case homeRowMsg:
		return m.handleHomeRow(msg), nil

	case resultsMsg:
		if msg.seq != m.fetchSeq {
			// Superseded fetch; drop it.
			return m, nil
		}
		m.loading = false
		m.viewBooks = msg.books
		m.cursor = 0
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.selected != nil {
		return m.renderDetail(*m.selected)
	}
	if m.showBrowse {
		return m.renderBrowse()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// Navigation intents

func (m Model) navigateHome() (Model, tea.Cmd) {
	m.view = ViewHome
	m.viewTitle = ""
	m.searching = false
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	return m, nil
}

func (m Model) navigateShelf(view View, status library.Status) (Model, tea.Cmd) {
	m.view = view
	m.viewTitle = status.Title()
	m.viewBooks = nil
	m.loading = false
	m.cursor = 0
	return m, nil
}

func (m Model) navigateCategory(name string) (Model, tea.Cmd) {
	m.view = ViewCategory
	m.viewTitle = name
	m.loading = true
	m.viewBooks = nil
	m.cursor = 0
	m.fetchSeq++
	return m, m.fetchCategoryCmd(m.fetchSeq, name)
}

func (m Model) submitSearch(query string) (Model, tea.Cmd) {
	m.view = ViewSearch
	m.viewTitle = fmt.Sprintf("Results for %q", query)
	m.loading = true
	m.viewBooks = nil
	m.cursor = 0
	m.fetchSeq++
	return m, m.fetchSearchCmd(m.fetchSeq, query)
}

// Messages

type homeRowMsg struct {
	category string
	books    []openlibrary.Book
}

type resultsMsg struct {
	seq   int
	books []openlibrary.Book
}

// Commands

func (m Model) fetchSearchCmd(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		return resultsMsg{seq: seq, books: m.catalog.Search(m.ctx, query)}
	}
}

func (m Model) fetchCategoryCmd(seq int, name string) tea.Cmd {
	return func() tea.Msg {
		return resultsMsg{seq: seq, books: m.catalog.BySubject(m.ctx, strings.ToLower(name), categoryPageLimit)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
