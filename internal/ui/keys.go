package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bookflix/internal/library"
	"bookflix/internal/openlibrary"
	"bookflix/internal/prefs"
)

// handleKey processes keyboard input. Overlays capture keys before the
// global bindings do.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.selected != nil {
		return m.handleDetailKey(msg)
	}

	if m.showBrowse {
		return m.handleBrowseKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "/", "s":
		m.searching = true
		m.searchInput.Focus()
		return m, nil

	case "b":
		m.showBrowse = true
		m.browseCursor = 0
		return m, nil

	case "w":
		next, cmd := m.navigateShelf(ViewWantIt, library.StatusWantIt)
		return next, cmd

	case "t":
		next, cmd := m.navigateShelf(ViewTBR, library.StatusTBR)
		return next, cmd

	case "r":
		next, cmd := m.navigateShelf(ViewHistory, library.StatusCompleted)
		return next, cmd

	case "esc", "H":
		next, cmd := m.navigateHome()
		return next, cmd
	}

	if m.view == ViewHome {
		return m.handleHomeKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleHomeKey moves the home cursor across rows and books.
func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.buildHomeRows()
	if len(rows) == 0 {
		return m, nil
	}
	if m.rowIdx >= len(rows) {
		m.rowIdx = len(rows) - 1
	}

	switch msg.String() {
	case "j", "down":
		if m.rowIdx < len(rows)-1 {
			m.rowIdx++
			m.colIdx = 0
		}
	case "k", "up":
		if m.rowIdx > 0 {
			m.rowIdx--
			m.colIdx = 0
		}
	case "l", "right":
		if m.colIdx < len(rows[m.rowIdx].books)-1 {
			m.colIdx++
		}
	case "h", "left":
		if m.colIdx > 0 {
			m.colIdx--
		}
	case "o":
		// Open the focused row as a full page.
		return m.openRowTarget(rows[m.rowIdx].target)
	case "enter":
		row := rows[m.rowIdx]
		if m.colIdx < len(row.books) {
			book := row.books[m.colIdx]
			m.selected = &book
		} else if m.featured != nil {
			hero := *m.featured
			m.selected = &hero
		}
	case "f":
		if m.featured != nil {
			hero := *m.featured
			m.selected = &hero
		}
	}

	return m, nil
}

// handleGridKey moves the cursor within a full-page book grid.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	books := m.currentBooks()
	count := len(books)
	if count == 0 {
		return m, nil
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < count-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = count - 1
	case "enter":
		book := books[m.cursor]
		m.selected = &book
	}

	return m, nil
}

// handleSearchKey feeds keys into the search input until the query is
// submitted or abandoned.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		m.searching = false
		m.searchInput.Blur()
		next, cmd := m.submitSearch(query)
		return next, cmd

	case "esc":
		m.searching = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleBrowseKey drives the genre overlay.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.browseCursor < len(genres)-1 {
			m.browseCursor++
		}
	case "k", "up":
		if m.browseCursor > 0 {
			m.browseCursor--
		}
	case "enter":
		m.showBrowse = false
		return m.navigateCategory(genres[m.browseCursor])
	case "esc", "b":
		m.showBrowse = false
	}
	return m, nil
}

// currentBooks returns the book list behind the active full-page view.
func (m Model) currentBooks() []openlibrary.Book {
	switch m.view {
	case ViewWantIt:
		return m.library.ByStatus(library.StatusWantIt)
	case ViewTBR:
		return m.library.ByStatus(library.StatusTBR)
	case ViewHistory:
		return m.library.ByStatus(library.StatusCompleted)
	default:
		return m.viewBooks
	}
}
