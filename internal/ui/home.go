package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bookflix/internal/library"
	"bookflix/internal/openlibrary"
)

// homeCategories drive the home page rows. Underscores survive into the
// subject query; the display name swaps them for spaces.
var homeCategories = []string{"Trending", "Fantasy", "Science_Fiction", "History", "Thriller"}

// genres back the browse overlay.
var genres = []string{
	"Fantasy", "Science Fiction", "Thriller", "Romance",
	"Mystery", "Horror", "History", "Biography", "Children", "Art",
}

const (
	homeRowLimit      = 15
	categoryPageLimit = 40
)

func displayName(category string) string {
	return strings.ReplaceAll(category, "_", " ")
}

func (m Model) fetchHomeRowCmd(category string) tea.Cmd {
	return func() tea.Msg {
		books := m.catalog.BySubject(m.ctx, strings.ToLower(category), homeRowLimit)
		return homeRowMsg{category: displayName(category), books: books}
	}
}

// handleHomeRow stores an arriving category row and promotes its first book
// to the hero slot when no featured book exists yet. Whichever non-empty
// row arrives first wins, regardless of request order.
func (m Model) handleHomeRow(msg homeRowMsg) Model {
	m.homeRows[msg.category] = msg.books
	if m.featured == nil && len(msg.books) > 0 {
		hero := msg.books[0]
		m.featured = &hero
	}
	return m
}

// homeRow is one horizontal shelf on the home page.
type homeRow struct {
	title  string
	books  []openlibrary.Book
	target rowTarget
}

// rowTarget describes where a row's title leads.
type rowTarget struct {
	view     View
	status   library.Status
	category string
}

// buildHomeRows assembles the visible home rows: personal shelves first,
// then the fetched category rows, then read history. Empty personal
// shelves are hidden; category rows render even while empty.
func (m Model) buildHomeRows() []homeRow {
	var rows []homeRow

	if books := m.library.ByStatus(library.StatusReading); len(books) > 0 {
		rows = append(rows, homeRow{
			title:  "Continue Reading",
			books:  books,
			target: rowTarget{view: ViewTBR, status: library.StatusTBR},
		})
	}
	if books := m.library.ByStatus(library.StatusTBR); len(books) > 0 {
		rows = append(rows, homeRow{
			title:  "Up Next (TBR)",
			books:  books,
			target: rowTarget{view: ViewTBR, status: library.StatusTBR},
		})
	}
	if books := m.library.ByStatus(library.StatusWantIt); len(books) > 0 {
		rows = append(rows, homeRow{
			title:  "Wishlist (Want It)",
			books:  books,
			target: rowTarget{view: ViewWantIt, status: library.StatusWantIt},
		})
	}

	for _, cat := range homeCategories {
		name := displayName(cat)
		rows = append(rows, homeRow{
			title:  name,
			books:  m.homeRows[name],
			target: rowTarget{view: ViewCategory, category: name},
		})
	}

	if books := m.library.ByStatus(library.StatusCompleted); len(books) > 0 {
		rows = append(rows, homeRow{
			title:  "Read Again",
			books:  books,
			target: rowTarget{view: ViewHistory, status: library.StatusCompleted},
		})
	}

	return rows
}

// openRowTarget navigates to the full page behind a home row title.
func (m Model) openRowTarget(target rowTarget) (Model, tea.Cmd) {
	switch target.view {
	case ViewCategory:
		return m.navigateCategory(target.category)
	case ViewWantIt, ViewTBR, ViewHistory:
		return m.navigateShelf(target.view, target.status)
	}
	return m, nil
}
