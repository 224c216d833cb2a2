package ui

import (
	"fmt"
	"strings"

	"bookflix/internal/library"
	"bookflix/internal/openlibrary"
)

// renderHeader renders the top status bar: logo, current view, shelf counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("BOOKFLIX"),
		styles.MutedText.Render(m.viewLabel()),
	}

	counts := fmt.Sprintf("Library: %d", m.library.Len())
	parts = append(parts, styles.FaintText.Render(counts))

	if m.loading {
		parts = append(parts, styles.WarningText.Render("Loading..."))
	}

	return styles.Header.Width(max(m.width, 0)).Render(strings.Join(parts, "  •  "))
}

func (m Model) viewLabel() string {
	switch m.view {
	case ViewHome:
		return "Home"
	case ViewSearch, ViewCategory:
		return m.viewTitle
	case ViewWantIt:
		return "Want It"
	case ViewTBR:
		return "To Be Read"
	case ViewHistory:
		return "Read History"
	default:
		return ""
	}
}

// renderCommandBar renders the single-line key hint bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd
	if m.searching {
		commands = []cmd{
			{"Enter", "Search"},
			{"Esc", "Cancel"},
		}
	} else if m.view == ViewHome {
		commands = []cmd{
			{"</>", "Search"},
			{"<b>", "Browse"},
			{"<o>", "Open Row"},
			{"<w>", "Want It"},
			{"<t>", "TBR"},
			{"<r>", "History"},
			{"<?>", "Help"},
			{"<q>", "Quit"},
		}
	} else {
		commands = []cmd{
			{"</>", "Search"},
			{"<b>", "Browse"},
			{"<Esc>", "Home"},
			{"<Enter>", "Details"},
			{"<?>", "Help"},
			{"<q>", "Quit"},
		}
	}

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments, styles.AccentText.Render(c.key)+" "+styles.MutedText.Render(c.desc))
	}
	bar := strings.Join(segments, "  ")

	if m.searching {
		return bar + "  " + m.searchInput.View()
	}
	return bar
}

// renderContent renders the main content area based on the current view.
func (m Model) renderContent() string {
	switch m.view {
	case ViewHome:
		return m.renderHome()
	case ViewSearch:
		return m.renderGrid(m.viewBooks, "No books found matching your search.")
	case ViewCategory:
		return m.renderGrid(m.viewBooks, fmt.Sprintf("No books found in %s.", m.viewTitle))
	case ViewWantIt:
		return m.renderGrid(m.library.ByStatus(library.StatusWantIt), "Your wishlist is empty.")
	case ViewTBR:
		return m.renderTBR()
	case ViewHistory:
		return m.renderGrid(m.library.ByStatus(library.StatusCompleted), "You haven't finished any books yet.")
	default:
		return ""
	}
}

// renderHome renders the hero plus the horizontal shelves.
func (m Model) renderHome() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHero())
	b.WriteString("\n")

	rows := m.buildHomeRows()
	for i, row := range rows {
		title := row.title
		if i == m.rowIdx {
			b.WriteString(styles.Title.Render("▸ " + title))
		} else {
			b.WriteString(styles.MutedText.Render("  " + title))
		}
		b.WriteString("\n")
		b.WriteString(m.renderShelf(row.books, i == m.rowIdx))
		b.WriteString("\n")
	}

	return b.String()
}

// renderHero renders the featured book banner.
func (m Model) renderHero() string {
	styles := m.theme.Styles()

	if m.featured == nil {
		return styles.FaintText.Render("  Fetching tonight's featured book...") + "\n"
	}

	book := *m.featured
	var b strings.Builder
	b.WriteString("  " + styles.Title.Render(book.Title))
	meta := strings.Join(book.Authors, ", ")
	if book.FirstPublishYear > 0 {
		meta = fmt.Sprintf("%s  (%d)", meta, book.FirstPublishYear)
	}
	b.WriteString("\n  " + styles.MutedText.Render(meta))
	if book.Description != "" {
		b.WriteString("\n  " + styles.FaintText.Render(truncate(book.Description, 90)))
	}
	b.WriteString("\n  " + styles.AccentText.Render("<f> More Info"))
	b.WriteString("\n")
	return b.String()
}

// renderShelf renders one horizontal row of titles.
func (m Model) renderShelf(books []openlibrary.Book, focused bool) string {
	styles := m.theme.Styles()

	if len(books) == 0 {
		return "    " + styles.FaintText.Render("· · ·") + "\n"
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var cells []string
	used := 4
	for i, book := range books {
		label := truncate(book.Title, 22)
		var cell string
		if focused && i == m.colIdx {
			cell = styles.Selected.Render(" " + label + " ")
		} else {
			cell = styles.Text.Render(" " + label + " ")
		}
		used += len(label) + 4
		if used > width && len(cells) > 0 {
			cells = append(cells, styles.FaintText.Render("…"))
			break
		}
		cells = append(cells, cell)
	}

	return "    " + strings.Join(cells, styles.FaintText.Render("│")) + "\n"
}

// renderGrid renders a vertical book list with a cursor, or an empty state.
func (m Model) renderGrid(books []openlibrary.Book, emptyMessage string) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString("  " + styles.Title.Render(m.viewTitle) + "\n\n")

	if m.loading {
		b.WriteString("  " + styles.WarningText.Render("Loading...") + "\n")
		return b.String()
	}
	if len(books) == 0 {
		b.WriteString("  " + styles.MutedText.Render(emptyMessage) + "\n")
		return b.String()
	}

	cursor := m.cursor
	if cursor >= len(books) {
		cursor = len(books) - 1
	}

	for i, book := range books {
		line := m.formatGridLine(book)
		if i == cursor {
			b.WriteString("  " + styles.Selected.Render("▸ "+line))
		} else {
			b.WriteString("    " + styles.Text.Render(line))
		}
		b.WriteString(m.renderStatusBadge(book))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTBR renders the TBR page with the currently-reading shelf on top.
func (m Model) renderTBR() string {
	styles := m.theme.Styles()
	var b strings.Builder

	if reading := m.library.ByStatus(library.StatusReading); len(reading) > 0 {
		b.WriteString("  " + styles.Title.Render("Currently Reading") + "\n")
		b.WriteString(m.renderShelf(reading, false))
		b.WriteString("\n")
	}

	b.WriteString(m.renderGrid(
		m.library.ByStatus(library.StatusTBR),
		"You haven't added any books to your TBR shelf yet.",
	))
	return b.String()
}

func (m Model) formatGridLine(book openlibrary.Book) string {
	line := truncate(book.Title, 48)
	if len(book.Authors) > 0 {
		line += " — " + truncate(strings.Join(book.Authors, ", "), 32)
	}
	if book.FirstPublishYear > 0 {
		line += fmt.Sprintf(" (%d)", book.FirstPublishYear)
	}
	return line
}

func (m Model) renderStatusBadge(book openlibrary.Book) string {
	item, ok := m.library.Get(book.ID)
	if !ok {
		return ""
	}
	return "  " + m.theme.Styles().StatusStyle(item.Status).Render(string(item.Status))
}
