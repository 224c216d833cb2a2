package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bookflix/internal/library"
	"bookflix/internal/openlibrary"
)

// handleDetailKey processes keys while the detail overlay is open. Pressing
// a status key that matches the book's current status clears it.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	book := *m.selected

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "enter":
		m.selected = nil
		return m, nil

	case "w":
		m.toggleStatus(book, library.StatusWantIt)
	case "t":
		m.toggleStatus(book, library.StatusTBR)
	case "r":
		m.toggleStatus(book, library.StatusReading)
	case "c":
		m.toggleStatus(book, library.StatusCompleted)
	}

	return m, nil
}

// toggleStatus sets the status, or clears it when it is already active.
func (m Model) toggleStatus(book openlibrary.Book, status library.Status) {
	if item, ok := m.library.Get(book.ID); ok && item.Status == status {
		m.library.SetStatus(book, library.StatusNone)
		return
	}
	m.library.SetStatus(book, status)
}

// renderDetail renders the full-screen detail overlay for a book.
func (m Model) renderDetail(book openlibrary.Book) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString("\n  " + styles.Title.Render(book.Title) + "\n")

	meta := strings.Join(book.Authors, ", ")
	if book.FirstPublishYear > 0 {
		meta = fmt.Sprintf("%s  •  %d", meta, book.FirstPublishYear)
	}
	b.WriteString("  " + styles.MutedText.Render(meta) + "\n\n")

	description := book.Description
	if description == "" {
		description = "No description available for this title. Visit Open Library for more details about this edition and its authors."
	}
	b.WriteString("  " + styles.Text.Render(wrap(description, max(m.width-4, 40))) + "\n\n")

	if len(book.Subjects) > 0 {
		b.WriteString("  " + styles.FaintText.Render("Subjects: "+strings.Join(book.Subjects, ", ")) + "\n")
	}
	b.WriteString("  " + styles.FaintText.Render("Read at: https://openlibrary.org"+book.ID) + "\n\n")

	// Status toggles, active one highlighted.
	current := library.StatusNone
	if item, ok := m.library.Get(book.ID); ok {
		current = item.Status
	}

	keys := []struct {
		key    string
		status library.Status
	}{
		{"w", library.StatusWantIt},
		{"t", library.StatusTBR},
		{"r", library.StatusReading},
		{"c", library.StatusCompleted},
	}

	var toggles []string
	for _, k := range keys {
		label := fmt.Sprintf("<%s> %s", k.key, k.status)
		if current == k.status {
			toggles = append(toggles, styles.StatusStyle(k.status).Render(label))
		} else {
			toggles = append(toggles, styles.MutedText.Render(label))
		}
	}
	b.WriteString("  " + strings.Join(toggles, "  ") + "\n")
	if current != library.StatusNone {
		b.WriteString("  " + styles.FaintText.Render("Press the active status again to remove it from your library.") + "\n")
	}

	b.WriteString("\n  " + styles.AccentText.Render("<Esc> Close") + "\n")
	return b.String()
}
