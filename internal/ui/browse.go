package ui

import "strings"

// renderBrowse renders the genre picker overlay.
func (m Model) renderBrowse() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString("\n  " + styles.Title.Render("Browse Genres") + "\n\n")
	for i, genre := range genres {
		if i == m.browseCursor {
			b.WriteString("  " + styles.Selected.Render("▸ "+genre) + "\n")
		} else {
			b.WriteString("    " + styles.Text.Render(genre) + "\n")
		}
	}
	b.WriteString("\n  " + styles.AccentText.Render("<Enter> Open  <Esc> Close") + "\n")
	return b.String()
}
