package ui

import "strings"

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	bindings := []struct{ key, desc string }{
		{"/ or s", "Search the catalog"},
		{"b", "Browse genres"},
		{"w", "Want It shelf"},
		{"t", "To Be Read shelf"},
		{"r", "Read history"},
		{"Esc or H", "Home"},
		{"j/k, arrows", "Move selection"},
		{"h/l, arrows", "Move along a home row"},
		{"o", "Open focused home row as a page"},
		{"f", "Featured book details"},
		{"Enter", "Book details"},
		{"w/t/r/c (details)", "Toggle reading status"},
		{"T", "Cycle theme"},
		{"q or Ctrl+C", "Quit"},
	}

	var b strings.Builder
	b.WriteString("\n  " + styles.Title.Render("BookFlix Help") + "\n\n")
	for _, binding := range bindings {
		b.WriteString("  " + styles.AccentText.Render(pad(binding.key, 20)) + styles.Text.Render(binding.desc) + "\n")
	}
	b.WriteString("\n  " + styles.MutedText.Render("Press any key to close.") + "\n")
	return b.String()
}
