package ui

import "strings"

// truncate shortens s to at most limit runes, appending an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	if len([]rune(s)) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}

// wrap breaks s into lines no wider than width runes, preserving words.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		wordLen := len([]rune(word))
		if i > 0 {
			if lineLen+1+wordLen > width {
				b.WriteString("\n  ")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += wordLen
	}
	return b.String()
}
