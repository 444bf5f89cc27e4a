package pickerui

import (
	"fmt"
	"strings"

	"github.com/grovetools/quicknav/tui/theme"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	// Calculate visible items based on terminal height
	visibleHeight := m.height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	// Determine visible range, keeping the cursor centered when scrolling
	start := 0
	end := len(m.visible)
	if end > visibleHeight {
		if m.cursor < visibleHeight/2 {
			start = 0
		} else if m.cursor >= len(m.visible)-visibleHeight/2 {
			start = len(m.visible) - visibleHeight
		} else {
			start = m.cursor - visibleHeight/2
		}

		end = start + visibleHeight
		if end > len(m.visible) {
			end = len(m.visible)
		}
		if start < 0 {
			start = 0
		}
	}

	for i := start; i < end && i < len(m.visible); i++ {
		entry := m.visible[i]
		item := m.items[entry.index]
		isSelected := i == m.cursor

		if item.Separator {
			b.WriteString("  ")
			b.WriteString(theme.DefaultTheme.Separator.Render(separatorLine(item.Label, m.width)))
			b.WriteString("\n")
			continue
		}

		var line strings.Builder
		if isSelected {
			line.WriteString(theme.DefaultTheme.Highlight.Render("▶ "))
		} else {
			line.WriteString("  ")
		}

		label := item.Label
		if m.labelMatchingEnabled && len(entry.matched) > 0 {
			label = highlightMatched(label, entry.matched)
		}

		if isSelected {
			line.WriteString(theme.DefaultTheme.Selected.Render(label))
		} else {
			line.WriteString(label)
		}

		if item.Description != "" {
			line.WriteString(" ")
			line.WriteString(theme.DefaultTheme.Muted.Render(item.Description))
		}

		b.WriteString(line.String())
		b.WriteString("\n")
	}

	if start > 0 || end < len(m.visible) {
		b.WriteString(theme.DefaultTheme.Muted.Render(
			fmt.Sprintf(" (%d-%d of %d)", start+1, end, len(m.visible))))
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(theme.DefaultTheme.Muted.Render("No results"))
		b.WriteString("\n")
	}

	if item, ok := m.Selected(); ok && item.Detail != "" {
		b.WriteString("\n")
		b.WriteString(theme.DefaultTheme.Muted.Render(item.Detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.DefaultTheme.Muted.Render("enter: go to • alt+enter: open to the side • esc: cancel"))

	return b.String()
}

// highlightMatched renders the runes at the matched indexes with the success
// style, mirroring how the filter scored the label.
func highlightMatched(label string, matched []int) string {
	matchedSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchedSet[idx] = true
	}

	var b strings.Builder
	for i, r := range label {
		if matchedSet[i] {
			b.WriteString(theme.DefaultTheme.Success.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// separatorLine renders a labeled divider sized to the picker width.
func separatorLine(label string, width int) string {
	if width <= 0 {
		width = 60
	}
	if label == "" {
		return strings.Repeat("─", width-4)
	}
	rest := width - len(label) - 8
	if rest < 2 {
		rest = 2
	}
	return fmt.Sprintf("── %s %s", label, strings.Repeat("─", rest))
}
