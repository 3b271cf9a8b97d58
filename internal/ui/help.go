package ui

import (
	"strings"
)

func (m Model) renderHelp() string {
	s := m.styles

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Views", [][2]string{
			{"s", "search results"},
			{"f", "filter form"},
			{"p", "pinned listings"},
			{"r", "recently viewed"},
			{"L", "log in"},
		}},
		{"Listings", [][2]string{
			{"enter", "open detail"},
			{"P", "pin / unpin"},
			{"F", "favorite / unfavorite"},
			{"R", "re-run last search"},
		}},
		{"Navigation", [][2]string{
			{"j / down", "move down"},
			{"k / up", "move up"},
			{"g / home", "jump to top"},
			{"G / end", "jump to bottom"},
			{"esc", "back"},
		}},
		{"Other", [][2]string{
			{"T", "cycle theme"},
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(s.AccentText.Bold(true).Render("  Keyboard reference"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(s.Text.Bold(true).Render("  " + section.title))
		b.WriteString("\n")
		for _, entry := range section.keys {
			b.WriteString(s.WarningText.Render("    " + pad(entry[0], 12)))
			b.WriteString(s.MutedText.Render(entry[1]))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(s.FaintText.Render("  press any key to close"))
	return fillLines(b.String(), m.height)
}
