package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bugraisin/emass-tui/internal/liststore"
)

func (m Model) renderPinned() string {
	return m.renderPanel("Pinned listings", m.pinnedItems, m.pinnedSelected, false)
}

func (m Model) renderRecent() string {
	return m.renderPanel("Recently viewed", m.recentItems, m.recentSelected, true)
}

func (m Model) renderPanel(title string, items []liststore.Item, selected int, showViewed bool) string {
	s := m.styles
	height := contentHeight(m.height)

	var b strings.Builder
	b.WriteString(s.AccentText.Bold(true).Render("  " + title))
	b.WriteString(s.MutedText.Render(fmt.Sprintf("  (%d)", len(items))))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(s.MutedText.Render("  Nothing here yet."))
		return fillLines(b.String(), height)
	}

	titleWidth := m.width - 44
	if titleWidth < 10 {
		titleWidth = 10
	}

	for i, item := range items {
		itemTitle := pad(item.Title, titleWidth)
		price := pad(formatPrice(item.Price), 14)
		location := pad(formatLocation(item.District, item.Neighborhood), 20)

		line := s.Text.Render(itemTitle) + " " + s.SuccessText.Render(price) + " " + s.MutedText.Render(location)
		if showViewed && item.ViewedAt != "" {
			if t, err := time.Parse(time.RFC3339, item.ViewedAt); err == nil {
				line += " " + s.FaintText.Render(humanizeSince(t, time.Now()))
			}
		}
		if i == selected {
			line = s.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return fillLines(strings.TrimRight(b.String(), "\n"), height)
}
