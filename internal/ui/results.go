package ui

import (
	"strings"
)

func (m Model) renderResults() string {
	s := m.styles
	height := contentHeight(m.height)

	if m.snapshot.Searching && len(m.snapshot.Results) == 0 {
		return fillLines(s.MutedText.Render("  Searching…"), height)
	}
	if len(m.snapshot.Results) == 0 {
		msg := "  No listings found. Press f to adjust the filters."
		if m.snapshot.LastError != nil {
			msg = "  Search failed. Press R to retry."
		}
		return fillLines(s.MutedText.Render(msg), height)
	}

	// The cursor stays visible by scrolling the row window around it.
	first := 0
	if m.selectedRow >= height {
		first = m.selectedRow - height + 1
	}

	titleWidth := m.width - 46
	if titleWidth < 10 {
		titleWidth = 10
	}

	var b strings.Builder
	rows := 0
	for i := first; i < len(m.snapshot.Results) && rows < height; i++ {
		l := m.snapshot.Results[i]

		badge := s.BadgeStyle(l.ListingType).Render(pad(l.ListingType, 4))
		marker := " "
		if m.pinned.IsPinned(l.ID) {
			marker = s.AccentText.Render("●")
		}
		fav := " "
		if m.favoriteIDs[l.ID] {
			fav = s.DangerText.Render("♥")
		}

		title := pad(l.Title, titleWidth)
		price := pad(formatPrice(l.Price), 14)
		location := pad(formatLocation(l.District, l.Neighborhood), 24)

		line := marker + fav + " " + badge + " " + title + " " + s.SuccessText.Render(price) + " " + s.MutedText.Render(location)
		if i == m.selectedRow {
			line = s.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
		rows++
	}
	return fillLines(strings.TrimRight(b.String(), "\n"), height)
}

// fillLines pads content with blank lines to exactly height lines so the
// footer stays anchored to the bottom.
func fillLines(content string, height int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
