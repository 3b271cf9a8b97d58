package ui

import (
	"fmt"
	"strings"
	"time"
)

func (m Model) renderDetail() string {
	return fillLines(m.detailViewport.View(), contentHeight(m.height))
}

// refreshDetailContent rebuilds the viewport content from the open listing.
func (m *Model) refreshDetailContent() {
	if !m.ready || m.detailListing == nil {
		return
	}
	s := m.styles
	l := m.detailListing

	var b strings.Builder
	b.WriteString(s.BadgeStyle(l.ListingType).Render(l.ListingType))
	b.WriteString(" ")
	b.WriteString(s.Text.Bold(true).Render(l.Title))
	b.WriteString("\n\n")

	b.WriteString(s.SuccessText.Render(formatPrice(l.Price)))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(s.MutedText.Render(pad(label, 14)))
		b.WriteString(s.Text.Render(value))
		b.WriteString("\n")
	}

	writeField("Type", l.PropertyType)
	writeField("Subtype", l.Subtype)
	writeField("City", l.City)
	writeField("District", l.District)
	writeField("Neighborhood", l.Neighborhood)
	if t := l.ParsedCreatedAt(); !t.IsZero() {
		writeField("Listed", humanizeSince(t, time.Now()))
	}
	if m.detailFavCount > 0 {
		writeField("Favorites", fmt.Sprintf("%d", m.detailFavCount))
	}
	if m.pinned.IsPinned(l.ID) {
		writeField("Pinned", "yes")
	}
	if m.favoriteIDs[l.ID] {
		writeField("Favorited", "yes")
	}

	if l.Description != "" {
		b.WriteString("\n")
		b.WriteString(s.Text.Render(wrap(l.Description, m.width-2)))
		b.WriteString("\n")
	}

	if len(l.Photos) > 0 {
		b.WriteString("\n")
		b.WriteString(s.MutedText.Render(fmt.Sprintf("%d photos", len(l.Photos))))
		b.WriteString("\n")
		for _, p := range l.Photos {
			b.WriteString(s.FaintText.Render("  " + p.URL))
			b.WriteString("\n")
		}
	}

	m.detailViewport.SetContent(b.String())
}

// wrap breaks text into lines no wider than width runes, on word boundaries.
func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		wordLen := len([]rune(word))
		if lineLen > 0 && lineLen+1+wordLen > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += wordLen
	}
	return b.String()
}
