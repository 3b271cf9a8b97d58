package ui

import (
	"fmt"
	"strings"
	"time"
)

func (m Model) renderHeader() string {
	s := m.styles

	left := s.Logo.Render("emass")

	var parts []string
	switch {
	case m.snapshot.Searching:
		parts = append(parts, s.WarningText.Render("searching…"))
	case m.snapshot.IsOffline():
		parts = append(parts, s.DangerText.Render("offline"))
	case m.snapshot.LastError != nil:
		parts = append(parts, s.WarningText.Render("last search failed"))
	}

	parts = append(parts, s.Text.Render(fmt.Sprintf("%d results", len(m.snapshot.Results))))
	parts = append(parts, s.MutedText.Render(fmt.Sprintf("%d pinned", len(m.pinnedItems))))

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, s.FaintText.Render("updated "+humanizeSince(m.snapshot.LastUpdated, time.Now())))
	}

	if m.sess.LoggedIn() {
		parts = append(parts, s.SuccessText.Render(m.sess.Username))
	} else {
		parts = append(parts, s.MutedText.Render("not logged in"))
	}

	line := left + "  " + strings.Join(parts, s.FaintText.Render(" · "))
	return s.Header.Width(m.width).Render(line)
}

func (m Model) renderFooter() string {
	s := m.styles

	if m.statusLine != "" {
		return s.Footer.Width(m.width).Render(s.WarningText.Render(m.statusLine))
	}

	var hints []string
	if m.detailOpen {
		hints = []string{"esc back", "P pin", "F favorite", "j/k scroll"}
	} else {
		switch m.currentView {
		case ViewFilter:
			hints = []string{"tab next field", "enter search", "esc cancel"}
		case ViewLogin:
			hints = []string{"tab next field", "enter log in", "esc cancel"}
		case ViewPinned:
			hints = []string{"enter open", "P unpin", "F favorite", "s results"}
		case ViewRecent:
			hints = []string{"enter open", "P pin", "s results"}
		default:
			hints = []string{"enter open", "f filter", "p pinned", "r recent", "P pin", "F favorite", "? help"}
		}
	}
	return s.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}
