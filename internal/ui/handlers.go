package ui

import (
	"log"
	"net/url"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bugraisin/emass-tui/internal/emass"
	"github.com/bugraisin/emass-tui/internal/filter"
	"github.com/bugraisin/emass-tui/internal/lists"
	"github.com/bugraisin/emass-tui/internal/liststore"
	"github.com/bugraisin/emass-tui/internal/prefs"
)

// searchRequest remembers the last issued search so Refresh can re-run it.
type searchRequest struct {
	endpoint filter.Endpoint
	params   url.Values
	all      bool
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits everywhere, including inside text inputs.
	if msg.String() == "ctrl+c" {
		m.teardown()
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.detailOpen {
		return m.handleDetailKey(msg)
	}

	// Form views consume raw input; only escape leaves them.
	switch m.currentView {
	case ViewFilter:
		return m.handleFilterKey(msg)
	case ViewLogin:
		return m.handleLoginKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.ViewResults):
		m.currentView = ViewResults
		return m, nil

	case key.Matches(msg, m.keys.ViewFilter):
		m.currentView = ViewFilter
		m.form.focusFirst()
		return m, nil

	case key.Matches(msg, m.keys.ViewPinned):
		m.currentView = ViewPinned
		return m, nil

	case key.Matches(msg, m.keys.ViewRecent):
		m.currentView = ViewRecent
		return m, nil

	case key.Matches(msg, m.keys.ViewLogin):
		if m.sess.LoggedIn() {
			m.statusLine = "already logged in as " + m.sess.Username
			return m, nil
		}
		m.currentView = ViewLogin
		m.login.focusFirst()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.setSelection(0)
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.setSelection(m.selectionCount() - 1)
		return m, nil

	case key.Matches(msg, m.keys.OpenDetail):
		return m.openSelected()

	case key.Matches(msg, m.keys.TogglePin):
		return m.togglePinSelected()

	case key.Matches(msg, m.keys.ToggleFavorite):
		return m.toggleFavoriteSelected()
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.detailOpen = false
		m.detailListing = nil
		m.detailFavCount = 0
		return m, nil

	case key.Matches(msg, m.keys.TogglePin):
		if m.detailListing != nil {
			m.pinned.Toggle(*m.detailListing)
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		if m.detailListing != nil {
			return m.toggleFavorite(m.detailListing.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.currentView = ViewResults
		return m, nil
	}

	form, cmd, submitted := m.form.handleKey(msg)
	m.form = form
	if !submitted {
		return m, cmd
	}

	endpoint, params := m.form.compile()
	id := m.results.Begin(endpoint, params.Encode())
	m.snapshot = m.results.Snapshot()
	m.lastSearch = searchRequest{endpoint: endpoint, params: params}
	m.currentView = ViewResults
	m.selectedRow = 0
	return m, searchCmd(m.ctx, m.client, id, endpoint, params)
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.currentView = ViewResults
		return m, nil
	}

	form, cmd, submitted := m.login.handleKey(msg)
	m.login = form
	if !submitted {
		return m, cmd
	}

	email, password := m.login.credentials()
	if email == "" || password == "" {
		m.login.fail("email and password are required")
		return m, nil
	}
	return m, loginCmd(m.ctx, m.client, email, password)
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	next := NextTheme(m.theme.Name)
	m.theme = GetTheme(next)
	m.styles = m.theme.Styles()
	m.form.setTheme(m.theme)
	m.login.setTheme(m.theme)
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: next}); err != nil {
		log.Printf("save prefs: %v", err)
	}
	return m, nil
}

// refresh re-runs the last search through a fresh request id so a slow
// previous response cannot overwrite the refreshed results.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.lastSearch.all {
		id := m.results.Begin(filter.House, "")
		m.snapshot = m.results.Snapshot()
		return m, allListingsCmd(m.ctx, m.client, id)
	}
	id := m.results.Begin(m.lastSearch.endpoint, m.lastSearch.params.Encode())
	m.snapshot = m.results.Snapshot()
	return m, searchCmd(m.ctx, m.client, id, m.lastSearch.endpoint, m.lastSearch.params)
}

// selectionCount returns the number of rows in the current list view.
func (m Model) selectionCount() int {
	switch m.currentView {
	case ViewPinned:
		return len(m.pinnedItems)
	case ViewRecent:
		return len(m.recentItems)
	default:
		return len(m.snapshot.Results)
	}
}

func (m *Model) moveSelection(delta int) {
	m.setSelection(m.currentSelection() + delta)
}

func (m *Model) currentSelection() int {
	switch m.currentView {
	case ViewPinned:
		return m.pinnedSelected
	case ViewRecent:
		return m.recentSelected
	default:
		return m.selectedRow
	}
}

func (m *Model) setSelection(row int) {
	count := m.selectionCount()
	if count == 0 {
		row = 0
	} else if row < 0 {
		row = 0
	} else if row >= count {
		row = count - 1
	}
	switch m.currentView {
	case ViewPinned:
		m.pinnedSelected = row
	case ViewRecent:
		m.recentSelected = row
	default:
		m.selectedRow = row
	}
}

func (m *Model) clampSelection() {
	if m.selectedRow >= len(m.snapshot.Results) {
		m.selectedRow = max(0, len(m.snapshot.Results)-1)
	}
}

// selectedListing returns the listing under the cursor in the results view.
func (m Model) selectedListing() (emass.Listing, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Results) {
		return emass.Listing{}, false
	}
	return m.snapshot.Results[m.selectedRow], true
}

func (m Model) selectedPanelItem() (liststore.Item, bool) {
	var items []liststore.Item
	var row int
	switch m.currentView {
	case ViewPinned:
		items, row = m.pinnedItems, m.pinnedSelected
	case ViewRecent:
		items, row = m.recentItems, m.recentSelected
	default:
		return liststore.Item{}, false
	}
	if row < 0 || row >= len(items) {
		return liststore.Item{}, false
	}
	return items[row], true
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewPinned, ViewRecent:
		// Panel items only carry summary fields, so the full listing is
		// fetched before opening the detail view.
		item, ok := m.selectedPanelItem()
		if !ok {
			return m, nil
		}
		return m, fetchListingCmd(m.ctx, m.client, item.ID)
	default:
		listing, ok := m.selectedListing()
		if !ok {
			return m, nil
		}
		return m.openDetail(listing)
	}
}

func (m Model) openDetail(listing emass.Listing) (tea.Model, tea.Cmd) {
	m.detailOpen = true
	m.detailListing = &listing
	m.detailFavCount = 0
	m.detailViewport.GotoTop()
	m.recent.Add(listing)
	m.refreshDetailContent()
	return m, favoriteCountCmd(m.ctx, m.client, listing.ID)
}

func (m Model) togglePinSelected() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewPinned:
		item, ok := m.selectedPanelItem()
		if !ok {
			return m, nil
		}
		m.pinned.Remove(item.ID)
		return m, nil
	case ViewRecent:
		item, ok := m.selectedPanelItem()
		if !ok {
			return m, nil
		}
		m.pinned.Toggle(lists.ListingFromItem(item))
		return m, nil
	default:
		listing, ok := m.selectedListing()
		if !ok {
			return m, nil
		}
		m.pinned.Toggle(listing)
		return m, nil
	}
}

func (m Model) toggleFavoriteSelected() (tea.Model, tea.Cmd) {
	var id string
	if item, ok := m.selectedPanelItem(); ok {
		id = item.ID
	} else if listing, ok := m.selectedListing(); ok {
		id = listing.ID
	} else {
		return m, nil
	}
	return m.toggleFavorite(id)
}

func (m Model) toggleFavorite(listingID string) (tea.Model, tea.Cmd) {
	if !m.sess.LoggedIn() {
		m.statusLine = "log in to favorite listings"
		m.currentView = ViewLogin
		m.login.focusFirst()
		return m, nil
	}
	return m, toggleFavoriteCmd(m.ctx, m.favorites, listingID, m.sess.UserID)
}
