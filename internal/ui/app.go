// Package ui provides the Bubble Tea terminal interface for browsing emass
// listings: search results, listing detail, the filter form, and the pinned,
// recent, and login views.
package ui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bugraisin/emass-tui/internal/config"
	"github.com/bugraisin/emass-tui/internal/emass"
	"github.com/bugraisin/emass-tui/internal/filter"
	"github.com/bugraisin/emass-tui/internal/lists"
	"github.com/bugraisin/emass-tui/internal/liststore"
	"github.com/bugraisin/emass-tui/internal/prefs"
	"github.com/bugraisin/emass-tui/internal/session"
	"github.com/bugraisin/emass-tui/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewResults View = iota
	ViewFilter
	ViewPinned
	ViewRecent
	ViewLogin
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *emass.Client
	Favorites *emass.FavoritesClient
	Results   *state.Store
	Pinned    *lists.Pinned
	Recent    *lists.Recent
	Config    *config.Config
	Session   emass.Session
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *emass.Client
	favorites *emass.FavoritesClient
	results   *state.Store
	pinned    *lists.Pinned
	recent    *lists.Recent
	config    *config.Config
	prefsPath string

	// UI state
	theme       Theme
	styles      Styles
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	statusLine  string

	// Data state
	sess        emass.Session
	snapshot    state.Snapshot
	favoriteIDs map[string]bool

	// Results state
	selectedRow int
	lastSearch  searchRequest

	// Detail state
	detailOpen     bool
	detailListing  *emass.Listing
	detailFavCount int64
	detailViewport viewport.Model

	// Panel state
	pinnedItems    []liststore.Item
	recentItems    []liststore.Item
	pinnedSelected int
	recentSelected int

	// Forms
	form  filterForm
	login loginForm

	// Store notifications arrive on this channel and are re-armed after
	// every delivery. Subscriptions are released through unsubs on quit.
	events chan tea.Msg
	unsubs []func()
}

// New creates a new Bubble Tea model and wires the store subscriptions.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:         ctx,
		styles:      theme.Styles(),
		client:      opts.Client,
		favorites:   opts.Favorites,
		results:     opts.Results,
		pinned:      opts.Pinned,
		recent:      opts.Recent,
		config:      opts.Config,
		prefsPath:   prefsPath,
		theme:       theme,
		keys:        DefaultKeyMap(),
		currentView: ViewResults,
		sess:        opts.Session,
		favoriteIDs: make(map[string]bool),
		form:        newFilterForm(theme),
		login:       newLoginForm(theme),
		lastSearch:  searchRequest{all: true},
		events:      make(chan tea.Msg, 16),
	}

	events := m.events
	push := func(msg tea.Msg) {
		select {
		case events <- msg:
		default:
			// A full channel means a burst of notifications; the panels
			// re-read on the next delivery anyway.
		}
	}

	if m.pinned != nil {
		m.pinnedItems = m.pinned.GetAll()
		m.unsubs = append(m.unsubs, m.pinned.Subscribe(func(items []liststore.Item) {
			push(pinnedChangedMsg(items))
		}))
	}
	if m.recent != nil {
		m.recentItems = m.recent.GetAll()
		m.unsubs = append(m.unsubs, m.recent.Subscribe(func(items []liststore.Item) {
			push(recentChangedMsg(items))
		}))
	}
	if m.favorites != nil {
		m.unsubs = append(m.unsubs, m.favorites.Subscribe(func() {
			push(favoritesChangedMsg{})
		}))
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		waitEventCmd(m.events),
	}
	// Populate the results view before the first search.
	if m.client != nil && m.results != nil {
		id := m.results.Begin(filter.House, "")
		cmds = append(cmds, allListingsCmd(m.ctx, m.client, id))
	}
	if m.sess.LoggedIn() && m.favorites != nil {
		cmds = append(cmds, fetchFavoriteIDsCmd(m.ctx, m.favorites, m.sess.UserID))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, contentHeight(msg.Height))
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = contentHeight(msg.Height)
		}
		m.ready = true
		m.refreshDetailContent()
		return m, nil

	case searchResultMsg:
		if applied := m.results.Update(msg.id, msg.listings, msg.err); applied {
			m.snapshot = m.results.Snapshot()
			m.clampSelection()
			if msg.err != nil {
				log.Printf("search failed: %v", msg.err)
			}
		}
		return m, nil

	case pinnedChangedMsg:
		m.pinnedItems = []liststore.Item(msg)
		if m.pinnedSelected >= len(m.pinnedItems) {
			m.pinnedSelected = max(0, len(m.pinnedItems)-1)
		}
		return m, waitEventCmd(m.events)

	case recentChangedMsg:
		m.recentItems = []liststore.Item(msg)
		if m.recentSelected >= len(m.recentItems) {
			m.recentSelected = max(0, len(m.recentItems)-1)
		}
		return m, waitEventCmd(m.events)

	case favoritesChangedMsg:
		cmds := []tea.Cmd{waitEventCmd(m.events)}
		if m.sess.LoggedIn() && m.favorites != nil {
			cmds = append(cmds, fetchFavoriteIDsCmd(m.ctx, m.favorites, m.sess.UserID))
		}
		return m, tea.Batch(cmds...)

	case favoriteIDsMsg:
		if msg.err != nil {
			// Keep the previous set; the next change re-fetches.
			log.Printf("fetch favorites failed: %v", msg.err)
			return m, nil
		}
		m.favoriteIDs = msg.ids
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			log.Printf("favorite toggle failed: %v", msg.err)
			m.statusLine = "favorite toggle failed, kept previous state"
		} else {
			m.statusLine = ""
		}
		return m, nil

	case favoriteCountMsg:
		if msg.err == nil && m.detailListing != nil && m.detailListing.ID == msg.id {
			m.detailFavCount = msg.count
			m.refreshDetailContent()
		}
		return m, nil

	case listingFetchedMsg:
		if msg.err != nil {
			log.Printf("fetch listing failed: %v", msg.err)
			m.statusLine = "could not load listing"
			return m, nil
		}
		return m.openDetail(*msg.listing)

	case loginResultMsg:
		if msg.err != nil {
			m.login.fail("login failed, check your credentials")
			log.Printf("login failed: %v", msg.err)
			return m, nil
		}
		m.sess = *msg.sess
		m.client.SetToken(m.sess.Token)
		if err := session.Save(m.config.SessionPath(), m.sess); err != nil {
			log.Printf("save session: %v", err)
		}
		m.currentView = ViewResults
		m.statusLine = "logged in as " + m.sess.Username
		return m, fetchFavoriteIDsCmd(m.ctx, m.favorites, m.sess.UserID)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderContent() string {
	if m.detailOpen {
		return m.renderDetail()
	}
	switch m.currentView {
	case ViewResults:
		return m.renderResults()
	case ViewFilter:
		return m.form.render(m.width, contentHeight(m.height))
	case ViewPinned:
		return m.renderPinned()
	case ViewRecent:
		return m.renderRecent()
	case ViewLogin:
		return m.login.render(m.width, contentHeight(m.height))
	default:
		return ""
	}
}

// contentHeight leaves room for the header and footer lines.
func contentHeight(total int) int {
	if total <= 2 {
		return 1
	}
	return total - 2
}

// teardown releases every store subscription.
func (m *Model) teardown() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
