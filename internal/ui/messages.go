package ui

import (
	"context"
	"net/url"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/bugraisin/emass-tui/internal/emass"
	"github.com/bugraisin/emass-tui/internal/filter"
	"github.com/bugraisin/emass-tui/internal/liststore"
)

// searchResultMsg carries the outcome of a search request. The id ties the
// response back to the request that issued it so a stale response is dropped
// instead of overwriting a newer one.
type searchResultMsg struct {
	id       uuid.UUID
	listings []emass.Listing
	err      error
}

type pinnedChangedMsg []liststore.Item

type recentChangedMsg []liststore.Item

// favoritesChangedMsg signals that a favorite was added or removed; the set
// of favorite ids is re-fetched from the server on receipt.
type favoritesChangedMsg struct{}

type favoriteIDsMsg struct {
	ids map[string]bool
	err error
}

type favoriteToggledMsg struct {
	id        string
	favorited bool
	err       error
}

type favoriteCountMsg struct {
	id    string
	count int64
	err   error
}

type listingFetchedMsg struct {
	listing *emass.Listing
	err     error
}

type loginResultMsg struct {
	sess *emass.Session
	err  error
}

// waitEventCmd delivers the next store notification. It must be re-issued
// after every delivery or notifications stop flowing.
func waitEventCmd(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func searchCmd(ctx context.Context, client *emass.Client, id uuid.UUID, endpoint filter.Endpoint, params url.Values) tea.Cmd {
	return func() tea.Msg {
		listings, err := client.Search(ctx, endpoint, params)
		return searchResultMsg{id: id, listings: listings, err: err}
	}
}

func allListingsCmd(ctx context.Context, client *emass.Client, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		listings, err := client.Listings(ctx)
		return searchResultMsg{id: id, listings: listings, err: err}
	}
}

func fetchFavoriteIDsCmd(ctx context.Context, favorites *emass.FavoritesClient, userID string) tea.Cmd {
	return func() tea.Msg {
		listings, err := favorites.List(ctx, userID)
		if err != nil {
			return favoriteIDsMsg{err: err}
		}
		ids := make(map[string]bool, len(listings))
		for _, l := range listings {
			ids[l.ID] = true
		}
		return favoriteIDsMsg{ids: ids}
	}
}

func toggleFavoriteCmd(ctx context.Context, favorites *emass.FavoritesClient, listingID, userID string) tea.Cmd {
	return func() tea.Msg {
		favorited, err := favorites.Toggle(ctx, listingID, userID)
		return favoriteToggledMsg{id: listingID, favorited: favorited, err: err}
	}
}

func favoriteCountCmd(ctx context.Context, client *emass.Client, listingID string) tea.Cmd {
	return func() tea.Msg {
		count, err := client.FavoriteCount(ctx, listingID)
		return favoriteCountMsg{id: listingID, count: count, err: err}
	}
}

func fetchListingCmd(ctx context.Context, client *emass.Client, listingID string) tea.Cmd {
	return func() tea.Msg {
		listing, err := client.Listing(ctx, listingID)
		return listingFetchedMsg{listing: listing, err: err}
	}
}

func loginCmd(ctx context.Context, client *emass.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := client.Login(ctx, email, password)
		return loginResultMsg{sess: sess, err: err}
	}
}
