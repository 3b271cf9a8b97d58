package emass

import (
	"context"
	"fmt"

	"github.com/bugraisin/emass-tui/internal/liststore"
)

// FavoritesClient toggles server-authoritative favorites and notifies local
// observers after confirmed changes. There is no optimistic update and no
// local cache of the favorite set; a notification only tells panels to
// re-fetch.
type FavoritesClient struct {
	api     API
	changed *liststore.Signal
}

// NewFavoritesClient wraps api with change notification.
func NewFavoritesClient(api API) *FavoritesClient {
	return &FavoritesClient{api: api, changed: &liststore.Signal{}}
}

// Subscribe registers fn to run after every confirmed favorite change and
// returns its disposer.
func (f *FavoritesClient) Subscribe(fn func()) func() {
	return f.changed.Subscribe(fn)
}

// List fetches the user's current favorites from the server.
func (f *FavoritesClient) List(ctx context.Context, userID string) ([]Listing, error) {
	return f.api.Favorites(ctx, userID)
}

// Toggle queries the current server-side status and issues the matching add
// or remove. Only a successful round-trip fires the change notification and
// flips the returned state; on any failure the previously observed status is
// returned unchanged and no notification fires.
//
// Check-then-act is not atomic: two clients toggling concurrently can race.
// The server remains the source of truth and the next re-fetch converges.
func (f *FavoritesClient) Toggle(ctx context.Context, listingID, userID string) (bool, error) {
	favorited, err := f.api.IsFavorite(ctx, listingID, userID)
	if err != nil {
		return false, fmt.Errorf("check favorite %s: %w", listingID, err)
	}

	if favorited {
		if err := f.api.RemoveFavorite(ctx, listingID); err != nil {
			return favorited, fmt.Errorf("remove favorite %s: %w", listingID, err)
		}
	} else {
		if err := f.api.AddFavorite(ctx, listingID); err != nil {
			return favorited, fmt.Errorf("add favorite %s: %w", listingID, err)
		}
	}

	f.changed.Notify()
	return !favorited, nil
}
