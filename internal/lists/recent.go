package lists

import (
	"time"

	"github.com/bugraisin/emass-tui/internal/emass"
	"github.com/bugraisin/emass-tui/internal/liststore"
)

// maxRecent caps the recently-viewed list.
const maxRecent = 10

// Recent tracks the listings the user opened, most recent first. Recency is
// purely insertion order: re-viewing a stored listing moves it to the front
// with a fresh viewedAt, and the tail past ten entries is dropped. No TTL.
type Recent struct {
	store *liststore.Store
	now   func() time.Time
}

// NewRecent opens the recent store under dir.
func NewRecent(dir string) *Recent {
	return &Recent{store: liststore.New(dir, "recentListings"), now: time.Now}
}

// Add records a view of the listing.
func (r *Recent) Add(listing emass.Listing) {
	entry := ItemFromListing(listing)
	entry.ViewedAt = r.now().UTC().Format(time.RFC3339)

	items := r.store.GetAll()
	kept := make([]liststore.Item, 0, len(items)+1)
	kept = append(kept, entry)
	for _, it := range items {
		if it.ID == entry.ID {
			continue
		}
		kept = append(kept, it)
	}
	if len(kept) > maxRecent {
		kept = kept[:maxRecent]
	}
	r.store.Save(kept)
}

// GetAll returns the recent listings, most recent view first.
func (r *Recent) GetAll() []liststore.Item {
	return r.store.GetAll()
}

// Clear forgets the view history.
func (r *Recent) Clear() {
	r.store.Clear()
}

// Subscribe registers fn for change notifications; the disposer must be
// called on teardown.
func (r *Recent) Subscribe(fn func([]liststore.Item)) func() {
	return r.store.Subscribe(fn)
}

// Store exposes the backing store for cross-process watching. Only the
// recent panel watches; pinned staleness across processes is accepted until
// the next local mutation.
func (r *Recent) Store() *liststore.Store {
	return r.store
}
