// Package lists holds the per-user listing collections: the pinned panel's
// toggle-style list and the capped recently-viewed list.
package lists

import (
	"github.com/bugraisin/emass-tui/internal/emass"
	"github.com/bugraisin/emass-tui/internal/liststore"
)

// Pinned is the unbounded list of listings the user keeps visible in the
// side panel. Pinning is toggle-style: pin when absent, unpin when present.
type Pinned struct {
	store *liststore.Store
}

// NewPinned opens the pinned store under dir.
func NewPinned(dir string) *Pinned {
	return &Pinned{store: liststore.New(dir, "pinnedListings")}
}

// Toggle pins or unpins a listing and returns true when it is now pinned.
func (p *Pinned) Toggle(listing emass.Listing) bool {
	return p.store.Toggle(ItemFromListing(listing))
}

// IsPinned reports whether the listing id is pinned.
func (p *Pinned) IsPinned(id string) bool {
	return p.store.IsPresent(id)
}

// Remove unpins by id.
func (p *Pinned) Remove(id string) {
	p.store.Remove(id)
}

// GetAll returns the pinned listings in pin order.
func (p *Pinned) GetAll() []liststore.Item {
	return p.store.GetAll()
}

// Clear unpins everything.
func (p *Pinned) Clear() {
	p.store.Clear()
}

// Subscribe registers fn for change notifications; the disposer must be
// called on teardown.
func (p *Pinned) Subscribe(fn func([]liststore.Item)) func() {
	return p.store.Subscribe(fn)
}

// ListingFromItem rebuilds the listing summary carried by a stored item, for
// toggling a pin from a panel where only the item is at hand.
func ListingFromItem(item liststore.Item) emass.Listing {
	return emass.Listing{
		ID:           item.ID,
		Title:        item.Title,
		Price:        item.Price,
		District:     item.District,
		Neighborhood: item.Neighborhood,
		ThumbnailURL: item.ThumbnailURL,
		CreatedAt:    item.CreatedAt,
	}
}

// ItemFromListing projects an API listing into the stored item shape. The
// image falls back through thumbnail, imageUrl, image, and the first photo.
func ItemFromListing(l emass.Listing) liststore.Item {
	return liststore.Item{
		ID:           l.ID,
		Title:        l.Title,
		Price:        l.Price,
		District:     l.District,
		Neighborhood: l.Neighborhood,
		ThumbnailURL: l.ThumbnailSource(),
		CreatedAt:    l.CreatedAt,
	}
}
