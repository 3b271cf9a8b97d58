package lists

import (
	"fmt"
	"testing"
	"time"

	"github.com/bugraisin/emass-tui/internal/emass"
)

func newTestRecent(t *testing.T) *Recent {
	t.Helper()
	r := NewRecent(t.TempDir())
	r.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return r
}

func TestRecent_AddInsertsAtFront(t *testing.T) {
	r := newTestRecent(t)

	r.Add(emass.Listing{ID: "1", Title: "first"})
	r.Add(emass.Listing{ID: "2", Title: "second"})

	got := r.GetAll()
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "1" {
		t.Fatalf("GetAll() = %#v, want most recent first", got)
	}
	if got[0].ViewedAt != "2024-03-01T10:00:00Z" {
		t.Fatalf("ViewedAt = %q, want fresh timestamp", got[0].ViewedAt)
	}
}

func TestRecent_ReAddMovesToFrontWithoutGrowing(t *testing.T) {
	r := newTestRecent(t)

	r.Add(emass.Listing{ID: "1"})
	r.Add(emass.Listing{ID: "2"})
	r.Add(emass.Listing{ID: "3"})
	r.Add(emass.Listing{ID: "1"})

	got := r.GetAll()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (re-add must not grow the list)", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" || got[2].ID != "2" {
		t.Fatalf("order = %v, want 1,3,2", []string{got[0].ID, got[1].ID, got[2].ID})
	}
}

func TestRecent_NeverExceedsCap(t *testing.T) {
	r := newTestRecent(t)

	for i := 0; i < 25; i++ {
		r.Add(emass.Listing{ID: fmt.Sprintf("%d", i)})
		if got := len(r.GetAll()); got > 10 {
			t.Fatalf("len after add #%d = %d, want <= 10", i, got)
		}
	}

	got := r.GetAll()
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0].ID != "24" || got[9].ID != "15" {
		t.Fatalf("window = %s..%s, want 24..15", got[0].ID, got[9].ID)
	}
}

func TestPinned_ToggleAndQuery(t *testing.T) {
	p := NewPinned(t.TempDir())

	listing := emass.Listing{ID: "42", Title: "Deniz Manzaralı Daire", Price: "1500000"}
	if !p.Toggle(listing) {
		t.Fatalf("Toggle = false, want pinned")
	}
	if !p.IsPinned("42") {
		t.Fatalf("IsPinned = false after pin")
	}
	if p.Toggle(listing) {
		t.Fatalf("Toggle = true, want unpinned")
	}
	if got := p.GetAll(); len(got) != 0 {
		t.Fatalf("GetAll() = %#v, want empty", got)
	}
}

func TestItemFromListing_ImageFallback(t *testing.T) {
	tests := []struct {
		name    string
		listing emass.Listing
		want    string
	}{
		{"thumbnail wins", emass.Listing{ThumbnailURL: "t", ImageURL: "u", Image: "i"}, "t"},
		{"imageUrl next", emass.Listing{ImageURL: "u", Image: "i"}, "u"},
		{"image next", emass.Listing{Image: "i", Photos: []emass.Photo{{URL: "p"}}}, "i"},
		{"first photo last", emass.Listing{Photos: []emass.Photo{{URL: "p"}, {URL: "q"}}}, "p"},
		{"nothing", emass.Listing{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ItemFromListing(tt.listing).ThumbnailURL; got != tt.want {
				t.Fatalf("thumbnail = %q, want %q", got, tt.want)
			}
		})
	}
}
