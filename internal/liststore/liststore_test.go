package liststore

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), "testListings")
}

func TestGetAll_MissingFileReturnsEmpty(t *testing.T) {
	s := newTestStore(t)
	if got := s.GetAll(); len(got) != 0 {
		t.Fatalf("GetAll() = %#v, want empty", got)
	}
}

func TestGetAll_CorruptedFileClearedAndEmpty(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("{not-json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := s.GetAll(); len(got) != 0 {
		t.Fatalf("GetAll() = %#v, want empty", got)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatalf("corrupted file still present (stat err = %v), want removed", err)
	}
}

func TestSave_PersistsAndNotifiesWithFreshRead(t *testing.T) {
	s := newTestStore(t)

	var observed []Item
	unsub := s.Subscribe(func(items []Item) {
		// Re-read inside the callback: must see the post-save collection.
		observed = s.GetAll()
	})
	defer unsub()

	s.Save([]Item{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}})

	if len(observed) != 2 || observed[0].ID != "1" || observed[1].ID != "2" {
		t.Fatalf("subscriber observed %#v, want the saved collection", observed)
	}
	if got := s.GetAll(); len(got) != 2 {
		t.Fatalf("GetAll() after save = %#v, want 2 items", got)
	}
}

func TestToggle_ParityOverRepeatedCalls(t *testing.T) {
	s := newTestStore(t)
	item := Item{ID: "7", Title: "x"}

	for i := 1; i <= 5; i++ {
		present := s.Toggle(item)
		wantPresent := i%2 == 1
		if present != wantPresent {
			t.Fatalf("Toggle #%d = %v, want %v", i, present, wantPresent)
		}
		if s.IsPresent("7") != wantPresent {
			t.Fatalf("IsPresent after toggle #%d = %v, want %v", i, s.IsPresent("7"), wantPresent)
		}
	}
}

func TestToggle_DefaultsCreatedAt(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.Toggle(Item{ID: "1"})

	got := s.GetAll()
	if len(got) != 1 {
		t.Fatalf("GetAll() = %#v, want 1 item", got)
	}
	if got[0].CreatedAt != "2024-06-01T12:00:00Z" {
		t.Fatalf("CreatedAt = %q, want 2024-06-01T12:00:00Z", got[0].CreatedAt)
	}
}

func TestToggle_KeepsExplicitCreatedAt(t *testing.T) {
	s := newTestStore(t)
	s.Toggle(Item{ID: "1", CreatedAt: "2024-01-01T00:00:00Z"})

	got := s.GetAll()
	if len(got) != 1 || got[0].CreatedAt != "2024-01-01T00:00:00Z" {
		t.Fatalf("GetAll() = %#v, want preserved createdAt", got)
	}
}

func TestRemove_FiltersById(t *testing.T) {
	s := newTestStore(t)
	s.Save([]Item{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	s.Remove("2")

	got := s.GetAll()
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("GetAll() after remove = %#v, want ids 1 and 3", got)
	}

	// Removing an absent id is a persisted no-op but still notifies.
	fired := 0
	unsub := s.Subscribe(func([]Item) { fired++ })
	defer unsub()
	s.Remove("99")
	if fired != 1 {
		t.Fatalf("notifications = %d, want 1", fired)
	}
	if got := s.GetAll(); len(got) != 2 {
		t.Fatalf("GetAll() = %#v, want unchanged 2 items", got)
	}
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	s := newTestStore(t)

	fired := 0
	unsub := s.Subscribe(func([]Item) { fired++ })

	s.Save([]Item{{ID: "1"}})
	unsub()
	s.Save([]Item{{ID: "2"}})

	if fired != 1 {
		t.Fatalf("notifications = %d, want 1", fired)
	}
}

func TestPinUnpinEndToEnd(t *testing.T) {
	s := New(t.TempDir(), "pinnedListings")

	events := 0
	unsub := s.Subscribe(func([]Item) { events++ })
	defer unsub()

	item := Item{
		ID:           "42",
		Title:        "Deniz Manzaralı Daire",
		Price:        "1500000",
		District:     "Kadıköy",
		Neighborhood: "Moda",
		CreatedAt:    "2024-01-01T00:00:00Z",
	}

	if present := s.Toggle(item); !present {
		t.Fatalf("Toggle pin = false, want true")
	}
	if present := s.Toggle(Item{ID: "42"}); present {
		t.Fatalf("Toggle unpin = true, want false")
	}

	if got := s.GetAll(); len(got) != 0 {
		t.Fatalf("GetAll() after unpin = %#v, want empty", got)
	}
	if events != 2 {
		t.Fatalf("change events = %d, want exactly 2", events)
	}
}

func TestRebroadcast_NotifiesWithoutWriting(t *testing.T) {
	s := newTestStore(t)
	s.Save([]Item{{ID: "1"}})

	var observed []Item
	unsub := s.Subscribe(func(items []Item) { observed = items })
	defer unsub()

	s.Rebroadcast()
	if len(observed) != 1 || observed[0].ID != "1" {
		t.Fatalf("rebroadcast observed %#v, want stored item", observed)
	}
}

func TestSignal_SubscribeNotifyUnsubscribe(t *testing.T) {
	var sig Signal

	a, b := 0, 0
	unsubA := sig.Subscribe(func() { a++ })
	unsubB := sig.Subscribe(func() { b++ })

	sig.Notify()
	unsubA()
	sig.Notify()
	unsubB()
	sig.Notify()

	if a != 1 || b != 2 {
		t.Fatalf("a = %d, b = %d, want 1 and 2", a, b)
	}
}
