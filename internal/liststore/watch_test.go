package liststore

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestWatch_RebroadcastsOnExternalWrite(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "recentListings")
	s.Save([]Item{{ID: "1"}})

	got := make(chan []Item, 4)
	unsub := s.Subscribe(func(items []Item) { got <- items })
	defer unsub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop, err := Watch(ctx, s)
	if err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}
	defer stop()

	// Simulate another process rewriting the backing file directly.
	data, err := json.Marshal([]Item{{ID: "1"}, {ID: "2"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case items := <-got:
			if len(items) == 2 {
				return
			}
		case <-deadline:
			t.Fatal("watch did not rebroadcast the external write")
		}
	}
}
