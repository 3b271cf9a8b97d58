package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bugraisin/emass-tui/internal/emass"
	"github.com/bugraisin/emass-tui/internal/filter"
)

func TestStore_BeginUpdateSnapshot(t *testing.T) {
	var s Store

	id := s.Begin(filter.House, "city=İstanbul")
	snap := s.Snapshot()
	if !snap.Searching {
		t.Fatalf("Searching = false after Begin, want true")
	}
	if snap.Endpoint != filter.House || snap.Query != "city=İstanbul" {
		t.Fatalf("snapshot = %#v, want house endpoint and query recorded", snap)
	}

	before := time.Now()
	results := []emass.Listing{{ID: "1"}, {ID: "2"}}
	if applied := s.Update(id, results, nil); !applied {
		t.Fatalf("Update = false for the current id, want true")
	}

	snap = s.Snapshot()
	if snap.Searching {
		t.Fatalf("Searching = true after Update, want false")
	}
	if len(snap.Results) != 2 || snap.Results[0].ID != "1" {
		t.Fatalf("Results = %#v, want 2 listings", snap.Results)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Results[0].ID = "999"
	snap2 := s.Snapshot()
	if snap2.Results[0].ID != "1" {
		t.Fatalf("Snapshot should clone results; got id %s want 1", snap2.Results[0].ID)
	}
}

func TestStore_StaleResponseDropped(t *testing.T) {
	var s Store

	stale := s.Begin(filter.House, "q=1")
	fresh := s.Begin(filter.Land, "q=2")

	if applied := s.Update(fresh, []emass.Listing{{ID: "new"}}, nil); !applied {
		t.Fatalf("fresh Update = false, want true")
	}
	// The first search completes late; its results must not overwrite.
	if applied := s.Update(stale, []emass.Listing{{ID: "old"}}, nil); applied {
		t.Fatalf("stale Update = true, want dropped")
	}

	snap := s.Snapshot()
	if len(snap.Results) != 1 || snap.Results[0].ID != "new" {
		t.Fatalf("Results = %#v, want the fresh response only", snap.Results)
	}
}

func TestStore_UpdateErrorKeepsPreviousResults(t *testing.T) {
	var s Store

	id := s.Begin(filter.House, "")
	s.Update(id, []emass.Listing{{ID: "1"}}, nil)
	prev := s.Snapshot()

	id = s.Begin(filter.House, "")
	origErr := errors.New("boom")
	s.Update(id, nil, origErr)

	snap := s.Snapshot()
	if len(snap.Results) != 1 || snap.Results[0].ID != prev.Results[0].ID {
		t.Fatalf("results changed on error: got %#v want %#v", snap.Results, prev.Results)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailuresAndOffline(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	s.Update(s.Begin(filter.House, ""), nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: %d failures, offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(s.Begin(filter.House, ""), nil, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: %d failures, offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	// A success resets the failure streak.
	s.Update(s.Begin(filter.House, ""), nil, nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success: %d failures, offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}
}
