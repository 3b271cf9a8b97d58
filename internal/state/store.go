package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bugraisin/emass-tui/internal/emass"
	"github.com/bugraisin/emass-tui/internal/filter"
)

// Snapshot represents the latest search results available to the UI.
type Snapshot struct {
	Results             []emass.Listing
	Endpoint            filter.Endpoint
	Query               string // encoded query of the search that produced Results
	Searching           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive search failures
}

// IsOffline returns true when the API has been unreachable for multiple
// searches in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. Each search is
// stamped with a request id at Begin; a response carrying a superseded id is
// dropped, so rapid repeated searches with unordered completion never let a
// stale response overwrite fresher results.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	current  uuid.UUID
}

// Begin marks a new in-flight search and returns its request id. Any
// previously issued id becomes stale.
func (s *Store) Begin(endpoint filter.Endpoint, query string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = uuid.New()
	s.snapshot.Searching = true
	s.snapshot.Endpoint = endpoint
	s.snapshot.Query = query
	return s.current
}

// Update records the outcome of the search identified by id. Stale ids are
// ignored and Update reports whether the result was applied. When err is
// non-nil the previous results are kept but the error is recorded.
func (s *Store) Update(id uuid.UUID, results []emass.Listing, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.current {
		return false
	}
	s.snapshot.Searching = false
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return true
	}

	s.snapshot.Results = cloneListings(results)
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Results = cloneListings(s.snapshot.Results)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneListings(items []emass.Listing) []emass.Listing {
	if len(items) == 0 {
		return nil
	}
	dup := make([]emass.Listing, len(items))
	copy(dup, items)
	return dup
}
