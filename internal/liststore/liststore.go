// Package liststore provides small durable lists of listings backed by JSON
// files, with change notification so independent UI panels stay in sync.
package liststore

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Item is one stored listing entry. Ids are treated as opaque strings; two
// entries are the same listing when their ids compare equal as strings.
type Item struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Price        string `json:"price"`
	District     string `json:"district"`
	Neighborhood string `json:"neighborhood"`
	ThumbnailURL string `json:"thumbnailUrl"`
	CreatedAt    string `json:"createdAt"`
	ViewedAt     string `json:"viewedAt,omitempty"`
}

// Store is a named, file-backed ordered list of items. Each store exclusively
// owns its file; all reads and writes go through the Store API. Mutations
// notify every subscriber so panels in other parts of the UI re-render
// without sharing in-memory state.
type Store struct {
	path string
	name string

	mu      sync.Mutex
	subs    map[int]func([]Item)
	nextSub int

	now func() time.Time
}

// New creates a store persisting to <dir>/<name>.json.
func New(dir, name string) *Store {
	return &Store{
		path: filepath.Join(dir, name+".json"),
		name: name,
		subs: make(map[int]func([]Item)),
		now:  time.Now,
	}
}

// Name returns the store's name, which doubles as its change-event name.
func (s *Store) Name() string { return s.name }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// GetAll reads the persisted list. A missing file yields an empty list. A
// corrupted file is deleted and an empty list is returned; callers never see
// a parse error.
func (s *Store) GetAll() []Item {
	s.mu.Lock()
	items := s.read()
	s.mu.Unlock()
	return items
}

// read loads the file. Callers must hold mu.
func (s *Store) read() []Item {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("liststore %s: read: %v", s.name, err)
		}
		return nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("liststore %s: corrupted, clearing: %v", s.name, err)
		if rmErr := os.Remove(s.path); rmErr != nil {
			log.Printf("liststore %s: remove corrupted file: %v", s.name, rmErr)
		}
		return nil
	}
	return items
}

// write persists items. Write failures are logged and swallowed: the caller's
// view keeps the mutation even though it did not reach disk. Callers must
// hold mu.
func (s *Store) write(items []Item) {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("liststore %s: marshal: %v", s.name, err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Printf("liststore %s: create dir: %v", s.name, err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("liststore %s: write: %v", s.name, err)
	}
}

// Save persists the full list and then notifies every subscriber,
// unconditionally. Persistence happens before dispatch, so a subscriber that
// re-reads the store during its callback observes the just-written value.
func (s *Store) Save(items []Item) {
	s.mu.Lock()
	s.write(items)
	current := s.read()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cloneItems(current))
	}
}

// IsPresent reports whether an item with the given id is stored.
func (s *Store) IsPresent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.read() {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Toggle removes the item when present and appends it otherwise. An empty
// CreatedAt is filled with the current time. It returns the new presence
// state: true means the item is now stored.
func (s *Store) Toggle(item Item) bool {
	s.mu.Lock()
	items := s.read()
	kept := items[:0]
	removed := false
	for _, it := range items {
		if it.ID == item.ID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		if item.CreatedAt == "" {
			item.CreatedAt = s.now().UTC().Format(time.RFC3339)
		}
		kept = append(kept, item)
	}
	s.write(kept)
	current := s.read()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cloneItems(current))
	}
	return !removed
}

// Remove deletes the item with the given id, if present, and notifies.
func (s *Store) Remove(id string) {
	items := s.GetAll()
	kept := items[:0]
	for _, it := range items {
		if it.ID == id {
			continue
		}
		kept = append(kept, it)
	}
	s.Save(kept)
}

// Clear empties the store and notifies.
func (s *Store) Clear() {
	s.Save(nil)
}

// Subscribe registers fn to run after every mutation with the freshly re-read
// list. The returned func removes the subscription; callers own that
// lifecycle and must release it on teardown.
func (s *Store) Subscribe(fn func([]Item)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Rebroadcast re-reads the file and notifies subscribers without writing.
// Used when the file changed underneath us (another process wrote it).
func (s *Store) Rebroadcast() {
	s.mu.Lock()
	current := s.read()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cloneItems(current))
	}
}

// snapshotSubs copies the subscriber set in registration order so callbacks
// run outside the lock. Callers must hold mu.
func (s *Store) snapshotSubs() []func([]Item) {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sortInts(ids)
	out := make([]func([]Item), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.subs[id])
	}
	return out
}

func sortInts(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
