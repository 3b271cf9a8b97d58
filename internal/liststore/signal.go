package liststore

import "sync"

// Signal is a payloadless change notifier with the same subscription contract
// as Store. It backs server-authoritative state (favorites) that has no local
// file: a notification only means "something changed, re-fetch".
type Signal struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

// Subscribe registers fn and returns its disposer.
func (s *Signal) Subscribe(fn func()) func() {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Notify invokes every subscriber.
func (s *Signal) Notify() {
	s.mu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
