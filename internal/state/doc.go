// Package state provides thread-safe storage of the latest search results.
//
// # Overview
//
// Searches run in background commands while the UI renders; this package is
// the coordination point where completed searches meet rendering. A single
// Store holds the most recent Snapshot behind a readers-writer lock, and both
// sides exchange defensive copies only.
//
// # Request staleness
//
// Search requests complete in no particular order. Begin stamps each search
// with a fresh request id and supersedes every earlier id; Update applies a
// result only when its id is still current. A search fired, superseded by a
// second search, and completing late is simply dropped:
//
//	id1 := store.Begin(filter.House, q1)
//	id2 := store.Begin(filter.Land, q2)   // id1 is now stale
//	store.Update(id2, fresh, nil)          // applied
//	store.Update(id1, old, nil)            // ignored
//
// The same mechanism covers responses arriving after the issuing view has
// been torn down: nothing re-reads a dropped result.
//
// # Update semantics
//
// On success the results are replaced and the failure streak resets. On
// error the previous results are kept, the error is recorded, and the
// failure streak grows; IsOffline reports two or more consecutive failures
// so the header can distinguish a flaky request from a dead API.
//
// # Concurrency
//
// The zero-value Store is ready to use. Update and Begin take the write
// lock, Snapshot the read lock; slices and error values are cloned at the
// boundary so neither side can mutate the other's view.
package state
