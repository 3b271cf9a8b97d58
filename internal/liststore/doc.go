// Package liststore implements durable, synchronous, cross-panel-visible
// storage for named lists of listings.
//
// # Overview
//
// Several independent parts of the UI (the pinned side panel, the recently
// viewed panel) need to observe the same small, per-user list without sharing
// in-memory state. Each list lives in its own JSON file under the data
// directory and is wrapped by a Store that owns all reads and writes to that
// file.
//
// # Change notification
//
// Every mutation (Save, Toggle, Remove, Clear) persists first and then
// notifies subscribers with the freshly re-read list:
//
//	persist -> re-read -> dispatch
//
// This ordering guarantees that a subscriber calling GetAll from inside its
// callback observes the just-written value. Subscribers are invoked outside
// the store lock, in registration order.
//
// Subscriptions are scoped resources. Subscribe returns a disposer that the
// owning component must call on teardown; leaked subscriptions keep firing
// across view changes.
//
// # Failure semantics
//
//   - Corrupted file on read: the file is deleted and an empty list is
//     returned. Callers never see a parse error.
//   - Write failure (permissions, disk): logged and swallowed. Subscribers
//     are still notified, so the UI may briefly show a mutation that did not
//     reach disk. That inconsistency window is accepted.
//
// # Cross-process behavior
//
// Two processes writing the same file are not coordinated; the last writer
// wins. Watch uses fsnotify to rebroadcast when the file changes underneath
// this process, for panels that opt in.
package liststore
