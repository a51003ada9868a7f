// Package history provides linear undo/redo over immutable value snapshots.
//
// A History keeps an ordered sequence of snapshots and a cursor pointing at
// the current one. Every value crossing the History boundary is copied with
// its Clone method, so callers may freely mutate what they push or receive.
//
// # Snapshots
//
// A Snapshot holds a deep copy of the state together with metadata:
//   - A unique ID for timeline views
//   - The capture timestamp
//   - A human-readable description of the edit that produced it
//
// # History
//
//	h := history.NewWithInitial(state, "Initial state")
//
//	// Record edits
//	h.Push(next, "Moved block")
//
//	// Undo/redo
//	prev, ok := h.Undo()
//	next, ok = h.Redo()
//
// # Branch Truncation
//
// Pushing while the cursor is not at the newest snapshot discards every
// snapshot after the cursor. The history is a line, not a tree.
//
// # Capacity
//
// At most MaxEntries snapshots are retained. When a push exceeds the limit
// the oldest snapshot is evicted and the cursor shifts to stay on the same
// snapshot.
//
// # Concurrency
//
// History performs no internal synchronization. The owner of a History must
// serialize calls.
package history
