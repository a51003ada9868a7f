package history

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is the number of snapshots retained when no limit is set.
const DefaultMaxEntries = 50

// History manages a linear undo/redo timeline of snapshots.
type History[T Cloner[T]] struct {
	snapshots []Snapshot[T]

	// cursor is the index of the current snapshot, -1 when empty.
	cursor int

	// Configuration
	maxEntries int
	now        func() time.Time
	newID      func() string
}

type options struct {
	maxEntries int
	now        func() time.Time
}

// Option configures a History.
type Option func(*options)

// WithMaxEntries sets the maximum number of retained snapshots.
// Values <= 0 select DefaultMaxEntries.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.maxEntries = n
	}
}

// WithClock sets the time source used for snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New creates an empty history.
func New[T Cloner[T]](opts ...Option) *History[T] {
	o := options{
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxEntries <= 0 {
		o.maxEntries = DefaultMaxEntries
	}

	return &History[T]{
		cursor:     -1,
		maxEntries: o.maxEntries,
		now:        o.now,
		newID:      uuid.NewString,
	}
}

// NewWithInitial creates a history holding initial as its only snapshot.
func NewWithInitial[T Cloner[T]](initial T, description string, opts ...Option) *History[T] {
	h := New[T](opts...)
	h.Push(initial, description)
	return h
}

// Push records a copy of value as the new current snapshot.
// Snapshots after the cursor are discarded first.
func (h *History[T]) Push(value T, description string) {
	// Drop the redo branch
	if h.cursor < len(h.snapshots)-1 {
		clear(h.snapshots[h.cursor+1:])
		h.snapshots = h.snapshots[:h.cursor+1]
	}

	h.snapshots = append(h.snapshots, Snapshot[T]{
		ID:          h.newID(),
		Data:        value.Clone(),
		Timestamp:   h.now(),
		Description: description,
	})
	h.cursor = len(h.snapshots) - 1

	h.evict()
}

// evict removes the oldest snapshots beyond maxEntries.
func (h *History[T]) evict() {
	excess := len(h.snapshots) - h.maxEntries
	if excess <= 0 {
		return
	}

	clear(h.snapshots[:excess])
	h.snapshots = h.snapshots[excess:]
	h.cursor -= excess
	if h.cursor < 0 {
		h.cursor = 0
	}
}

// Undo moves the cursor back and returns a copy of the snapshot there.
// Returns false if there is nothing to undo.
func (h *History[T]) Undo() (T, bool) {
	if !h.CanUndo() {
		var zero T
		return zero, false
	}

	h.cursor--
	return h.snapshots[h.cursor].Data.Clone(), true
}

// Redo moves the cursor forward and returns a copy of the snapshot there.
// Returns false if there is nothing to redo.
func (h *History[T]) Redo() (T, bool) {
	if !h.CanRedo() {
		var zero T
		return zero, false
	}

	h.cursor++
	return h.snapshots[h.cursor].Data.Clone(), true
}

// CanUndo returns true if undo is available.
func (h *History[T]) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo returns true if redo is available.
func (h *History[T]) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Current returns a copy of the snapshot at the cursor.
// Returns false if the history is empty.
func (h *History[T]) Current() (T, bool) {
	if h.cursor < 0 || h.cursor >= len(h.snapshots) {
		var zero T
		return zero, false
	}
	return h.snapshots[h.cursor].Data.Clone(), true
}

// Snapshots returns copies of all retained snapshots, oldest first.
func (h *History[T]) Snapshots() []Snapshot[T] {
	result := make([]Snapshot[T], len(h.snapshots))
	for i, s := range h.snapshots {
		result[i] = s.Clone()
	}
	return result
}

// Len returns the number of retained snapshots.
func (h *History[T]) Len() int {
	return len(h.snapshots)
}

// Cursor returns the index of the current snapshot, or -1 when empty.
func (h *History[T]) Cursor() int {
	return h.cursor
}

// UndoCount returns the number of undo steps available.
func (h *History[T]) UndoCount() int {
	if h.cursor <= 0 {
		return 0
	}
	return h.cursor
}

// RedoCount returns the number of redo steps available.
func (h *History[T]) RedoCount() int {
	return len(h.snapshots) - 1 - h.cursor
}

// CurrentDescription returns the description of the current snapshot.
func (h *History[T]) CurrentDescription() string {
	return h.descriptionAt(h.cursor)
}

// UndoDescription returns the description of the snapshot Undo would return.
func (h *History[T]) UndoDescription() string {
	if !h.CanUndo() {
		return ""
	}
	return h.descriptionAt(h.cursor - 1)
}

// RedoDescription returns the description of the snapshot Redo would return.
func (h *History[T]) RedoDescription() string {
	if !h.CanRedo() {
		return ""
	}
	return h.descriptionAt(h.cursor + 1)
}

func (h *History[T]) descriptionAt(i int) string {
	if i < 0 || i >= len(h.snapshots) {
		return ""
	}
	return h.snapshots[i].Description
}

// PeekUndo returns info about the snapshot Undo would return without moving
// the cursor.
func (h *History[T]) PeekUndo() (Info, bool) {
	if !h.CanUndo() {
		return Info{}, false
	}
	return h.snapshots[h.cursor-1].Info(), true
}

// PeekRedo returns info about the snapshot Redo would return without moving
// the cursor.
func (h *History[T]) PeekRedo() (Info, bool) {
	if !h.CanRedo() {
		return Info{}, false
	}
	return h.snapshots[h.cursor+1].Info(), true
}

// Clear removes all snapshots.
func (h *History[T]) Clear() {
	clear(h.snapshots)
	h.snapshots = nil
	h.cursor = -1
}

// SetMaxEntries changes the maximum number of retained snapshots.
// If more are retained, the oldest are evicted. Values <= 0 select
// DefaultMaxEntries.
func (h *History[T]) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	h.evict()
}

// MaxEntries returns the maximum number of retained snapshots.
func (h *History[T]) MaxEntries() int {
	return h.maxEntries
}
