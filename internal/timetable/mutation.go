package timetable

import (
	"fmt"

	"github.com/dshills/ttedit/internal/engine/history"
)

// InitialDescription labels the first snapshot of a Store.
const InitialDescription = "Initial timetable"

// Store is the undo/redo history of a schedule.
type Store = history.History[Schedule]

// NewStore creates a history for schedule edits. A nil initial schedule
// yields an empty store; any other value becomes the first snapshot.
func NewStore(initial Schedule, opts ...history.Option) *Store {
	if initial == nil {
		return history.New[Schedule](opts...)
	}
	return history.NewWithInitial(initial, InitialDescription, opts...)
}

// Result is the outcome of a schedule edit.
type Result struct {
	// Schedule is the schedule after the edit. When the edit was not
	// applied it is the input schedule itself.
	Schedule Schedule

	// Applied reports whether the edit changed the schedule and was
	// recorded in the store.
	Applied bool

	// Description is the history label of an applied edit.
	Description string

	// Reason explains why an edit was not applied.
	Reason error
}

func applied(store *Store, next Schedule, description string) Result {
	if store != nil {
		store.Push(next, description)
	}
	return Result{
		Schedule:    next,
		Applied:     true,
		Description: description,
	}
}

func unchanged(schedule Schedule, cell Cell, index int) Result {
	return Result{
		Schedule: schedule,
		Reason:   fmt.Errorf("%w: %s index %d", ErrSessionNotFound, cell, index),
	}
}

// MoveSession moves the session at index in from to the end of to.
// A slot emptied by the move is removed from the schedule.
//
// A nil store computes the edit without recording it.
func MoveSession(store *Store, schedule Schedule, from, to Cell, index int) Result {
	session, ok := schedule.SessionAt(from.Day, from.Slot, index)
	if !ok {
		return unchanged(schedule, from, index)
	}

	next := schedule.Clone()
	next.removeAt(from, index)
	next.appendAt(to, session)

	return applied(store, next,
		fmt.Sprintf("Moved %s from %s to %s", session.Subject, from, to))
}

// AddSession appends a session to a cell. It is always applied.
func AddSession(store *Store, schedule Schedule, cell Cell, session Session) Result {
	next := schedule.Clone()
	if next == nil {
		next = make(Schedule)
	}
	next.appendAt(cell, session)

	return applied(store, next,
		fmt.Sprintf("Added %s to %s", session.Subject, cell))
}

// RemoveSession removes the session at index from a cell.
// A slot emptied by the removal is removed from the schedule.
func RemoveSession(store *Store, schedule Schedule, cell Cell, index int) Result {
	session, ok := schedule.SessionAt(cell.Day, cell.Slot, index)
	if !ok {
		return unchanged(schedule, cell, index)
	}

	next := schedule.Clone()
	next.removeAt(cell, index)

	return applied(store, next,
		fmt.Sprintf("Removed %s from %s", session.Subject, cell))
}

// UpdateSession replaces the session at index with patch applied to it.
// The description names the subject the session had before the update.
func UpdateSession(store *Store, schedule Schedule, cell Cell, index int, patch SessionPatch) Result {
	original, ok := schedule.SessionAt(cell.Day, cell.Slot, index)
	if !ok {
		return unchanged(schedule, cell, index)
	}

	next := schedule.Clone()
	next[cell.Day][cell.Slot][index] = patch.Apply(original)

	return applied(store, next,
		fmt.Sprintf("Updated %s in %s", original.Subject, cell))
}
