package timetable

import "errors"

// Errors reported by timetable operations.
var (
	// ErrSessionNotFound indicates no session exists at the given day, slot and index.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnknownSessionType indicates a session type name is not recognized.
	ErrUnknownSessionType = errors.New("unknown session type")
)
