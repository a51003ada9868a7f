package history

import "time"

// Cloner is implemented by values that can produce a deep, independent copy
// of themselves. History only stores types satisfying Cloner.
type Cloner[T any] interface {
	Clone() T
}

// Snapshot is one recorded state in a History.
type Snapshot[T Cloner[T]] struct {
	// ID uniquely identifies the snapshot.
	ID string

	// Data is the recorded state. It is never shared with the caller.
	Data T

	// Timestamp is when the snapshot was recorded. Ordering uses the
	// sequence position, not the timestamp.
	Timestamp time.Time

	// Description names the edit that produced the snapshot.
	Description string
}

// Clone returns a copy of the snapshot with its data deep-copied.
func (s Snapshot[T]) Clone() Snapshot[T] {
	s.Data = s.Data.Clone()
	return s
}

// Info returns the snapshot metadata without its data.
func (s Snapshot[T]) Info() Info {
	return Info{
		ID:          s.ID,
		Description: s.Description,
		Timestamp:   s.Timestamp,
	}
}

// Info describes a snapshot without carrying its data.
type Info struct {
	ID          string
	Description string
	Timestamp   time.Time
}
