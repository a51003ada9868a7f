package timetable

import (
	"fmt"
	"sort"
)

// ConflictKind identifies the resource that is double-booked.
type ConflictKind int

const (
	// TeacherConflict means a teacher has more than one session in a slot.
	TeacherConflict ConflictKind = iota
	// RoomConflict means a room hosts more than one session in a slot.
	RoomConflict
)

// String returns the conflict kind name.
func (k ConflictKind) String() string {
	switch k {
	case TeacherConflict:
		return "teacher"
	case RoomConflict:
		return "room"
	default:
		return "unknown"
	}
}

// Severity ranks a conflict.
type Severity int

const (
	// SeverityWarning marks a conflict that can be tolerated.
	SeverityWarning Severity = iota
	// SeverityError marks a conflict that makes the timetable infeasible.
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Conflict is one double-booking found in a schedule.
type Conflict struct {
	Kind     ConflictKind
	Severity Severity
	Cell     Cell

	// Resource is the teacher or room that is double-booked.
	Resource string

	// Indices are the positions of the clashing sessions within the cell.
	Indices []int

	Message string
}

// DetectConflicts reports every teacher and room booked for more than one
// session in the same slot. Teacher clashes are errors, room clashes are
// warnings. Sessions with an empty teacher or room are not considered for
// that resource. Results are ordered by day, slot, kind and resource.
func DetectConflicts(schedule Schedule) []Conflict {
	var conflicts []Conflict
	for _, cell := range schedule.Cells() {
		sessions := schedule[cell.Day][cell.Slot]
		if len(sessions) < 2 {
			continue
		}

		conflicts = append(conflicts, clashes(cell, sessions, TeacherConflict,
			func(s Session) string { return s.Teacher })...)
		conflicts = append(conflicts, clashes(cell, sessions, RoomConflict,
			func(s Session) string { return s.Room })...)
	}
	return conflicts
}

func clashes(cell Cell, sessions []Session, kind ConflictKind, resource func(Session) string) []Conflict {
	groups := make(map[string][]int)
	for i, s := range sessions {
		if r := resource(s); r != "" {
			groups[r] = append(groups[r], i)
		}
	}

	names := make([]string, 0, len(groups))
	for name, indices := range groups {
		if len(indices) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]Conflict, 0, len(names))
	for _, name := range names {
		c := Conflict{
			Kind:     kind,
			Cell:     cell,
			Resource: name,
			Indices:  groups[name],
		}
		switch kind {
		case TeacherConflict:
			c.Severity = SeverityError
			c.Message = fmt.Sprintf("Teacher %s has conflicting classes at %s", name, cell)
		case RoomConflict:
			c.Severity = SeverityWarning
			c.Message = fmt.Sprintf("Room %s has conflicting bookings at %s", name, cell)
		}
		out = append(out, c)
	}
	return out
}
