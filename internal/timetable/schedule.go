package timetable

import (
	"slices"
	"sort"
	"strings"
)

// Cell identifies one slot of the timetable grid.
type Cell struct {
	Day  string `json:"day"`
	Slot string `json:"slot"`
}

// String returns "Day Slot".
func (c Cell) String() string {
	return c.Day + " " + c.Slot
}

// Slots maps a time-slot label to the sessions held in that slot.
type Slots map[string][]Session

// Schedule maps a day name to its slots.
//
// Schedules are treated as values: operations in this package never modify
// a Schedule they receive.
type Schedule map[string]Slots

// Clone returns a deep copy of the schedule. A nil schedule clones to nil.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}

	out := make(Schedule, len(s))
	for day, slots := range s {
		if slots == nil {
			out[day] = nil
			continue
		}
		copied := make(Slots, len(slots))
		for slot, sessions := range slots {
			copied[slot] = slices.Clone(sessions)
		}
		out[day] = copied
	}
	return out
}

// Equal reports whether s and other hold the same days, slots and sessions
// in the same order. Nil and empty maps compare equal.
func (s Schedule) Equal(other Schedule) bool {
	if len(s) != len(other) {
		return false
	}
	for day, slots := range s {
		otherSlots, ok := other[day]
		if !ok || len(slots) != len(otherSlots) {
			return false
		}
		for slot, sessions := range slots {
			otherSessions, ok := otherSlots[slot]
			if !ok || !slices.Equal(sessions, otherSessions) {
				return false
			}
		}
	}
	return true
}

// SessionAt returns the session at index within the given day and slot.
func (s Schedule) SessionAt(day, slot string, index int) (Session, bool) {
	sessions := s[day][slot]
	if index < 0 || index >= len(sessions) {
		return Session{}, false
	}
	return sessions[index], true
}

// Sessions returns the sessions held in a cell. The returned slice is a copy.
func (s Schedule) Sessions(cell Cell) []Session {
	return slices.Clone(s[cell.Day][cell.Slot])
}

// SessionCount returns the total number of sessions in the schedule.
func (s Schedule) SessionCount() int {
	n := 0
	for _, slots := range s {
		for _, sessions := range slots {
			n += len(sessions)
		}
	}
	return n
}

// Days returns the day names in weekday order. Names that are not weekdays
// sort alphabetically after the weekdays.
func (s Schedule) Days() []string {
	days := make([]string, 0, len(s))
	for day := range s {
		days = append(days, day)
	}
	SortDays(days)
	return days
}

// SlotLabels returns the slot labels of a day in ascending order.
func (s Schedule) SlotLabels(day string) []string {
	labels := make([]string, 0, len(s[day]))
	for slot := range s[day] {
		labels = append(labels, slot)
	}
	sort.Strings(labels)
	return labels
}

// Cells returns every occupied cell in day then slot order.
func (s Schedule) Cells() []Cell {
	var cells []Cell
	for _, day := range s.Days() {
		for _, slot := range s.SlotLabels(day) {
			if len(s[day][slot]) > 0 {
				cells = append(cells, Cell{Day: day, Slot: slot})
			}
		}
	}
	return cells
}

// removeAt deletes the session at index from a cell and drops the slot
// entry once it is empty. The receiver must be owned by the caller.
func (s Schedule) removeAt(cell Cell, index int) {
	slots := s[cell.Day]
	remaining := slices.Delete(slots[cell.Slot], index, index+1)
	if len(remaining) == 0 {
		delete(slots, cell.Slot)
		return
	}
	slots[cell.Slot] = remaining
}

// appendAt adds a session to the end of a cell, creating the day and slot
// entries as needed. The receiver must be owned by the caller.
func (s Schedule) appendAt(cell Cell, session Session) {
	slots := s[cell.Day]
	if slots == nil {
		slots = make(Slots)
		s[cell.Day] = slots
	}
	slots[cell.Slot] = append(slots[cell.Slot], session)
}

var weekdayRank = map[string]int{
	"monday":    1,
	"mon":       1,
	"tuesday":   2,
	"tue":       2,
	"wednesday": 3,
	"wed":       3,
	"thursday":  4,
	"thu":       4,
	"friday":    5,
	"fri":       5,
	"saturday":  6,
	"sat":       6,
	"sunday":    7,
	"sun":       7,
}

// SortDays sorts day names in weekday order, unknown names last.
func SortDays(days []string) {
	sort.SliceStable(days, func(i, j int) bool {
		ri, rj := dayRank(days[i]), dayRank(days[j])
		if ri != rj {
			return ri < rj
		}
		return days[i] < days[j]
	})
}

func dayRank(day string) int {
	if r, ok := weekdayRank[strings.ToLower(day)]; ok {
		return r
	}
	return len(weekdayRank)
}
