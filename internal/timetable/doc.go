// Package timetable models a weekly class timetable and the edits that can
// be made to it.
//
// A Schedule maps day names to time-slot labels to the sessions held in that
// slot. A slot may hold several sessions, for example parallel sections.
//
// The mutation functions (MoveSession, AddSession, RemoveSession,
// UpdateSession) never modify the schedule they are given. Each returns a
// Result carrying a new Schedule and records it in a Store with a
// human-readable description. When the target session does not exist the
// edit is not applied: the input schedule is returned as-is, nothing is
// recorded, and Result.Reason explains why.
//
// DetectConflicts reports teachers and rooms booked twice in the same slot.
package timetable
