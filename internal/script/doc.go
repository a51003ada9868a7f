// Package script runs Lua edit scripts against a timetable editing session.
//
// Scripts see a global table tt:
//
//	tt.move(from_day, from_slot, to_day, to_slot, index) -> applied
//	tt.add(day, slot, {subject=..., teacher=..., type="theory", ...}) -> applied
//	tt.remove(day, slot, index) -> applied
//	tt.update(day, slot, index, {room=...}) -> applied
//	tt.get(day, slot, index) -> session table or nil
//	tt.count(day, slot) -> number
//	tt.undo(), tt.redo() -> ok
//	tt.can_undo(), tt.can_redo() -> bool
//	tt.history() -> {description, ...}
//	tt.conflicts() -> {message, ...}
//	tt.days(), tt.slots() -> {label, ...}
//
// Session indices are 1-based as is usual in Lua. Only the base, table,
// string and math libraries are available.
package script
