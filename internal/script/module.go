package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ttedit/internal/app"
)

// module implements the tt API table.
type module struct {
	session Session
}

func newModule(session Session) *module {
	return &module{session: session}
}

// register installs the tt global into L.
func (m *module) register(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "move", L.NewFunction(m.move))
	L.SetField(mod, "add", L.NewFunction(m.add))
	L.SetField(mod, "remove", L.NewFunction(m.remove))
	L.SetField(mod, "update", L.NewFunction(m.update))
	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "count", L.NewFunction(m.count))
	L.SetField(mod, "undo", L.NewFunction(m.undo))
	L.SetField(mod, "redo", L.NewFunction(m.redo))
	L.SetField(mod, "can_undo", L.NewFunction(m.canUndo))
	L.SetField(mod, "can_redo", L.NewFunction(m.canRedo))
	L.SetField(mod, "history", L.NewFunction(m.history))
	L.SetField(mod, "conflicts", L.NewFunction(m.conflicts))
	L.SetField(mod, "days", L.NewFunction(m.days))
	L.SetField(mod, "slots", L.NewFunction(m.slots))

	L.SetGlobal("tt", mod)
}

// move(from_day, from_slot, to_day, to_slot, index) -> bool
func (m *module) move(L *lua.LState) int {
	from := checkCell(L, 1)
	to := checkCell(L, 3)
	index := checkIndex(L, 5)

	res := m.session.Move(from, to, index)
	L.Push(lua.LBool(res.Applied))
	return 1
}

// add(day, slot, session) -> bool
func (m *module) add(L *lua.LState) int {
	cell := checkCell(L, 1)
	session := checkSession(L, 3)

	res := m.session.Add(cell, session)
	L.Push(lua.LBool(res.Applied))
	return 1
}

// remove(day, slot, index) -> bool
func (m *module) remove(L *lua.LState) int {
	cell := checkCell(L, 1)
	index := checkIndex(L, 3)

	res := m.session.Remove(cell, index)
	L.Push(lua.LBool(res.Applied))
	return 1
}

// update(day, slot, index, fields) -> bool
func (m *module) update(L *lua.LState) int {
	cell := checkCell(L, 1)
	index := checkIndex(L, 3)
	patch := checkPatch(L, 4)

	res := m.session.Update(cell, index, patch)
	L.Push(lua.LBool(res.Applied))
	return 1
}

// get(day, slot, index) -> table|nil
func (m *module) get(L *lua.LState) int {
	cell := checkCell(L, 1)
	index := checkIndex(L, 3)

	session, ok := m.session.Schedule().SessionAt(cell.Day, cell.Slot, index)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(sessionTable(L, session))
	return 1
}

// count(day, slot) -> number
func (m *module) count(L *lua.LState) int {
	cell := checkCell(L, 1)
	L.Push(lua.LNumber(len(m.session.Schedule().Sessions(cell))))
	return 1
}

// undo() -> bool
func (m *module) undo(L *lua.LState) int {
	L.Push(lua.LBool(m.session.Undo() == nil))
	return 1
}

// redo() -> bool
func (m *module) redo(L *lua.LState) int {
	L.Push(lua.LBool(m.session.Redo() == nil))
	return 1
}

// can_undo() -> bool
func (m *module) canUndo(L *lua.LState) int {
	L.Push(lua.LBool(m.session.CanUndo()))
	return 1
}

// can_redo() -> bool
func (m *module) canRedo(L *lua.LState) int {
	L.Push(lua.LBool(m.session.CanRedo()))
	return 1
}

// history() -> {description...}
func (m *module) history(L *lua.LState) int {
	timeline := m.session.Timeline()
	descriptions := make([]string, len(timeline))
	for i, entry := range timeline {
		descriptions[i] = entry.Description
	}
	L.Push(stringArray(L, descriptions))
	return 1
}

// conflicts() -> {message...}
func (m *module) conflicts(L *lua.LState) int {
	conflicts := m.session.Conflicts()
	messages := make([]string, len(conflicts))
	for i, c := range conflicts {
		messages[i] = c.Message
	}
	L.Push(stringArray(L, messages))
	return 1
}

// days() -> {day...}
func (m *module) days(L *lua.LState) int {
	L.Push(stringArray(L, m.session.Grid().Days))
	return 1
}

// slots() -> {slot...}
func (m *module) slots(L *lua.LState) int {
	L.Push(stringArray(L, m.session.Grid().Slots))
	return 1
}

var _ Session = (*app.Editor)(nil)
