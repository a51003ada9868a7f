package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ttedit/internal/timetable"
)

// checkCell reads a day and slot pair starting at argument n.
func checkCell(L *lua.LState, n int) timetable.Cell {
	return timetable.Cell{
		Day:  L.CheckString(n),
		Slot: L.CheckString(n + 1),
	}
}

// checkIndex reads a 1-based session index and returns it 0-based.
func checkIndex(L *lua.LState, n int) int {
	return L.CheckInt(n) - 1
}

// checkSession reads a session table. subject is required.
func checkSession(L *lua.LState, n int) timetable.Session {
	tbl := L.CheckTable(n)

	subject, ok := stringField(L, tbl, "subject")
	if !ok || subject == "" {
		L.ArgError(n, "subject is required")
	}

	s := timetable.Session{Subject: subject}
	s.Teacher, _ = stringField(L, tbl, "teacher")
	s.Room, _ = stringField(L, tbl, "room")
	s.Branch, _ = stringField(L, tbl, "branch")
	s.Section, _ = stringField(L, tbl, "section")
	s.Students, _ = intField(L, tbl, "students")
	if t, ok := typeField(L, tbl); ok {
		s.Type = t
	}
	return s
}

// checkPatch reads a table of fields to change. Absent fields are left alone.
func checkPatch(L *lua.LState, n int) timetable.SessionPatch {
	tbl := L.CheckTable(n)

	var p timetable.SessionPatch
	if v, ok := stringField(L, tbl, "subject"); ok {
		p.Subject = &v
	}
	if v, ok := stringField(L, tbl, "teacher"); ok {
		p.Teacher = &v
	}
	if v, ok := stringField(L, tbl, "room"); ok {
		p.Room = &v
	}
	if v, ok := stringField(L, tbl, "branch"); ok {
		p.Branch = &v
	}
	if v, ok := stringField(L, tbl, "section"); ok {
		p.Section = &v
	}
	if v, ok := intField(L, tbl, "students"); ok {
		p.Students = &v
	}
	if v, ok := typeField(L, tbl); ok {
		p.Type = &v
	}
	return p
}

func stringField(L *lua.LState, tbl *lua.LTable, key string) (string, bool) {
	switch v := L.GetField(tbl, key).(type) {
	case lua.LString:
		return string(v), true
	case *lua.LNilType:
		return "", false
	default:
		L.RaiseError("field %s must be a string, got %s", key, v.Type())
		return "", false
	}
}

func intField(L *lua.LState, tbl *lua.LTable, key string) (int, bool) {
	switch v := L.GetField(tbl, key).(type) {
	case lua.LNumber:
		return int(v), true
	case *lua.LNilType:
		return 0, false
	default:
		L.RaiseError("field %s must be a number, got %s", key, v.Type())
		return 0, false
	}
}

func typeField(L *lua.LState, tbl *lua.LTable) (timetable.SessionType, bool) {
	name, ok := stringField(L, tbl, "type")
	if !ok {
		return 0, false
	}
	t, err := timetable.ParseSessionType(name)
	if err != nil {
		L.RaiseError("%v", err)
		return 0, false
	}
	return t, true
}

// sessionTable converts a session to a Lua table.
func sessionTable(L *lua.LState, s timetable.Session) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "subject", lua.LString(s.Subject))
	L.SetField(tbl, "teacher", lua.LString(s.Teacher))
	L.SetField(tbl, "room", lua.LString(s.Room))
	L.SetField(tbl, "branch", lua.LString(s.Branch))
	L.SetField(tbl, "section", lua.LString(s.Section))
	L.SetField(tbl, "type", lua.LString(s.Type.String()))
	L.SetField(tbl, "students", lua.LNumber(s.Students))
	return tbl
}

func stringArray(L *lua.LState, values []string) *lua.LTable {
	tbl := L.CreateTable(len(values), 0)
	for _, v := range values {
		tbl.Append(lua.LString(v))
	}
	return tbl
}
