package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/ttedit/internal/config"
	"github.com/dshills/ttedit/internal/timetable"
)

var (
	mon10 = timetable.Cell{Day: "Monday", Slot: "10:00"}
	tue11 = timetable.Cell{Day: "Tuesday", Slot: "11:00"}
)

func algorithms() timetable.Session {
	return timetable.Session{Subject: "Algorithms", Teacher: "t1", Room: "R1", Type: timetable.Theory, Students: 40}
}

func circuits() timetable.Session {
	return timetable.Session{Subject: "Circuits", Teacher: "t1", Room: "R2", Type: timetable.Tutorial, Students: 20}
}

func TestEditorEditUndoRedo(t *testing.T) {
	initial := timetable.Schedule{"Monday": {"10:00": {algorithms()}}}
	e := NewEditor(initial)

	res := e.Move(mon10, tue11, 0)
	if !res.Applied {
		t.Fatalf("Move not applied: %v", res.Reason)
	}
	if e.UndoDescription() != "Moved Algorithms from Monday 10:00 to Tuesday 11:00" {
		t.Errorf("UndoDescription() = %q", e.UndoDescription())
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if diff := cmp.Diff(initial, e.Schedule()); diff != "" {
		t.Errorf("undo mismatch (-want +got):\n%s", diff)
	}
	if e.RedoDescription() != "Moved Algorithms from Monday 10:00 to Tuesday 11:00" {
		t.Errorf("RedoDescription() = %q", e.RedoDescription())
	}

	if err := e.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if diff := cmp.Diff(res.Schedule, e.Schedule()); diff != "" {
		t.Errorf("redo mismatch (-want +got):\n%s", diff)
	}

	if err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() = %v, want ErrNothingToRedo", err)
	}
}

func TestEditorNilInitial(t *testing.T) {
	e := NewEditor(nil)

	e.Add(mon10, algorithms())
	if !e.CanUndo() {
		t.Fatal("CanUndo() should be true after first edit")
	}
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := e.Schedule(); len(got) != 0 {
		t.Errorf("Schedule() = %v, want empty", got)
	}
	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() = %v, want ErrNothingToUndo", err)
	}
}

func TestEditorIgnoredEditIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	e := NewEditor(timetable.Schedule{}, WithLogger(logger))

	res := e.Remove(mon10, 0)

	if res.Applied {
		t.Fatal("Remove on empty schedule should not apply")
	}
	if len(e.Timeline()) != 1 {
		t.Errorf("Timeline() has %d entries, want 1", len(e.Timeline()))
	}
	if !strings.Contains(buf.String(), "[WARN]") || !strings.Contains(buf.String(), "session not found") {
		t.Errorf("ignored edit not logged: %q", buf.String())
	}
}

func TestEditorResultIsolated(t *testing.T) {
	e := NewEditor(nil)

	res := e.Add(mon10, algorithms())
	res.Schedule["Monday"]["10:00"][0].Subject = "Changed"

	if e.Schedule()["Monday"]["10:00"][0].Subject != "Algorithms" {
		t.Error("result aliases editor state")
	}

	snapshot := e.Schedule()
	delete(snapshot, "Monday")
	if len(e.Schedule()) != 1 {
		t.Error("Schedule() aliases editor state")
	}
}

func TestEditorUpdateAndConflicts(t *testing.T) {
	e := NewEditor(timetable.Schedule{"Monday": {"10:00": {algorithms(), circuits()}}})

	conflicts := e.Conflicts()
	if len(conflicts) != 1 || conflicts[0].Kind != timetable.TeacherConflict {
		t.Fatalf("Conflicts() = %+v, want one teacher conflict", conflicts)
	}

	teacher := "t2"
	e.Update(mon10, 1, timetable.SessionPatch{Teacher: &teacher})

	if got := e.Conflicts(); len(got) != 0 {
		t.Errorf("Conflicts() after update = %+v, want none", got)
	}
}

func TestEditorTimeline(t *testing.T) {
	clock := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	e := NewEditor(nil, WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	e.Add(mon10, algorithms())
	e.Add(tue11, circuits())
	_ = e.Undo()

	timeline := e.Timeline()
	var got []string
	current := -1
	for i, entry := range timeline {
		got = append(got, entry.Description)
		if entry.Current {
			current = i
		}
	}
	want := []string{
		timetable.InitialDescription,
		"Added Algorithms to Monday 10:00",
		"Added Circuits to Tuesday 11:00",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	if current != 1 {
		t.Errorf("current entry = %d, want 1", current)
	}
	if !timeline[0].Timestamp.Before(timeline[2].Timestamp) {
		t.Error("timestamps out of order")
	}
}

func TestEditorMaxEntries(t *testing.T) {
	e := NewEditor(nil, WithMaxEntries(3))

	for i := 0; i < 5; i++ {
		e.Add(mon10, algorithms())
	}

	if got := len(e.Timeline()); got != 3 {
		t.Errorf("len(Timeline()) = %d, want 3", got)
	}

	e.SetMaxEntries(2)
	if e.MaxEntries() != 2 || len(e.Timeline()) != 2 {
		t.Errorf("MaxEntries()=%d len=%d, want 2 and 2", e.MaxEntries(), len(e.Timeline()))
	}
}

func TestEditorReset(t *testing.T) {
	e := NewEditor(nil)
	e.Add(mon10, algorithms())

	next := timetable.Schedule{"Friday": {"09:00": {circuits()}}}
	e.Reset(next)

	if e.CanUndo() || e.CanRedo() {
		t.Error("Reset should clear history")
	}
	if diff := cmp.Diff(next, e.Schedule()); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestEditorApplyConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	e := NewEditor(nil, WithLogger(logger))

	cfg := config.Default()
	cfg.History.MaxEntries = 4
	cfg.Logging.Level = "error"
	cfg.Schedule.Days = []string{"Sat"}
	e.ApplyConfig(cfg)

	if e.MaxEntries() != 4 {
		t.Errorf("MaxEntries() = %d, want 4", e.MaxEntries())
	}
	if logger.Level() != LogLevelError {
		t.Errorf("logger level = %v, want ERROR", logger.Level())
	}
	if diff := cmp.Diff([]string{"Sat"}, e.Grid().Days); diff != "" {
		t.Errorf("grid days mismatch (-want +got):\n%s", diff)
	}
}

func TestEditorWatchConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ttedit.toml")
	if err := os.WriteFile(path, []byte("[history]\nmax_entries = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewEditor(nil)
	w, err := e.WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[history]\nmax_entries = 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for e.MaxEntries() != 6 {
		if time.Now().After(deadline) {
			t.Fatalf("MaxEntries() = %d, want 6 after reload", e.MaxEntries())
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, err := e.WatchConfig(""); !errors.Is(err, ErrNoConfigPath) {
		t.Errorf("WatchConfig(\"\") = %v, want ErrNoConfigPath", err)
	}
}

func TestEditorDefaultGrid(t *testing.T) {
	e := NewEditor(nil)
	g := e.Grid()
	if diff := cmp.Diff(config.DefaultDays(), g.Days); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}

	g.Days[0] = "Changed"
	if e.Grid().Days[0] != "Monday" {
		t.Error("Grid() aliases editor state")
	}
}
