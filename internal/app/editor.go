package app

import (
	"slices"
	"sync"
	"time"

	"github.com/dshills/ttedit/internal/config"
	"github.com/dshills/ttedit/internal/engine/history"
	"github.com/dshills/ttedit/internal/timetable"
)

// Grid lists the days and time slots an editor presents.
type Grid struct {
	Days  []string
	Slots []string
}

// TimelineEntry describes one snapshot in the editor's history.
type TimelineEntry struct {
	ID          string
	Description string
	Timestamp   time.Time
	Current     bool
}

// Editor is one timetable editing session. It owns the live schedule and
// its undo/redo history. All methods are safe for concurrent use.
type Editor struct {
	mu sync.Mutex

	live   timetable.Schedule
	store  *timetable.Store
	grid   Grid
	logger *Logger
}

type editorOptions struct {
	logger      *Logger
	historyOpts []history.Option
	grid        Grid
}

// EditorOption configures an Editor.
type EditorOption func(*editorOptions)

// WithLogger sets the logger for the editor.
func WithLogger(l *Logger) EditorOption {
	return func(o *editorOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxEntries sets the number of snapshots the editor retains.
func WithMaxEntries(n int) EditorOption {
	return func(o *editorOptions) {
		o.historyOpts = append(o.historyOpts, history.WithMaxEntries(n))
	}
}

// WithClock sets the time source for snapshot timestamps.
func WithClock(now func() time.Time) EditorOption {
	return func(o *editorOptions) {
		o.historyOpts = append(o.historyOpts, history.WithClock(now))
	}
}

// WithGrid sets the days and slots the editor presents.
func WithGrid(g Grid) EditorOption {
	return func(o *editorOptions) {
		o.grid = g
	}
}

// NewEditor starts an editing session on initial. A nil initial schedule
// starts from an empty timetable.
func NewEditor(initial timetable.Schedule, opts ...EditorOption) *Editor {
	o := editorOptions{
		logger: NewNopLogger(),
		grid: Grid{
			Days:  config.DefaultDays(),
			Slots: config.DefaultSlots(),
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if initial == nil {
		initial = make(timetable.Schedule)
	}

	return &Editor{
		live:   initial.Clone(),
		store:  timetable.NewStore(initial, o.historyOpts...),
		grid:   o.grid,
		logger: o.logger.WithComponent("editor"),
	}
}

// Schedule returns a copy of the live schedule.
func (e *Editor) Schedule() timetable.Schedule {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live.Clone()
}

// Move moves a session between cells.
func (e *Editor) Move(from, to timetable.Cell, index int) timetable.Result {
	return e.edit(func(s timetable.Schedule) timetable.Result {
		return timetable.MoveSession(e.store, s, from, to, index)
	})
}

// Add appends a session to a cell.
func (e *Editor) Add(cell timetable.Cell, session timetable.Session) timetable.Result {
	return e.edit(func(s timetable.Schedule) timetable.Result {
		return timetable.AddSession(e.store, s, cell, session)
	})
}

// Remove deletes a session from a cell.
func (e *Editor) Remove(cell timetable.Cell, index int) timetable.Result {
	return e.edit(func(s timetable.Schedule) timetable.Result {
		return timetable.RemoveSession(e.store, s, cell, index)
	})
}

// Update applies a patch to a session.
func (e *Editor) Update(cell timetable.Cell, index int, patch timetable.SessionPatch) timetable.Result {
	return e.edit(func(s timetable.Schedule) timetable.Result {
		return timetable.UpdateSession(e.store, s, cell, index, patch)
	})
}

// edit runs a mutation against the live schedule and adopts its result.
// The returned schedule is a copy the caller may modify.
func (e *Editor) edit(mutate func(timetable.Schedule) timetable.Result) timetable.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := mutate(e.live)
	if !res.Applied {
		e.logger.Warn("edit ignored: %v", res.Reason)
		res.Schedule = res.Schedule.Clone()
		return res
	}

	e.live = res.Schedule
	e.logger.WithField("snapshots", e.store.Len()).Debug("%s", res.Description)

	res.Schedule = res.Schedule.Clone()
	return res
}

// Undo reverts the live schedule to the previous snapshot.
func (e *Editor) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	reverted := e.store.CurrentDescription()
	prev, ok := e.store.Undo()
	if !ok {
		return ErrNothingToUndo
	}
	e.live = prev
	e.logger.Debug("undo: %s", reverted)
	return nil
}

// Redo reapplies the next snapshot.
func (e *Editor) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, ok := e.store.Redo()
	if !ok {
		return ErrNothingToRedo
	}
	e.live = next
	e.logger.Debug("redo: %s", e.store.CurrentDescription())
	return nil
}

// CanUndo returns true if undo is available.
func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.CanRedo()
}

// UndoDescription names the edit Undo would revert.
func (e *Editor) UndoDescription() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.store.CanUndo() {
		return ""
	}
	return e.store.CurrentDescription()
}

// RedoDescription names the edit Redo would reapply.
func (e *Editor) RedoDescription() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.RedoDescription()
}

// Timeline returns the retained history, oldest first.
func (e *Editor) Timeline() []TimelineEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	snaps := e.store.Snapshots()
	cursor := e.store.Cursor()
	entries := make([]TimelineEntry, len(snaps))
	for i, s := range snaps {
		entries[i] = TimelineEntry{
			ID:          s.ID,
			Description: s.Description,
			Timestamp:   s.Timestamp,
			Current:     i == cursor,
		}
	}
	return entries
}

// Conflicts reports double-bookings in the live schedule.
func (e *Editor) Conflicts() []timetable.Conflict {
	e.mu.Lock()
	defer e.mu.Unlock()
	return timetable.DetectConflicts(e.live)
}

// Grid returns the days and slots the editor presents.
func (e *Editor) Grid() Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Grid{
		Days:  slices.Clone(e.grid.Days),
		Slots: slices.Clone(e.grid.Slots),
	}
}

// SetMaxEntries changes how many snapshots are retained.
func (e *Editor) SetMaxEntries(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.SetMaxEntries(n)
}

// MaxEntries returns how many snapshots are retained.
func (e *Editor) MaxEntries() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.MaxEntries()
}

// Reset discards all history and starts over from schedule.
func (e *Editor) Reset(schedule timetable.Schedule) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if schedule == nil {
		schedule = make(timetable.Schedule)
	}
	e.store.Clear()
	e.store.Push(schedule, timetable.InitialDescription)
	e.live = schedule.Clone()
	e.logger.Info("history reset")
}

// ApplyConfig applies settings that can change while editing.
func (e *Editor) ApplyConfig(cfg config.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.SetMaxEntries(cfg.History.MaxEntries)
	e.grid = Grid{
		Days:  slices.Clone(cfg.Schedule.Days),
		Slots: slices.Clone(cfg.Schedule.Slots),
	}
	e.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	e.logger.Info("config applied: max_entries=%d level=%s", e.store.MaxEntries(), cfg.Logging.Level)
}

// WatchConfig reloads the config file at path whenever it changes and
// applies it to the editor. Close the returned watcher to stop.
func (e *Editor) WatchConfig(path string) (*config.Watcher, error) {
	if path == "" {
		return nil, ErrNoConfigPath
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	w.OnChange(e.ApplyConfig)
	w.OnError(func(err error) {
		e.logger.Error("config reload failed: %v", err)
	})
	return w, nil
}
