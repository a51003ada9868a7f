package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ttedit/internal/app"
	"github.com/dshills/ttedit/internal/timetable"
)

// DefaultTimeout bounds script execution when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Session is the editing session a script drives.
type Session interface {
	Move(from, to timetable.Cell, index int) timetable.Result
	Add(cell timetable.Cell, session timetable.Session) timetable.Result
	Remove(cell timetable.Cell, index int) timetable.Result
	Update(cell timetable.Cell, index int, patch timetable.SessionPatch) timetable.Result
	Undo() error
	Redo() error
	CanUndo() bool
	CanRedo() bool
	Schedule() timetable.Schedule
	Timeline() []app.TimelineEntry
	Conflicts() []timetable.Conflict
	Grid() app.Grid
}

// Runner executes edit scripts.
type Runner struct {
	session Session
	timeout time.Duration
	output  io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the execution timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.timeout = d
		}
	}
}

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.output = w
		}
	}
}

// NewRunner creates a runner bound to session.
func NewRunner(session Session, opts ...Option) *Runner {
	r := &Runner{
		session: session,
		timeout: DefaultTimeout,
		output:  os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile executes the Lua file at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ScriptError{Script: path, Err: err}
	}
	return r.RunString(ctx, path, string(data))
}

// RunString executes Lua source. name identifies the script in errors.
// Execution is synchronous; edits made before a failure are kept.
func (r *Runner) RunString(ctx context.Context, name, code string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	L := newState(r.output)
	defer L.Close()
	L.SetContext(ctx)

	newModule(r.session).register(L)

	fn, err := L.Load(strings.NewReader(code), name)
	if err != nil {
		return &ScriptError{Script: name, Err: err}
	}

	err = doWithRecovery(func() error {
		L.Push(fn)
		return L.PCall(0, lua.MultRet, nil)
	})
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("%w: %w", ErrExecutionTimeout, ctx.Err())
		case ctx.Err() != nil:
			err = ctx.Err()
		}
		return &ScriptError{Script: name, Err: err}
	}
	return nil
}

// newState creates a Lua state with only safe libraries opened.
func newState(output io.Writer) *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	// Open base library (print, type, pairs, ipairs, etc.)
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(output, strings.Join(parts, "\t"))
		return 0
	}))

	return L
}

func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
