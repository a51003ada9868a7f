// Package main is the entry point for the ttedit timetable editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/ttedit/internal/app"
	"github.com/dshills/ttedit/internal/config"
	"github.com/dshills/ttedit/internal/script"
	"github.com/dshills/ttedit/internal/timetable"
	"github.com/dshills/ttedit/internal/timetable/codec"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds parsed command line flags.
type options struct {
	ConfigPath    string
	SchedulePath  string
	ScriptPath    string
	OutputPath    string
	LogLevel      string
	ShowConflicts bool
	ShowVersion   bool
	ShowHelp      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "ttedit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.SchedulePath != "" {
		cfg.Schedule.Path = opts.SchedulePath
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Logging.Level),
		Output: stderr,
		Prefix: "ttedit",
	})

	var initial timetable.Schedule
	if cfg.Schedule.Path != "" {
		initial, err = codec.ReadFile(cfg.Schedule.Path, cfg.Schedule.JSONPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger.Info("loaded %d sessions from %s", initial.SessionCount(), cfg.Schedule.Path)
	}

	editor := app.NewEditor(initial,
		app.WithLogger(logger),
		app.WithMaxEntries(cfg.History.MaxEntries),
		app.WithGrid(app.Grid{Days: cfg.Schedule.Days, Slots: cfg.Schedule.Slots}),
	)

	if opts.ScriptPath != "" {
		runner := script.NewRunner(editor,
			script.WithTimeout(cfg.Script.Timeout()),
			script.WithOutput(stderr),
		)
		if err := runner.RunFile(ctx, opts.ScriptPath); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := writeSchedule(editor.Schedule(), opts.OutputPath, cfg.Schedule.JSONPath, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	printTimeline(stderr, editor.Timeline())
	if opts.ShowConflicts {
		printConflicts(stderr, editor.Conflicts())
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("ttedit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.SchedulePath, "schedule", "", "Timetable JSON file to edit")
	fs.StringVar(&opts.SchedulePath, "s", "", "Timetable JSON file to edit (shorthand)")
	fs.StringVar(&opts.ScriptPath, "script", "", "Lua edit script to run")
	fs.StringVar(&opts.ScriptPath, "e", "", "Lua edit script to run (shorthand)")
	fs.StringVar(&opts.OutputPath, "out", "", "Write the edited timetable here instead of stdout")
	fs.StringVar(&opts.OutputPath, "o", "", "Write the edited timetable here instead of stdout (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.ShowConflicts, "conflicts", false, "Report teacher and room double-bookings")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.ShowVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.ShowHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.ShowHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "ttedit - timetable editor with undo/redo history\n\n")
		fmt.Fprintf(stderr, "Usage: ttedit [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  ttedit -s week.json -e swap.lua        Print the edited timetable\n")
		fmt.Fprintf(stderr, "  ttedit -s week.json -e swap.lua -o out.json\n")
		fmt.Fprintf(stderr, "  ttedit -s week.json -conflicts         Check for double-bookings\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.ShowHelp {
		fs.Usage()
		return opts, flag.ErrHelp
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, fmt.Errorf("invalid log level %q", opts.LogLevel)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		return opts, errors.New("unexpected arguments")
	}

	return opts, nil
}

func writeSchedule(s timetable.Schedule, path, jsonPath string, stdout io.Writer) error {
	if path != "" {
		return codec.WriteFile(path, jsonPath, s)
	}
	data, err := codec.Encode(s)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

func printTimeline(w io.Writer, timeline []app.TimelineEntry) {
	fmt.Fprintf(w, "History (%d snapshots):\n", len(timeline))
	for _, entry := range timeline {
		marker := " "
		if entry.Current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s  %s\n", marker, entry.Timestamp.Format("15:04:05"), entry.Description)
	}
}

func printConflicts(w io.Writer, conflicts []timetable.Conflict) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, "No conflicts")
		return
	}
	fmt.Fprintf(w, "Conflicts (%d):\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Fprintf(w, "  [%s] %s\n", c.Severity, c.Message)
	}
}
