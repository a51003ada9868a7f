package config

import (
	"slices"
	"strings"
	"time"

	"github.com/dshills/ttedit/internal/engine/history"
)

// Default values.
const (
	DefaultLogLevel      = "info"
	DefaultScriptTimeout = 5 * time.Second
)

// DefaultDays returns the default teaching days.
func DefaultDays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}

// DefaultSlots returns the default time-slot labels.
func DefaultSlots() []string {
	return []string{
		"09:00-10:00",
		"10:00-11:00",
		"11:00-12:00",
		"12:00-13:00",
		"13:00-14:00",
		"14:00-15:00",
		"15:00-16:00",
	}
}

// Config holds all ttedit settings.
type Config struct {
	History  HistoryConfig  `toml:"history"`
	Logging  LoggingConfig  `toml:"logging"`
	Schedule ScheduleConfig `toml:"schedule"`
	Script   ScriptConfig   `toml:"script"`
}

// HistoryConfig controls the undo/redo history.
type HistoryConfig struct {
	// MaxEntries is the number of snapshots retained.
	MaxEntries int `toml:"max_entries" env:"TTEDIT_HISTORY_MAX_ENTRIES"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" env:"TTEDIT_LOG_LEVEL"`
}

// ScheduleConfig locates the schedule document and describes its grid.
type ScheduleConfig struct {
	// Path is the schedule JSON file.
	Path string `toml:"path" env:"TTEDIT_SCHEDULE_PATH"`

	// JSONPath locates the schedule inside the document. Empty means the
	// whole document is the schedule.
	JSONPath string `toml:"json_path" env:"TTEDIT_SCHEDULE_JSON_PATH"`

	// Days are the teaching days shown in the grid.
	Days []string `toml:"days" env:"TTEDIT_SCHEDULE_DAYS" envSeparator:","`

	// Slots are the time-slot labels shown in the grid.
	Slots []string `toml:"slots" env:"TTEDIT_SCHEDULE_SLOTS" envSeparator:","`
}

// ScriptConfig limits edit script execution.
type ScriptConfig struct {
	// TimeoutMS bounds script run time in milliseconds. Zero disables the limit.
	TimeoutMS int `toml:"timeout_ms" env:"TTEDIT_SCRIPT_TIMEOUT_MS"`
}

// Timeout returns the script timeout as a duration.
func (c ScriptConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		History: HistoryConfig{
			MaxEntries: history.DefaultMaxEntries,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Schedule: ScheduleConfig{
			Days:  DefaultDays(),
			Slots: DefaultSlots(),
		},
		Script: ScriptConfig{
			TimeoutMS: int(DefaultScriptTimeout / time.Millisecond),
		},
	}
}

// Clone returns a copy of the configuration that shares no slices.
func (c Config) Clone() Config {
	c.Schedule.Days = slices.Clone(c.Schedule.Days)
	c.Schedule.Slots = slices.Clone(c.Schedule.Slots)
	return c
}

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if c.History.MaxEntries < 0 {
		return &ValidationError{Setting: "history.max_entries", Message: "must not be negative"}
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		return &ValidationError{
			Setting: "logging.level",
			Message: "must be one of debug, info, warn, error; got " + c.Logging.Level,
		}
	}
	if err := validateLabels("schedule.days", c.Schedule.Days); err != nil {
		return err
	}
	if err := validateLabels("schedule.slots", c.Schedule.Slots); err != nil {
		return err
	}
	if c.Script.TimeoutMS < 0 {
		return &ValidationError{Setting: "script.timeout_ms", Message: "must not be negative"}
	}
	return nil
}

func validateLabels(setting string, labels []string) error {
	if len(labels) == 0 {
		return &ValidationError{Setting: setting, Message: "must not be empty"}
	}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			return &ValidationError{Setting: setting, Message: "must not contain blank entries"}
		}
		if seen[l] {
			return &ValidationError{Setting: setting, Message: "duplicate entry " + l}
		}
		seen[l] = true
	}
	return nil
}
