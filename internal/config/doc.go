// Package config loads ttedit settings.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← TTEDIT_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ttedit.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A config file looks like:
//
//	[history]
//	max_entries = 50
//
//	[logging]
//	level = "info"
//
//	[schedule]
//	path = "schedule.json"
//	json_path = "data.timetable.schedule"
//	days = ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday"]
//
//	[script]
//	timeout_ms = 5000
//
// A Watcher reloads the file when it changes on disk so that long-running
// editors can pick up new settings without a restart.
package config
