package app

import (
	"errors"

	"github.com/dshills/ttedit/internal/engine/history"
)

// Errors returned by the editing session.
var (
	// ErrNothingToUndo indicates the editor is at the oldest snapshot.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the editor is at the newest snapshot.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrNoConfigPath indicates config watching was requested without a file.
	ErrNoConfigPath = errors.New("no config file to watch")
)
