package script

import (
	"errors"
	"fmt"
)

// Errors for script execution.
var (
	// ErrExecutionTimeout is returned when a script runs past its timeout.
	ErrExecutionTimeout = errors.New("script execution timeout")
)

// ScriptError reports a failed script run.
type ScriptError struct {
	// Script names the script, usually its file path.
	Script string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Script, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
