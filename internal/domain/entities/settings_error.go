package entities

import (
	"errors"
	"fmt"
)

// Settings scopes.
const (
	ScopeGlobal     = "global"
	ScopeRepository = "repository"
)

// ErrPromptCancelled is returned when the user aborts an interactive prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

// SettingsError reports a failure to read or write a settings scope.
type SettingsError struct {
	Scope string
	Op    string // "load" or "save"
	Path  string
	Err   error
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("cannot %s %s settings %s: %v", e.Op, e.Scope, e.Path, e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// InputError reports a failed or cancelled interactive prompt.
type InputError struct {
	Prompt string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%q: %v", e.Prompt, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
