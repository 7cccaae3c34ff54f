package entities

import (
	"errors"
	"fmt"
)

// AppErrorKind enumerates the sources an AppError can come from.
type AppErrorKind int

const (
	AppConfigurationNotSet AppErrorKind = iota + 1
	AppIssueTracker
	AppGit
	AppInput
	AppConfiguration
	AppCliArgs
	AppNoGitWorkingDirectory
	AppUnexpected
)

// AppError is the single error type surfaced by commands. Err holds the
// error of the component that failed.
type AppError struct {
	Kind  AppErrorKind
	Scope string // only for AppConfigurationNotSet
	Err   error
}

// NewConfigurationNotSetError reports an unset settings scope.
func NewConfigurationNotSetError(scope string) *AppError {
	return &AppError{Kind: AppConfigurationNotSet, Scope: scope}
}

// NewNoGitWorkingDirectoryError reports a repository without a work tree.
func NewNoGitWorkingDirectoryError() *AppError {
	return &AppError{Kind: AppNoGitWorkingDirectory}
}

// NewCliArgsError wraps a command line parsing error.
func NewCliArgsError(err error) *AppError {
	return &AppError{Kind: AppCliArgs, Err: err}
}

func (e *AppError) Error() string {
	switch e.Kind {
	case AppConfigurationNotSet:
		if e.Scope != "" {
			return fmt.Sprintf("%s configuration is not set, please run init command first", e.Scope)
		}
		return "configuration is not set, please run init command first"
	case AppIssueTracker:
		return fmt.Sprintf("issue tracker error: %v", e.Err)
	case AppGit:
		return fmt.Sprintf("git error: %v", e.Err)
	case AppInput:
		return fmt.Sprintf("input error: %v", e.Err)
	case AppConfiguration:
		return fmt.Sprintf("configuration error: %v", e.Err)
	case AppCliArgs:
		return e.Err.Error()
	case AppNoGitWorkingDirectory:
		return "current repository has no working directory"
	default:
		return fmt.Sprintf("unexpected error: %v", e.Err)
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Lift converts any component error into an AppError. Errors that already
// carry an AppError are returned unchanged.
func Lift(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	var (
		gitErr      *GitError
		trackerErr  *IssueTrackerError
		settingsErr *SettingsError
		inputErr    *InputError
	)
	switch {
	case errors.As(err, &gitErr):
		return &AppError{Kind: AppGit, Err: err}
	case errors.As(err, &trackerErr):
		return &AppError{Kind: AppIssueTracker, Err: err}
	case errors.As(err, &settingsErr):
		return &AppError{Kind: AppConfiguration, Err: err}
	case errors.As(err, &inputErr):
		return &AppError{Kind: AppInput, Err: err}
	default:
		return &AppError{Kind: AppUnexpected, Err: err}
	}
}

// Adapt lifts the error of a (value, error) pair into an AppError.
func Adapt[T any](value T, err error) (T, error) {
	if err != nil {
		return value, Lift(err)
	}
	return value, nil
}

// AdaptMap is Adapt that also maps the success value.
func AdaptMap[T, U any](value T, err error, mapper func(T) U) (U, error) {
	if err != nil {
		var zero U
		return zero, Lift(err)
	}
	return mapper(value), nil
}
