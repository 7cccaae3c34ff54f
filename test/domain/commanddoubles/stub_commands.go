//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/workflow/internal/domain/commands"
)

// StubStartCommand is a stub implementation of commands.Start.
type StubStartCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.StartOptions
}

var _ commands.Start = (*StubStartCommand)(nil)

func (s *StubStartCommand) Execute(_ context.Context, opts commands.StartOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubPushCommand is a stub implementation of commands.Push.
type StubPushCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.PushOptions
}

var _ commands.Push = (*StubPushCommand)(nil)

func (s *StubPushCommand) Execute(_ context.Context, opts commands.PushOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubInitCommand is a stub implementation of commands.Init.
type StubInitCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.InitOptions
}

var _ commands.Init = (*StubInitCommand)(nil)

func (s *StubInitCommand) Execute(_ context.Context, opts commands.InitOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
