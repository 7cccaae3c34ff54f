//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workflow/internal"
	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/infrastructure/controllers"
	"github.com/rios0rios0/workflow/test/domain/commanddoubles"
)

type rootFixture struct {
	start *commanddoubles.StubStartCommand
	push  *commanddoubles.StubPushCommand
	init  *commanddoubles.StubInitCommand
}

func newRoot(t *testing.T, args ...string) (*rootFixture, *bytes.Buffer, error) {
	t.Helper()

	f := &rootFixture{
		start: &commanddoubles.StubStartCommand{},
		push:  &commanddoubles.StubPushCommand{},
		init:  &commanddoubles.StubInitCommand{},
	}
	app := internal.NewAppInternal(controllers.NewControllers(
		controllers.NewInitController(f.init),
		controllers.NewStartController(f.start),
		controllers.NewPushController(f.push),
		controllers.NewNoopController(),
		controllers.NewTestController(),
	))

	root := buildRootCommand()
	addSubcommands(root, app)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	return f, &out, root.Execute()
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should run start with its ticket id", func(t *testing.T) {
		t.Parallel()

		// when
		f, _, err := newRoot(t, "start", "TK-421")

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, f.start.ExecuteCallCount)
		assert.Equal(t, "TK-421", f.start.LastOpts.TicketID)
		assert.Equal(t, ".", f.start.LastOpts.RepoDir)
	})

	t.Run("should reject start without a ticket id", func(t *testing.T) {
		t.Parallel()

		// when
		f, _, err := newRoot(t, "start")

		// then
		require.Error(t, err)
		var appErr *entities.AppError
		assert.NotErrorAs(t, err, &appErr)
		assert.Zero(t, f.start.ExecuteCallCount)
	})

	t.Run("should reject arguments on commands taking none", func(t *testing.T) {
		t.Parallel()

		// when
		f, _, err := newRoot(t, "push", "extra")

		// then
		require.Error(t, err)
		assert.Zero(t, f.push.ExecuteCallCount)
	})

	t.Run("should pass the directory flag to the commands", func(t *testing.T) {
		t.Parallel()

		// when
		f, _, err := newRoot(t, "-C", "/work/repo", "push")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/work/repo", f.push.LastOpts.RepoDir)
	})

	t.Run("should run the hidden test sub commands", func(t *testing.T) {
		t.Parallel()

		// when
		_, out, err := newRoot(t, "test", "sub2")

		// then
		require.NoError(t, err)
		assert.Equal(t, "sub 2\n", out.String())
	})

	t.Run("should run init", func(t *testing.T) {
		t.Parallel()

		// when
		f, _, err := newRoot(t, "init")

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, f.init.ExecuteCallCount)
	})
}
