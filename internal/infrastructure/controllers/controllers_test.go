//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workflow/internal/infrastructure/controllers"
	"github.com/rios0rios0/workflow/test/domain/commanddoubles"
)

func newCommandWithDir(dir string) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "wf"}
	cmd.Flags().String(controllers.RepoDirFlag, ".", "")
	if dir != "" {
		_ = cmd.Flags().Set(controllers.RepoDirFlag, dir)
	}
	return cmd
}

func TestStartController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the ticket and the directory to the command", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubStartCommand{}
		controller := controllers.NewStartController(command)

		// when
		err := controller.Execute(newCommandWithDir("/work/repo"), []string{"TK-421"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, command.ExecuteCallCount)
		assert.Equal(t, "TK-421", command.LastOpts.TicketID)
		assert.Equal(t, "/work/repo", command.LastOpts.RepoDir)
	})

	t.Run("should require exactly one argument", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewStartController(&commanddoubles.StubStartCommand{})
		args := controller.Args()

		// then
		assert.Error(t, args(nil, []string{}))
		assert.NoError(t, args(nil, []string{"TK-421"}))
		assert.Error(t, args(nil, []string{"TK-421", "TK-422"}))
	})

	t.Run("should return command errors unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		expected := errors.New("failed")
		controller := controllers.NewStartController(&commanddoubles.StubStartCommand{ExecuteErr: expected})

		// when
		err := controller.Execute(newCommandWithDir(""), []string{"TK-421"})

		// then
		assert.Same(t, expected, err)
	})
}

func TestPushController(t *testing.T) {
	t.Parallel()

	t.Run("should default the directory to the current one", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubPushCommand{}
		controller := controllers.NewPushController(command)

		// when
		err := controller.Execute(newCommandWithDir(""), nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, command.ExecuteCallCount)
		assert.Equal(t, ".", command.LastOpts.RepoDir)
		assert.Equal(t, "push", controller.GetBind().Use)
	})
}

func TestInitController(t *testing.T) {
	t.Parallel()

	t.Run("should run the init command in the selected directory", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubInitCommand{}
		controller := controllers.NewInitController(command)

		// when
		err := controller.Execute(newCommandWithDir("sub"), nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "sub", command.LastOpts.RepoDir)
	})
}

func TestTestController(t *testing.T) {
	t.Parallel()

	t.Run("should be hidden and print the name of each sub command", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewTestController()
		expected := map[string]string{"sub1": "sub 1\n", "sub2": "sub 2\n", "all": "All\n"}

		// when
		children := controller.Subcommands()

		// then
		assert.True(t, controller.GetBind().Hidden)
		require.Len(t, children, len(expected))
		for _, child := range children {
			var out bytes.Buffer
			child.SetOut(&out)
			require.NoError(t, child.RunE(child, nil))
			assert.Equal(t, expected[child.Use], out.String(), child.Use)
		}
	})
}

func TestNoopController(t *testing.T) {
	t.Parallel()

	t.Run("should succeed without doing anything", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewNoopController()

		// when
		err := controller.Execute(newCommandWithDir(""), nil)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "noop", controller.GetBind().Use)
	})
}
