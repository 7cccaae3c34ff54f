//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workflow/internal/domain/commands"
	"github.com/rios0rios0/workflow/internal/domain/entities"
	doubles "github.com/rios0rios0/workflow/test/infrastructure/repositorydoubles"
)

func TestPushCommand(t *testing.T) {
	t.Parallel()

	t.Run("should push the discovered repository", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.SpyGitRepository{Dir: workDir}
		locator := &doubles.StubGitLocator{Repository: repo}
		command := commands.NewPushCommand(locator)

		// when
		err := command.Execute(context.Background(), commands.PushOptions{RepoDir: "sub/dir"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"sub/dir"}, locator.DiscoverPaths)
		assert.Equal(t, 1, repo.PushCallCount)
	})

	t.Run("should lift push failures into git errors", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.SpyGitRepository{
			Dir:     workDir,
			PushErr: entities.NewGitError(entities.GitNotInABranch, "", nil),
		}
		command := commands.NewPushCommand(&doubles.StubGitLocator{Repository: repo})

		// when
		err := command.Execute(context.Background(), commands.PushOptions{RepoDir: "."})

		// then
		var appErr *entities.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, entities.AppGit, appErr.Kind)
		assert.ErrorIs(t, err, entities.ErrNotInABranch)
	})

	t.Run("should not push when discovery fails", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.SpyGitRepository{Dir: workDir}
		locator := &doubles.StubGitLocator{
			Repository:  repo,
			DiscoverErr: entities.NewGitError(entities.GitCannotOpenRepository, "", errors.New("boom")),
		}
		command := commands.NewPushCommand(locator)

		// when
		err := command.Execute(context.Background(), commands.PushOptions{RepoDir: "."})

		// then
		assert.ErrorIs(t, err, entities.ErrCannotOpenRepository)
		assert.Zero(t, repo.PushCallCount)
	})
}
