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

func TestInitCommand(t *testing.T) {
	t.Parallel()

	t.Run("should initialize the global and the repository settings", func(t *testing.T) {
		t.Parallel()

		// given
		global := &doubles.InMemoryGlobalSettingsRepository{}
		repoSets := &doubles.InMemoryRepositorySettingsRepository{}
		prompt := &doubles.StubPromptRepository{
			TextAnswers:  []string{"https://example.atlassian.net", "jdoe", "token"},
			SelectAnswer: "develop",
		}
		repo := &doubles.SpyGitRepository{Dir: workDir, BranchNames: []string{"develop"}}
		command := commands.NewInitCommand(
			commands.NewSettingsResolver(global, repoSets, prompt),
			&doubles.StubGitLocator{Repository: repo},
		)

		// when
		err := command.Execute(context.Background(), commands.InitOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, global.SaveCount)
		assert.Equal(t, "develop", repoSets.Settings[workDir].BaseBranch)
	})

	t.Run("should ask before overwriting and skip the prompts when declined", func(t *testing.T) {
		t.Parallel()

		// given
		global := &doubles.InMemoryGlobalSettingsRepository{
			Settings: &entities.GlobalSettings{IssueTracker: &entities.IssueTrackerSettings{Host: "https://x.io"}},
		}
		repoSets := &doubles.InMemoryRepositorySettingsRepository{
			Settings: map[string]*entities.RepositorySettings{workDir: {BaseBranch: "main"}},
		}
		prompt := &doubles.StubPromptRepository{ConfirmAnswer: false}
		command := commands.NewInitCommand(
			commands.NewSettingsResolver(global, repoSets, prompt),
			&doubles.StubGitLocator{Repository: &doubles.SpyGitRepository{Dir: workDir}},
		)

		// when
		err := command.Execute(context.Background(), commands.InitOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		assert.Len(t, prompt.Confirms, 2)
		assert.Empty(t, prompt.TextPrompts)
		assert.Zero(t, global.SaveCount)
		assert.Zero(t, repoSets.SaveCount)
	})

	t.Run("should skip the repository outside of a repository", func(t *testing.T) {
		t.Parallel()

		// given
		global := &doubles.InMemoryGlobalSettingsRepository{}
		repoSets := &doubles.InMemoryRepositorySettingsRepository{}
		prompt := &doubles.StubPromptRepository{
			TextAnswers: []string{"https://example.atlassian.net", "jdoe", "token"},
		}
		command := commands.NewInitCommand(
			commands.NewSettingsResolver(global, repoSets, prompt),
			&doubles.StubGitLocator{DiscoverErr: entities.NewGitError(entities.GitCannotOpenRepository, "", nil)},
		)

		// when
		err := command.Execute(context.Background(), commands.InitOptions{RepoDir: "/tmp"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, global.SaveCount)
		assert.Empty(t, prompt.SelectOptions)
		assert.Zero(t, repoSets.SaveCount)
	})

	t.Run("should lift global initialization failures", func(t *testing.T) {
		t.Parallel()

		// given
		locator := &doubles.StubGitLocator{Repository: &doubles.SpyGitRepository{Dir: workDir}}
		command := commands.NewInitCommand(
			commands.NewSettingsResolver(
				&doubles.InMemoryGlobalSettingsRepository{LoadErr: &entities.SettingsError{
					Scope: entities.ScopeGlobal, Op: "load", Err: errors.New("denied"),
				}},
				&doubles.InMemoryRepositorySettingsRepository{},
				&doubles.StubPromptRepository{},
			),
			locator,
		)

		// when
		err := command.Execute(context.Background(), commands.InitOptions{RepoDir: "."})

		// then
		var appErr *entities.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, entities.AppConfiguration, appErr.Kind)
		assert.Empty(t, locator.DiscoverPaths)
	})

	t.Run("should fail for a bare repository", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewInitCommand(
			commands.NewSettingsResolver(
				&doubles.InMemoryGlobalSettingsRepository{},
				&doubles.InMemoryRepositorySettingsRepository{},
				&doubles.StubPromptRepository{
					TextAnswers: []string{"https://example.atlassian.net", "jdoe", "token"},
				},
			),
			&doubles.StubGitLocator{Repository: &doubles.SpyGitRepository{Bare: true}},
		)

		// when
		err := command.Execute(context.Background(), commands.InitOptions{RepoDir: "."})

		// then
		var appErr *entities.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, entities.AppNoGitWorkingDirectory, appErr.Kind)
	})
}
