//go:build unit

package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/infrastructure/repositories/settings"
)

func TestYAMLGlobalSettingsRepository(t *testing.T) {
	t.Run("should load unset settings when the file does not exist", func(t *testing.T) {
		// given
		repo := settings.NewYAMLGlobalSettingsRepository(filepath.Join(t.TempDir(), "wf", "config.yaml"))

		// when
		loaded, err := repo.Load()

		// then
		require.NoError(t, err)
		assert.False(t, loaded.IsSet())
	})

	t.Run("should save and load the settings", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "wf", "config.yaml")
		repo := settings.NewYAMLGlobalSettingsRepository(path)
		saved := &entities.GlobalSettings{IssueTracker: &entities.IssueTrackerSettings{
			Type:  "jira",
			Host:  "https://example.atlassian.net",
			User:  "jdoe",
			Token: "secret",
		}}

		// when
		err := repo.Save(saved)
		loaded, loadErr := repo.Load()

		// then
		require.NoError(t, err)
		require.NoError(t, loadErr)
		assert.Equal(t, saved, loaded)
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("should expand environment references in the token but persist them as is", func(t *testing.T) {
		// given
		t.Setenv("WF_TEST_JIRA_TOKEN", "from-env")
		path := filepath.Join(t.TempDir(), "config.yaml")
		repo := settings.NewYAMLGlobalSettingsRepository(path)
		require.NoError(t, repo.Save(&entities.GlobalSettings{IssueTracker: &entities.IssueTrackerSettings{
			Host:  "https://example.atlassian.net",
			User:  "jdoe",
			Token: "${WF_TEST_JIRA_TOKEN}",
		}}))

		// when
		loaded, err := repo.Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-env", loaded.IssueTracker.Token)
		raw, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(raw), "${WF_TEST_JIRA_TOKEN}")
	})

	t.Run("should read the documented file layout", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "issue_tracker:\n  host: https://jira.local\n  user: jdoe\n  token: abc\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		repo := settings.NewYAMLGlobalSettingsRepository(path)

		// when
		loaded, err := repo.Load()

		// then
		require.NoError(t, err)
		require.True(t, loaded.IsSet())
		assert.Equal(t, "https://jira.local", loaded.IssueTracker.Host)
		assert.Equal(t, entities.IssueTrackerJira, loaded.IssueTracker.TrackerType())
	})

	t.Run("should report malformed files as load errors", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("issue_tracker: [unterminated"), 0o600))
		repo := settings.NewYAMLGlobalSettingsRepository(path)

		// when
		_, err := repo.Load()

		// then
		var settingsErr *entities.SettingsError
		require.ErrorAs(t, err, &settingsErr)
		assert.Equal(t, entities.ScopeGlobal, settingsErr.Scope)
		assert.Equal(t, "load", settingsErr.Op)
		assert.Equal(t, path, settingsErr.Path)
	})
}

func TestNewDefaultGlobalSettingsRepository(t *testing.T) {
	t.Run("should not create the settings directory until the first save", func(t *testing.T) {
		// given
		configHome := t.TempDir()
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", configHome)
		xdg.Reload()

		// when
		repo := settings.NewDefaultGlobalSettingsRepository()

		// then
		assert.Equal(t, filepath.Join(configHome, "wf", "config.yaml"), repo.Path())
		assert.NoDirExists(t, filepath.Join(configHome, "wf"))

		loaded, err := repo.Load()
		require.NoError(t, err)
		assert.False(t, loaded.IsSet())
		assert.NoDirExists(t, filepath.Join(configHome, "wf"))

		require.NoError(t, repo.Save(&entities.GlobalSettings{IssueTracker: &entities.IssueTrackerSettings{
			Host: "https://example.atlassian.net", User: "jdoe", Token: "secret",
		}}))
		assert.FileExists(t, filepath.Join(configHome, "wf", "config.yaml"))
	})
}

func TestYAMLRepositorySettingsRepository(t *testing.T) {
	t.Run("should store the settings under the hidden directory of the work dir", func(t *testing.T) {
		// given
		workDir := t.TempDir()
		repo := settings.NewYAMLRepositorySettingsRepository()

		// when
		err := repo.Save(workDir, &entities.RepositorySettings{BaseBranch: "develop"})
		loaded, loadErr := repo.Load(workDir)

		// then
		require.NoError(t, err)
		require.NoError(t, loadErr)
		assert.Equal(t, "develop", loaded.BaseBranch)
		assert.FileExists(t, filepath.Join(workDir, ".wf", "config.yaml"))
		assert.Equal(t, filepath.Join(workDir, ".wf", "config.yaml"), settings.Path(workDir))
	})

	t.Run("should load unset settings for a new repository", func(t *testing.T) {
		// given
		repo := settings.NewYAMLRepositorySettingsRepository()

		// when
		loaded, err := repo.Load(t.TempDir())

		// then
		require.NoError(t, err)
		assert.False(t, loaded.IsSet())
	})

	t.Run("should report write failures as save errors", func(t *testing.T) {
		// given
		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workDir, ".wf"), []byte("not a directory"), 0o600))
		repo := settings.NewYAMLRepositorySettingsRepository()

		// when
		err := repo.Save(workDir, &entities.RepositorySettings{BaseBranch: "main"})

		// then
		var settingsErr *entities.SettingsError
		require.ErrorAs(t, err, &settingsErr)
		assert.Equal(t, entities.ScopeRepository, settingsErr.Scope)
		assert.Equal(t, "save", settingsErr.Op)
	})
}
