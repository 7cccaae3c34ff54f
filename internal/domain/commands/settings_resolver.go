package commands

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

const (
	minUserLength  = 3
	minTokenLength = 3
	tokenHelpURL   = "https://id.atlassian.com/manage-profile/security/api-tokens"
)

// SettingsResolver loads the global and repository settings and runs their
// interactive initialization.
//
// Whether a load may fall back to initialization is decided by the caller
// through the autoInit argument, never by the resolver itself.
type SettingsResolver struct {
	global     repositories.GlobalSettingsRepository
	repository repositories.RepositorySettingsRepository
	prompt     repositories.PromptRepository
}

// NewSettingsResolver creates a new SettingsResolver.
func NewSettingsResolver(
	global repositories.GlobalSettingsRepository,
	repository repositories.RepositorySettingsRepository,
	prompt repositories.PromptRepository,
) *SettingsResolver {
	return &SettingsResolver{
		global:     global,
		repository: repository,
		prompt:     prompt,
	}
}

// Global returns the global settings. When they are not set, it runs the
// initialization if autoInit is true and fails with a "not configured" error
// otherwise.
func (it *SettingsResolver) Global(autoInit bool) (*entities.GlobalSettings, error) {
	settings, err := it.global.Load()
	if err != nil {
		return nil, err
	}
	if settings.IsSet() {
		return settings, nil
	}
	if !autoInit {
		return nil, entities.NewConfigurationNotSetError(entities.ScopeGlobal)
	}

	logger.Info("Configuration is not set, starting initialization")
	return it.initGlobal(settings)
}

// Repository returns the settings of repo, with the same autoInit contract as Global.
func (it *SettingsResolver) Repository(
	repo repositories.GitRepository,
	autoInit bool,
) (*entities.RepositorySettings, error) {
	workDir, ok := repo.WorkDir()
	if !ok {
		return nil, entities.NewNoGitWorkingDirectoryError()
	}

	settings, err := it.repository.Load(workDir)
	if err != nil {
		return nil, err
	}
	if settings.IsSet() {
		return settings, nil
	}
	if !autoInit {
		return nil, entities.NewConfigurationNotSetError(entities.ScopeRepository)
	}

	logger.Info("Repository configuration is not set, starting initialization")
	return it.initRepository(repo, workDir, settings)
}

// InitGlobal runs the global initialization unconditionally, asking before
// overwriting existing settings.
func (it *SettingsResolver) InitGlobal() (*entities.GlobalSettings, error) {
	settings, err := it.global.Load()
	if err != nil {
		return nil, err
	}
	return it.initGlobal(settings)
}

// InitRepository runs the repository initialization unconditionally, asking
// before overwriting existing settings.
func (it *SettingsResolver) InitRepository(
	repo repositories.GitRepository,
) (*entities.RepositorySettings, error) {
	workDir, ok := repo.WorkDir()
	if !ok {
		return nil, entities.NewNoGitWorkingDirectoryError()
	}

	settings, err := it.repository.Load(workDir)
	if err != nil {
		return nil, err
	}
	return it.initRepository(repo, workDir, settings)
}

func (it *SettingsResolver) initGlobal(
	current *entities.GlobalSettings,
) (*entities.GlobalSettings, error) {
	if current.IsSet() {
		overwrite, err := it.prompt.Confirm(
			"Warning, your configuration is already defined, do you want to continue and overwrite it?",
			false,
		)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			return current, nil
		}
	}

	it.prompt.Println(banner())

	var old entities.IssueTrackerSettings
	if current.IssueTracker != nil {
		old = *current.IssueTracker
	}

	host, err := it.prompt.Text(repositories.TextPrompt{
		Message:    "What's the url of your Jira instance?",
		Default:    old.Host,
		Validators: []repositories.TextValidator{required(), absoluteURL()},
	})
	if err != nil {
		return nil, err
	}

	user, err := it.prompt.Text(repositories.TextPrompt{
		Message:    "What's your username?",
		Default:    old.User,
		Validators: []repositories.TextValidator{required(), minLength(minUserLength)},
	})
	if err != nil {
		return nil, err
	}

	it.prompt.Println("A token is required to authenticate you on Jira. You can create a token from " + tokenHelpURL)
	token, err := it.prompt.Text(repositories.TextPrompt{
		Message:    "What's your token?",
		Help:       "Use ${ENV_VAR} to read the token from the environment",
		Secret:     true,
		Validators: []repositories.TextValidator{required(), minLength(minTokenLength)},
	})
	if err != nil {
		return nil, err
	}

	settings := &entities.GlobalSettings{
		IssueTracker: &entities.IssueTrackerSettings{
			Type:  old.Type,
			Host:  host,
			User:  user,
			Token: token,
		},
	}
	if err = it.global.Save(settings); err != nil {
		return nil, err
	}

	logger.Debugf("Global settings saved for %s", host)
	return settings, nil
}

func (it *SettingsResolver) initRepository(
	repo repositories.GitRepository,
	workDir string,
	current *entities.RepositorySettings,
) (*entities.RepositorySettings, error) {
	if current.IsSet() {
		overwrite, err := it.prompt.Confirm(
			"Warning, your repository configuration is already defined, do you want to continue and overwrite it?",
			false,
		)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			return current, nil
		}
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, err
	}

	base, err := it.prompt.Select(
		"What branch do you want to use as base branch for features?",
		entities.SortBaseBranches(branches),
	)
	if err != nil {
		return nil, err
	}

	settings := &entities.RepositorySettings{BaseBranch: base}
	if err = it.repository.Save(workDir, settings); err != nil {
		return nil, err
	}

	logger.Debugf("Repository settings saved in %s", workDir)
	return settings, nil
}

func banner() string {
	return fmt.Sprintf(`
    __        _______
    \ \      / /  ___|
     \ \ /\ / /| |_
      \ V  V / |  _|
       \_/\_/  |_|     v%s

     <<<< Initialisation >>>>
`, entities.Version)
}
