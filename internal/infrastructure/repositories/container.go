package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	domainRepos "github.com/rios0rios0/workflow/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/workflow/internal/infrastructure/repositories/git"
	jiraRepo "github.com/rios0rios0/workflow/internal/infrastructure/repositories/jira"
	promptRepo "github.com/rios0rios0/workflow/internal/infrastructure/repositories/prompt"
	settingsRepo "github.com/rios0rios0/workflow/internal/infrastructure/repositories/settings"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register issue tracker registry with all tracker factories
	if err := container.Provide(func() *IssueTrackerRegistry {
		reg := NewIssueTrackerRegistry()
		reg.Register(entities.IssueTrackerJira, jiraRepo.NewIssueTrackerRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.GitLocator {
		return gitRepo.NewGitLocator(gitRepo.NewSSHAgentAuth())
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.GlobalSettingsRepository {
		return settingsRepo.NewDefaultGlobalSettingsRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.RepositorySettingsRepository {
		return settingsRepo.NewYAMLRepositorySettingsRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.PromptRepository {
		return promptRepo.NewSurveyPromptRepository()
	}); err != nil {
		return err
	}

	return nil
}
