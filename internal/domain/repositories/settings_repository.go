package repositories

import "github.com/rios0rios0/workflow/internal/domain/entities"

// GlobalSettingsRepository persists the user-wide settings.
type GlobalSettingsRepository interface {
	// Load returns the stored settings, or empty settings when none exist.
	Load() (*entities.GlobalSettings, error)
	Save(settings *entities.GlobalSettings) error
}

// RepositorySettingsRepository persists settings inside a repository work tree.
type RepositorySettingsRepository interface {
	// Load returns the settings stored under workDir, or empty settings when none exist.
	Load(workDir string) (*entities.RepositorySettings, error)
	Save(workDir string, settings *entities.RepositorySettings) error
}
