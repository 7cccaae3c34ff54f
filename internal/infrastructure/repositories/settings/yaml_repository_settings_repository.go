package settings

import (
	"path/filepath"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// RepositorySettingsDir is the hidden directory holding the repository settings.
const RepositorySettingsDir = ".wf"

// YAMLRepositorySettingsRepository stores the settings of a repository in
// <workdir>/.wf/config.yaml.
type YAMLRepositorySettingsRepository struct{}

var _ repositories.RepositorySettingsRepository = (*YAMLRepositorySettingsRepository)(nil)

// NewYAMLRepositorySettingsRepository creates a new YAMLRepositorySettingsRepository.
func NewYAMLRepositorySettingsRepository() *YAMLRepositorySettingsRepository {
	return &YAMLRepositorySettingsRepository{}
}

// Path returns the settings file of the repository rooted at workDir.
func Path(workDir string) string {
	return filepath.Join(workDir, RepositorySettingsDir, settingsFileName)
}

func (r *YAMLRepositorySettingsRepository) Load(workDir string) (*entities.RepositorySettings, error) {
	path := Path(workDir)
	var settings entities.RepositorySettings
	if err := readYAML(path, &settings); err != nil {
		return nil, &entities.SettingsError{Scope: entities.ScopeRepository, Op: "load", Path: path, Err: err}
	}
	return &settings, nil
}

func (r *YAMLRepositorySettingsRepository) Save(workDir string, settings *entities.RepositorySettings) error {
	path := Path(workDir)
	if err := writeYAML(path, settings); err != nil {
		return &entities.SettingsError{Scope: entities.ScopeRepository, Op: "save", Path: path, Err: err}
	}
	return nil
}
