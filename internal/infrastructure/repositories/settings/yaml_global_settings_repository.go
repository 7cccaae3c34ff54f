package settings

import (
	"path/filepath"

	"github.com/adrg/xdg"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

const settingsFileName = "config.yaml"

// GlobalSettingsRelPath is the global settings file, relative to the XDG config home.
var GlobalSettingsRelPath = filepath.Join(entities.AppName, settingsFileName) //nolint:gochecknoglobals // derived constant

// YAMLGlobalSettingsRepository stores the global settings in a YAML file.
type YAMLGlobalSettingsRepository struct {
	path string
}

var _ repositories.GlobalSettingsRepository = (*YAMLGlobalSettingsRepository)(nil)

// NewYAMLGlobalSettingsRepository stores the settings at path.
func NewYAMLGlobalSettingsRepository(path string) *YAMLGlobalSettingsRepository {
	return &YAMLGlobalSettingsRepository{path: path}
}

// NewDefaultGlobalSettingsRepository stores the settings under the XDG config
// home ($XDG_CONFIG_HOME/wf/config.yaml). The directory is created on first save.
func NewDefaultGlobalSettingsRepository() *YAMLGlobalSettingsRepository {
	path := filepath.Join(xdg.ConfigHome, GlobalSettingsRelPath)
	logger.Debugf("Global settings file: %s", path)
	return NewYAMLGlobalSettingsRepository(path)
}

// Path returns the settings file.
func (r *YAMLGlobalSettingsRepository) Path() string {
	return r.path
}

// Load reads the settings, expanding ${ENV_VAR} tokens.
func (r *YAMLGlobalSettingsRepository) Load() (*entities.GlobalSettings, error) {
	var settings entities.GlobalSettings
	if err := readYAML(r.path, &settings); err != nil {
		return nil, &entities.SettingsError{Scope: entities.ScopeGlobal, Op: "load", Path: r.path, Err: err}
	}
	if settings.IssueTracker != nil {
		settings.IssueTracker.Token = resolveToken(settings.IssueTracker.Token)
	}
	return &settings, nil
}

// Save writes the settings.
func (r *YAMLGlobalSettingsRepository) Save(settings *entities.GlobalSettings) error {
	if err := writeYAML(r.path, settings); err != nil {
		return &entities.SettingsError{Scope: entities.ScopeGlobal, Op: "save", Path: r.path, Err: err}
	}
	return nil
}
