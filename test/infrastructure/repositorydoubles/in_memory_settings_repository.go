//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// InMemoryGlobalSettingsRepository implements repositories.GlobalSettingsRepository in memory.
type InMemoryGlobalSettingsRepository struct {
	Settings  *entities.GlobalSettings
	LoadErr   error
	SaveErr   error
	SaveCount int
}

var _ repositories.GlobalSettingsRepository = (*InMemoryGlobalSettingsRepository)(nil)

func (r *InMemoryGlobalSettingsRepository) Load() (*entities.GlobalSettings, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if r.Settings == nil {
		return &entities.GlobalSettings{}, nil
	}
	return r.Settings, nil
}

func (r *InMemoryGlobalSettingsRepository) Save(settings *entities.GlobalSettings) error {
	r.SaveCount++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Settings = settings
	return nil
}

// InMemoryRepositorySettingsRepository implements
// repositories.RepositorySettingsRepository in memory, keyed by work dir.
type InMemoryRepositorySettingsRepository struct {
	Settings  map[string]*entities.RepositorySettings
	LoadErr   error
	SaveErr   error
	SaveCount int
}

var _ repositories.RepositorySettingsRepository = (*InMemoryRepositorySettingsRepository)(nil)

func (r *InMemoryRepositorySettingsRepository) Load(workDir string) (*entities.RepositorySettings, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if settings, ok := r.Settings[workDir]; ok {
		return settings, nil
	}
	return &entities.RepositorySettings{}, nil
}

func (r *InMemoryRepositorySettingsRepository) Save(workDir string, settings *entities.RepositorySettings) error {
	r.SaveCount++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	if r.Settings == nil {
		r.Settings = make(map[string]*entities.RepositorySettings)
	}
	r.Settings[workDir] = settings
	return nil
}
