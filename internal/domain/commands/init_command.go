package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// Init is the interface for the init command.
type Init interface {
	Execute(ctx context.Context, opts InitOptions) error
}

// InitOptions holds runtime options for the init command.
type InitOptions struct {
	RepoDir string
}

// InitCommand refreshes the global settings and, inside a repository, the
// repository settings. It runs both initializations directly instead of going
// through the load-or-init path, so nothing is asked twice.
type InitCommand struct {
	settings *SettingsResolver
	locator  repositories.GitLocator
}

// NewInitCommand creates a new InitCommand.
func NewInitCommand(settings *SettingsResolver, locator repositories.GitLocator) *InitCommand {
	return &InitCommand{settings: settings, locator: locator}
}

// Execute runs the initialization flows.
func (it *InitCommand) Execute(_ context.Context, opts InitOptions) error {
	if _, err := it.settings.InitGlobal(); err != nil {
		return entities.Lift(err)
	}

	repo, err := it.locator.Discover(opts.RepoDir)
	if err != nil {
		logger.Infof("No repository found in %s, skipping repository initialization", opts.RepoDir)
		return nil //nolint:nilerr // running outside a repository is fine for init
	}

	if _, err = it.settings.InitRepository(repo); err != nil {
		return entities.Lift(err)
	}
	return nil
}
