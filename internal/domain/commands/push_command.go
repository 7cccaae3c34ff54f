package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// Push is the interface for the push command.
type Push interface {
	Execute(ctx context.Context, opts PushOptions) error
}

// PushOptions holds runtime options for the push command.
type PushOptions struct {
	RepoDir string
}

// PushCommand pushes the current branch to origin.
type PushCommand struct {
	locator repositories.GitLocator
}

// NewPushCommand creates a new PushCommand.
func NewPushCommand(locator repositories.GitLocator) *PushCommand {
	return &PushCommand{locator: locator}
}

// Execute discovers the repository and pushes its current branch.
func (it *PushCommand) Execute(ctx context.Context, opts PushOptions) error {
	repo, err := entities.Adapt(it.locator.Discover(opts.RepoDir))
	if err != nil {
		return err
	}

	if err = repo.Push(ctx); err != nil {
		return entities.Lift(err)
	}

	logger.Info("Current branch pushed to origin")
	return nil
}
