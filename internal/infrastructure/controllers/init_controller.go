package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/workflow/internal/domain/commands"
	"github.com/rios0rios0/workflow/internal/domain/entities"
)

// InitController handles the "init" subcommand.
type InitController struct {
	command commands.Init
}

// NewInitController creates a new InitController.
func NewInitController(command commands.Init) *InitController {
	return &InitController{command: command}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init",
		Short: "Initialize workflow app settings",
		Long: `Ask for the issue tracker settings and, when run inside a repository,
for the base branch of new feature branches. Existing settings are only
overwritten after confirmation.`,
	}
}

// Execute runs the initialization.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) error {
	return it.command.Execute(context.Background(), commands.InitOptions{RepoDir: repoDir(cmd)})
}
