package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/workflow/internal/domain/commands"
	"github.com/rios0rios0/workflow/internal/domain/entities"
)

// PushController handles the "push" subcommand.
type PushController struct {
	command commands.Push
}

// NewPushController creates a new PushController.
func NewPushController(command commands.Push) *PushController {
	return &PushController{command: command}
}

// GetBind returns the Cobra command metadata for the push controller.
func (it *PushController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "push",
		Short: "Push current work branch to remote repository",
		Long: `Push the current branch to the branch of the same name on "origin".
Authentication uses the keys loaded in your SSH agent (SSH_AUTH_SOCK).`,
	}
}

// Execute runs the push.
func (it *PushController) Execute(cmd *cobra.Command, _ []string) error {
	return it.command.Execute(context.Background(), commands.PushOptions{RepoDir: repoDir(cmd)})
}
