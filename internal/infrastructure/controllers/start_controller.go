package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/workflow/internal/domain/commands"
	"github.com/rios0rios0/workflow/internal/domain/entities"
)

// StartController handles the "start" subcommand.
type StartController struct {
	command commands.Start
}

// NewStartController creates a new StartController.
func NewStartController(command commands.Start) *StartController {
	return &StartController{command: command}
}

// GetBind returns the Cobra command metadata for the start controller.
func (it *StartController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "start <ticket-id>",
		Short: "Start a new workflow in the current repository",
		Long: `Fetch the issue from the issue tracker, propose a branch name made of the
issue key and its summary, then create and check out that branch from the
repository base branch.

The global and repository settings are initialized first when missing.`,
	}
}

// Args validates the positional arguments.
func (it *StartController) Args() cobra.PositionalArgs {
	return cobra.ExactArgs(1)
}

// Execute runs the start workflow.
func (it *StartController) Execute(cmd *cobra.Command, args []string) error {
	return it.command.Execute(context.Background(), commands.StartOptions{
		RepoDir:  repoDir(cmd),
		TicketID: args[0],
	})
}
