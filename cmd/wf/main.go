package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/workflow/internal"
	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/infrastructure/controllers"
)

// positionalArgs is implemented by controllers validating their arguments.
type positionalArgs interface {
	Args() cobra.PositionalArgs
}

// subcommandProvider is implemented by controllers owning child commands.
type subcommandProvider interface {
	Subcommands() []*cobra.Command
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:     entities.AppName,
		Short:   "A tool to automate some common dev tasks",
		Version: entities.Version,
		Long: `wf automates the start of a ticket: it fetches the issue from Jira, derives
a branch name from its summary, then creates and checks out that branch from
the base branch configured for the repository.

Usage:
  wf init              Configure the issue tracker and the repository base branch
  wf start TK-421      Create and check out a branch for ticket TK-421
  wf push              Push the current branch to origin using your SSH agent`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP(controllers.RepoDirFlag, "C", ".",
		"Run as if wf was started in this directory")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:    bind.Use,
			Short:  bind.Short,
			Long:   bind.Long,
			Hidden: bind.Hidden,
			Args:   cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		if withArgs, ok := ctrl.(positionalArgs); ok {
			subCmd.Args = withArgs.Args()
		}
		if withChildren, ok := ctrl.(subcommandProvider); ok {
			subCmd.AddCommand(withChildren.Subcommands()...)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectAppContext())

	if err := cobraRoot.Execute(); err != nil {
		var appErr *entities.AppError
		if !errors.As(err, &appErr) {
			// only cobra's own argument and flag errors reach here unwrapped
			err = entities.NewCliArgsError(err)
		}
		logger.Fatalf("%s", err)
	}
}
