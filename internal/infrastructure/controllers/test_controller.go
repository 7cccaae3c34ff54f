package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/workflow/internal/domain/entities"
)

// TestController handles the hidden "test" subcommand and its children.
type TestController struct{}

// NewTestController creates a new TestController.
func NewTestController() *TestController {
	return &TestController{}
}

func (it *TestController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:    "test",
		Short:  "Testing subcommands",
		Hidden: true,
	}
}

// Execute prints the help, only the children do something.
func (it *TestController) Execute(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// Subcommands returns the "sub1", "sub2" and "all" children.
func (it *TestController) Subcommands() []*cobra.Command {
	children := []struct{ use, short, output string }{
		{"sub1", "Sub 1", "sub 1"},
		{"sub2", "Sub 2", "sub 2"},
		{"all", "All", "All"},
	}

	result := make([]*cobra.Command, 0, len(children))
	for _, child := range children {
		output := child.output
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		result = append(result, &cobra.Command{
			Use:   child.use,
			Short: child.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), output)
				return err
			},
		})
	}
	return result
}
