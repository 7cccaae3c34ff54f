package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/workflow/internal/domain/entities"
)

// NoopController handles the "noop" subcommand, used to smoke test the binary.
type NoopController struct{}

// NewNoopController creates a new NoopController.
func NewNoopController() *NoopController {
	return &NoopController{}
}

func (it *NoopController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "noop",
		Short: "Do nothing, just to test",
	}
}

func (it *NoopController) Execute(_ *cobra.Command, _ []string) error {
	logger.Info("Doing nothing")
	return nil
}
