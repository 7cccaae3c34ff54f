package controllers

import (
	"github.com/rios0rios0/workflow/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewInitController); err != nil {
		return err
	}
	if err := container.Provide(NewStartController); err != nil {
		return err
	}
	if err := container.Provide(NewPushController); err != nil {
		return err
	}
	if err := container.Provide(NewNoopController); err != nil {
		return err
	}
	if err := container.Provide(NewTestController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	initController *InitController,
	startController *StartController,
	pushController *PushController,
	noopController *NoopController,
	testController *TestController,
) *[]entities.Controller {
	return &[]entities.Controller{
		initController,
		startController,
		pushController,
		noopController,
		testController,
	}
}
