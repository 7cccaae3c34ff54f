package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewSettingsResolver); err != nil {
		return err
	}
	if err := container.Provide(NewInitCommand); err != nil {
		return err
	}
	if err := container.Provide(NewStartCommand); err != nil {
		return err
	}
	if err := container.Provide(NewPushCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *InitCommand) Init {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *StartCommand) Start {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PushCommand) Push {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
