package entities

// Version is the application version, set at build time with
// -ldflags "-X github.com/rios0rios0/workflow/internal/domain/entities.Version=...".
var Version = "dev" //nolint:gochecknoglobals // overridden by the linker

// AppName names the application. It keys the global settings.
const AppName = "wf"
