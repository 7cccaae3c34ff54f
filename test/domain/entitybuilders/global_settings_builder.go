//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/workflow/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// GlobalSettingsBuilder helps create global settings for tests.
type GlobalSettingsBuilder struct {
	*testkit.BaseBuilder
	unset bool
	host  string
	user  string
	token string
}

// NewGlobalSettingsBuilder creates a builder for configured global settings.
func NewGlobalSettingsBuilder() *GlobalSettingsBuilder {
	return &GlobalSettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		host:        "https://example.atlassian.net",
		user:        "jdoe",
		token:       "secret-token",
	}
}

// Unset makes the builder produce settings that were never initialized.
func (b *GlobalSettingsBuilder) Unset() *GlobalSettingsBuilder {
	b.unset = true
	return b
}

// WithHost sets the tracker host.
func (b *GlobalSettingsBuilder) WithHost(host string) *GlobalSettingsBuilder {
	b.host = host
	return b
}

// WithUser sets the tracker user.
func (b *GlobalSettingsBuilder) WithUser(user string) *GlobalSettingsBuilder {
	b.user = user
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *GlobalSettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *GlobalSettingsBuilder) BuildSettings() *entities.GlobalSettings {
	if b.unset {
		return &entities.GlobalSettings{}
	}
	return &entities.GlobalSettings{
		IssueTracker: &entities.IssueTrackerSettings{
			Host:  b.host,
			User:  b.user,
			Token: b.token,
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *GlobalSettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.unset = false
	b.host = "https://example.atlassian.net"
	b.user = "jdoe"
	b.token = "secret-token"
	return b
}

// Clone creates a deep copy of the GlobalSettingsBuilder.
func (b *GlobalSettingsBuilder) Clone() testkit.Builder {
	return &GlobalSettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		unset:       b.unset,
		host:        b.host,
		user:        b.user,
		token:       b.token,
	}
}
