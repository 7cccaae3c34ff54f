//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/workflow/internal/domain/commands"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	t.Run("should reject empty answers when required", func(t *testing.T) {
		t.Parallel()

		// when
		emptyErr := commands.Required()("")
		filledErr := commands.Required()("x")

		// then
		assert.Error(t, emptyErr)
		assert.NoError(t, filledErr)
	})

	t.Run("should count characters, not bytes, for the minimum length", func(t *testing.T) {
		t.Parallel()

		// given
		validator := commands.MinLength(3)

		// then
		assert.Error(t, validator("ab"))
		assert.NoError(t, validator("abc"))
		assert.Error(t, validator("é"))
	})

	t.Run("should only accept absolute URLs", func(t *testing.T) {
		t.Parallel()

		// given
		validator := commands.AbsoluteURL()

		// then
		assert.NoError(t, validator("https://example.atlassian.net"))
		assert.NoError(t, validator("http://jira.local:8080/jira"))
		assert.Error(t, validator("example.atlassian.net"))
		assert.Error(t, validator("not a url"))
		assert.Error(t, validator("http://[::1"))
	})
}
