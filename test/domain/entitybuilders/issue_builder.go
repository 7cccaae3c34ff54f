//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/workflow/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// IssueBuilder helps create test issues with a fluent interface.
type IssueBuilder struct {
	*testkit.BaseBuilder
	id         string
	key        string
	summary    string
	statusID   string
	statusName string
}

// NewIssueBuilder creates a new issue builder with sensible defaults.
func NewIssueBuilder() *IssueBuilder {
	return &IssueBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "10001",
		key:         "TK-421",
		summary:     "Add user authentication",
		statusID:    "3",
		statusName:  "In Progress",
	}
}

// WithKey sets the issue key.
func (b *IssueBuilder) WithKey(key string) *IssueBuilder {
	b.key = key
	return b
}

// WithSummary sets the issue summary.
func (b *IssueBuilder) WithSummary(summary string) *IssueBuilder {
	b.summary = summary
	return b
}

// WithStatus sets the issue status.
func (b *IssueBuilder) WithStatus(id, name string) *IssueBuilder {
	b.statusID = id
	b.statusName = name
	return b
}

// Build creates the issue (satisfies testkit.Builder interface).
func (b *IssueBuilder) Build() interface{} {
	return b.BuildIssue()
}

// BuildIssue creates the issue with a concrete return type.
func (b *IssueBuilder) BuildIssue() *entities.Issue {
	return &entities.Issue{
		ID:      b.id,
		Key:     b.key,
		Summary: b.summary,
		Status: entities.IssueStatus{
			ID:   b.statusID,
			Name: b.statusName,
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *IssueBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "10001"
	b.key = "TK-421"
	b.summary = "Add user authentication"
	b.statusID = "3"
	b.statusName = "In Progress"
	return b
}

// Clone creates a deep copy of the IssueBuilder.
func (b *IssueBuilder) Clone() testkit.Builder {
	return &IssueBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		key:         b.key,
		summary:     b.summary,
		statusID:    b.statusID,
		statusName:  b.statusName,
	}
}
