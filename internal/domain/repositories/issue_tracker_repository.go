package repositories

import (
	"context"

	"github.com/rios0rios0/workflow/internal/domain/entities"
)

// IssueTrackerRepository abstracts an issue tracker (Jira, ...).
type IssueTrackerRepository interface {
	// GetIssue fetches an issue by key. A missing issue is reported as
	// entities.ErrIssueNotFound, anything else as a remote or response error.
	GetIssue(ctx context.Context, key string) (*entities.Issue, error)
}
