//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// StubIssueTrackerRepository implements repositories.IssueTrackerRepository.
type StubIssueTrackerRepository struct {
	Issue       *entities.Issue
	GetIssueErr error
	// spy: keys requested
	RequestedKeys []string
}

var _ repositories.IssueTrackerRepository = (*StubIssueTrackerRepository)(nil)

func (s *StubIssueTrackerRepository) GetIssue(_ context.Context, key string) (*entities.Issue, error) {
	s.RequestedKeys = append(s.RequestedKeys, key)
	if s.GetIssueErr != nil {
		return nil, s.GetIssueErr
	}
	return s.Issue, nil
}
