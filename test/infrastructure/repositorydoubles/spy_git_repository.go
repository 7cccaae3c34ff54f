//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- WorkDir ---
	Dir  string
	Bare bool

	// --- Branches ---
	BranchNames []string
	BranchesErr error

	// --- CreateAndCheckoutBranch ---
	CreateErr   error
	CreateCalls []CreateCall

	// --- Push ---
	PushErr       error
	PushCallCount int
}

// CreateCall records a single invocation of CreateAndCheckoutBranch.
type CreateCall struct {
	NewBranch  string
	BaseBranch string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) WorkDir() (string, bool) {
	if s.Bare {
		return "", false
	}
	return s.Dir, true
}

func (s *SpyGitRepository) Branches() ([]string, error) {
	return s.BranchNames, s.BranchesErr
}

func (s *SpyGitRepository) CreateAndCheckoutBranch(newBranch, baseBranch string) error {
	s.CreateCalls = append(s.CreateCalls, CreateCall{NewBranch: newBranch, BaseBranch: baseBranch})
	return s.CreateErr
}

func (s *SpyGitRepository) Push(_ context.Context) error {
	s.PushCallCount++
	return s.PushErr
}

// StubGitLocator implements repositories.GitLocator, always returning Repository.
type StubGitLocator struct {
	Repository    repositories.GitRepository
	DiscoverErr   error
	DiscoverPaths []string
}

var _ repositories.GitLocator = (*StubGitLocator)(nil)

func (s *StubGitLocator) Discover(path string) (repositories.GitRepository, error) {
	s.DiscoverPaths = append(s.DiscoverPaths, path)
	if s.DiscoverErr != nil {
		return nil, s.DiscoverErr
	}
	return s.Repository, nil
}
