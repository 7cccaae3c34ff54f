package repositories

import "context"

// GitRepository is an open local Git repository.
//
// Every method is single-shot and never retries. Failures are returned as
// *entities.GitError carrying the branch name involved.
type GitRepository interface {
	// WorkDir returns the work tree root, or false for bare repositories.
	WorkDir() (string, bool)

	// Branches lists the short names of the local branches.
	Branches() ([]string, error)

	// CreateAndCheckoutBranch creates newBranch at the tip of baseBranch,
	// makes it track itself, checks its tree out and points HEAD at it.
	// The steps are not rolled back: if the checkout fails the branch exists
	// while HEAD and the work tree may still reflect the previous state.
	CreateAndCheckoutBranch(newBranch, baseBranch string) error

	// Push pushes the current branch to the same-named branch on "origin",
	// authenticating with the keys held by the running SSH agent.
	Push(ctx context.Context) error
}

// GitLocator opens repositories.
type GitLocator interface {
	// Discover opens the repository containing path, searching its ancestors.
	Discover(path string) (GitRepository, error)
}
