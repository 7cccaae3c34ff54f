package entities

import "fmt"

// GitErrorKind identifies which Git operation failed.
type GitErrorKind int

const (
	GitCannotOpenRepository GitErrorKind = iota + 1
	GitBranchNotFound
	GitCommitNotFound
	GitCannotCreateBranch
	GitCannotCheckoutBranch
	GitCannotGetHead
	GitNotInABranch
	GitOriginNotFound
	GitCannotPushToOrigin
	GitCannotListBranches
)

// Kind-only targets for errors.Is.
var (
	ErrCannotOpenRepository = &GitError{Kind: GitCannotOpenRepository}
	ErrBranchNotFound       = &GitError{Kind: GitBranchNotFound}
	ErrCommitNotFound       = &GitError{Kind: GitCommitNotFound}
	ErrCannotCreateBranch   = &GitError{Kind: GitCannotCreateBranch}
	ErrCannotCheckoutBranch = &GitError{Kind: GitCannotCheckoutBranch}
	ErrCannotGetHead        = &GitError{Kind: GitCannotGetHead}
	ErrNotInABranch         = &GitError{Kind: GitNotInABranch}
	ErrOriginNotFound       = &GitError{Kind: GitOriginNotFound}
	ErrCannotPushToOrigin   = &GitError{Kind: GitCannotPushToOrigin}
	ErrCannotListBranches   = &GitError{Kind: GitCannotListBranches}
)

// GitError is returned by every Git repository operation. Name holds the
// branch involved, when there is one.
type GitError struct {
	Kind GitErrorKind
	Name string
	Err  error
}

// NewGitError creates a GitError.
func NewGitError(kind GitErrorKind, name string, err error) *GitError {
	return &GitError{Kind: kind, Name: name, Err: err}
}

func (e *GitError) Error() string {
	switch e.Kind {
	case GitCannotOpenRepository:
		return "cannot open repository"
	case GitBranchNotFound:
		return fmt.Sprintf("branch %s not found", e.Name)
	case GitCommitNotFound:
		return fmt.Sprintf("commit %s not found", e.Name)
	case GitCannotCreateBranch:
		return withCause(fmt.Sprintf("cannot create branch %s", e.Name), e.Err)
	case GitCannotCheckoutBranch:
		return withCause(fmt.Sprintf("cannot checkout branch %s", e.Name), e.Err)
	case GitCannotGetHead:
		return withCause("cannot get HEAD", e.Err)
	case GitNotInABranch:
		return "you are not in a branch, please checkout a branch first"
	case GitOriginNotFound:
		return "repository origin not found"
	case GitCannotPushToOrigin:
		return withCause("cannot push to origin", e.Err)
	case GitCannotListBranches:
		return withCause("cannot list branches", e.Err)
	default:
		return withCause("git error", e.Err)
	}
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// Is matches another GitError of the same kind. An empty Name on the target
// matches any branch.
func (e *GitError) Is(target error) bool {
	other, ok := target.(*GitError)
	if !ok {
		return false
	}
	return other.Kind == e.Kind && (other.Name == "" || other.Name == e.Name)
}

func withCause(message string, cause error) string {
	if cause == nil {
		return message
	}
	return message + ": " + cause.Error()
}
