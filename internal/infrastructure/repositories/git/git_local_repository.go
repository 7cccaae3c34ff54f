package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

const (
	originRemote = "origin"
	localRemote  = "."
)

var (
	errBranchExists    = errors.New("a branch with this name already exists")
	errUnstagedChanges = errors.New("the work tree has unstaged changes")
)

// GitLocalRepository implements repositories.GitRepository on top of go-git.
type GitLocalRepository struct {
	repo *gogit.Repository
	auth AuthProvider
}

var _ repositories.GitRepository = (*GitLocalRepository)(nil)

// NewGitLocalRepository wraps an opened go-git repository.
func NewGitLocalRepository(repo *gogit.Repository, auth AuthProvider) *GitLocalRepository {
	return &GitLocalRepository{repo: repo, auth: auth}
}

// WorkDir returns the root of the work tree.
func (r *GitLocalRepository) WorkDir() (string, bool) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", false
	}
	return worktree.Filesystem.Root(), true
}

// Branches lists the local branches.
func (r *GitLocalRepository) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, entities.NewGitError(entities.GitCannotListBranches, "", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, entities.NewGitError(entities.GitCannotListBranches, "", err)
	}
	return names, nil
}

// CreateAndCheckoutBranch creates newBranch from the tip of baseBranch and
// switches to it in four steps: write the ref, write its tracking config,
// check its tree out, move HEAD. Nothing is undone when a later step fails.
func (r *GitLocalRepository) CreateAndCheckoutBranch(newBranch, baseBranch string) error {
	baseRef, err := r.repo.Reference(plumbing.NewBranchReferenceName(baseBranch), true)
	if err != nil {
		return entities.NewGitError(entities.GitBranchNotFound, baseBranch, err)
	}

	commit, err := r.peelToCommit(baseRef.Hash())
	if err != nil {
		return entities.NewGitError(entities.GitCommitNotFound, baseBranch, err)
	}

	newRefName := plumbing.NewBranchReferenceName(newBranch)
	if _, err = r.repo.Reference(newRefName, false); err == nil {
		return entities.NewGitError(entities.GitCannotCreateBranch, newBranch, errBranchExists)
	} else if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return entities.NewGitError(entities.GitCannotCreateBranch, newBranch, err)
	}

	if err = r.repo.Storer.SetReference(plumbing.NewHashReference(newRefName, commit.Hash)); err != nil {
		return entities.NewGitError(entities.GitCannotCreateBranch, newBranch, err)
	}
	logger.Debugf("Created %s at %s", newRefName, commit.Hash)

	if err = r.trackItself(newBranch); err != nil {
		return entities.NewGitError(entities.GitCannotCreateBranch, newBranch, err)
	}

	if err = r.checkoutTree(newRefName); err != nil {
		return entities.NewGitError(entities.GitCannotCheckoutBranch, newBranch, err)
	}

	if err = r.repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, newRefName)); err != nil {
		return entities.NewGitError(entities.GitCannotCheckoutBranch, newBranch, err)
	}
	return nil
}

// peelToCommit resolves hash to a commit, following an annotated tag.
func (r *GitLocalRepository) peelToCommit(hash plumbing.Hash) (*object.Commit, error) {
	commit, err := r.repo.CommitObject(hash)
	if err == nil {
		return commit, nil
	}

	tag, tagErr := r.repo.TagObject(hash)
	if tagErr != nil {
		return nil, err
	}
	return tag.Commit()
}

// trackItself makes branch track the branch of the same name, on origin when
// the remote exists and on the local repository otherwise.
func (r *GitLocalRepository) trackItself(branch string) error {
	remote := localRemote
	if _, err := r.repo.Remote(originRemote); err == nil {
		remote = originRemote
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if cfg.Branches == nil {
		cfg.Branches = make(map[string]*config.Branch)
	}
	//nolint:exhaustruct // rebase and description stay unset
	cfg.Branches[branch] = &config.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	}

	if err = r.repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// checkoutTree replaces the index and the work tree with the tree of ref.
// HEAD is unchanged when it returns, the caller moves it afterwards. A work
// tree with unstaged changes is refused.
func (r *GitLocalRepository) checkoutTree(ref plumbing.ReferenceName) error {
	resolved, err := r.repo.Reference(ref, true)
	if err != nil {
		return err
	}

	commit, err := r.repo.CommitObject(resolved.Hash())
	if err != nil {
		return err
	}
	logger.Debugf("Checking out tree %s", commit.TreeHash)

	worktree, err := r.repo.Worktree()
	if err != nil {
		return err
	}

	if err = refuseUnstagedChanges(worktree); err != nil {
		return err
	}

	// go-git detaches HEAD on the commit before updating the tree
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return err
	}

	//nolint:exhaustruct // a plain, non-forced checkout
	if err = worktree.Checkout(&gogit.CheckoutOptions{Hash: commit.Hash}); err != nil {
		if restoreErr := r.repo.Storer.SetReference(head); restoreErr != nil {
			logger.Warnf("Cannot restore HEAD to %s: %v", head, restoreErr)
		}
		return err
	}
	return nil
}

func refuseUnstagedChanges(worktree *gogit.Worktree) error {
	status, err := worktree.Status()
	if err != nil {
		return err
	}

	for path, file := range status {
		if file.Worktree != gogit.Unmodified && file.Worktree != gogit.Untracked {
			return fmt.Errorf("%w: %s", errUnstagedChanges, path)
		}
	}
	return nil
}

// Push pushes the current branch to the branch of the same name on origin.
func (r *GitLocalRepository) Push(ctx context.Context) error {
	head, err := r.repo.Head()
	if err != nil {
		return entities.NewGitError(entities.GitCannotGetHead, "", err)
	}
	if !head.Name().IsBranch() {
		return entities.NewGitError(entities.GitNotInABranch, "", nil)
	}

	branch := head.Name().Short()
	remote, err := r.repo.Remote(originRemote)
	if err != nil {
		return entities.NewGitError(entities.GitOriginNotFound, branch, err)
	}

	var remoteURL string
	if urls := remote.Config().URLs; len(urls) > 0 {
		remoteURL = urls[0]
	}

	auth, closer, err := r.auth.Auth(remoteURL)
	if err != nil {
		return entities.NewGitError(entities.GitCannotPushToOrigin, branch, err)
	}
	defer func() { _ = closer.Close() }()

	refSpec := config.RefSpec(fmt.Sprintf("%s:%s", head.Name(), head.Name()))
	logger.Debugf("Pushing %s to %s", refSpec, remoteURL)

	//nolint:exhaustruct // defaults for everything but the refspec and credentials
	err = remote.PushContext(ctx, &gogit.PushOptions{
		RemoteName: originRemote,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       auth,
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		logger.Info("Everything up-to-date")
		return nil
	}
	if err != nil {
		return entities.NewGitError(entities.GitCannotPushToOrigin, branch, err)
	}
	return nil
}
