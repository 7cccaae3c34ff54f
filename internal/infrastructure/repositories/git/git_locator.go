package git

import (
	logger "github.com/sirupsen/logrus"

	gogit "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// GitLocator opens on-disk repositories with go-git.
type GitLocator struct {
	auth AuthProvider
}

var _ repositories.GitLocator = (*GitLocator)(nil)

// NewGitLocator creates a GitLocator whose repositories push with auth.
func NewGitLocator(auth AuthProvider) *GitLocator {
	return &GitLocator{auth: auth}
}

// Discover opens the repository containing path, walking up its parents.
// Absent and corrupt repositories are both reported as CannotOpenRepository.
func (l *GitLocator) Discover(path string) (repositories.GitRepository, error) {
	//nolint:exhaustruct // only discovery options are relevant
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		logger.Debugf("Cannot open repository from %q: %v", path, err)
		return nil, entities.NewGitError(entities.GitCannotOpenRepository, "", nil)
	}
	return NewGitLocalRepository(repo, l.auth), nil
}
