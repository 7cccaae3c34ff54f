package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/workflow/internal/infrastructure/repositories"
)

// Start is the interface for the start command.
type Start interface {
	Execute(ctx context.Context, opts StartOptions) error
}

// StartOptions holds runtime options for the start command.
type StartOptions struct {
	RepoDir  string
	TicketID string
}

// StartCommand creates and checks out a branch for an issue, forked from the
// repository base branch.
type StartCommand struct {
	settings *SettingsResolver
	locator  repositories.GitLocator
	trackers *infraRepos.IssueTrackerRegistry
	prompt   repositories.PromptRepository
}

// NewStartCommand creates a new StartCommand.
func NewStartCommand(
	settings *SettingsResolver,
	locator repositories.GitLocator,
	trackers *infraRepos.IssueTrackerRegistry,
	prompt repositories.PromptRepository,
) *StartCommand {
	return &StartCommand{
		settings: settings,
		locator:  locator,
		trackers: trackers,
		prompt:   prompt,
	}
}

// Execute runs the start workflow. The first failing step aborts it.
func (it *StartCommand) Execute(ctx context.Context, opts StartOptions) error {
	global, err := entities.Adapt(it.settings.Global(true))
	if err != nil {
		return err
	}

	repo, err := entities.Adapt(it.locator.Discover(opts.RepoDir))
	if err != nil {
		return err
	}

	repoSettings, repoErr := it.settings.Repository(repo, true)
	baseBranch, err := entities.AdaptMap(repoSettings, repoErr, func(s *entities.RepositorySettings) string {
		return s.BaseBranch
	})
	if err != nil {
		return err
	}

	tracker, err := entities.Adapt(it.trackers.Get(*global.IssueTracker))
	if err != nil {
		return err
	}

	issue, err := entities.Adapt(tracker.GetIssue(ctx, opts.TicketID))
	if err != nil {
		return err
	}
	logger.Infof("Found issue %s: %s", issue.Key, issue.Summary)

	newBranch, err := entities.Adapt(it.prompt.Text(repositories.TextPrompt{
		Message:    "Branch name:",
		Help:       "You can change the default branch name here.",
		Default:    DefaultBranchName(issue),
		Validators: []repositories.TextValidator{required()},
	}))
	if err != nil {
		return err
	}

	logger.Debugf("Creating branch %s from %s", newBranch, baseBranch)
	if err = repo.CreateAndCheckoutBranch(newBranch, baseBranch); err != nil {
		return entities.Lift(err)
	}

	logger.Infof("Branch %s created from %s with issue %s", newBranch, baseBranch, opts.TicketID)
	return nil
}

// DefaultBranchName derives the proposed branch name of an issue.
func DefaultBranchName(issue *entities.Issue) string {
	return fmt.Sprintf("%s-%s", issue.Key, entities.ToBranchName(issue.Summary))
}
