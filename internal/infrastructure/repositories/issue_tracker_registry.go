package repositories

import (
	"github.com/rios0rios0/workflow/internal/domain/entities"
	domainRepos "github.com/rios0rios0/workflow/internal/domain/repositories"
)

// IssueTrackerFactory builds an IssueTrackerRepository from the user settings.
type IssueTrackerFactory func(settings entities.IssueTrackerSettings) (domainRepos.IssueTrackerRepository, error)

// IssueTrackerRegistry manages all registered issue tracker implementations.
type IssueTrackerRegistry struct {
	trackers map[string]IssueTrackerFactory
}

// NewIssueTrackerRegistry creates an empty issue tracker registry.
func NewIssueTrackerRegistry() *IssueTrackerRegistry {
	return &IssueTrackerRegistry{
		trackers: make(map[string]IssueTrackerFactory),
	}
}

// Register adds a tracker factory under the given type (e.g. "jira").
func (r *IssueTrackerRegistry) Register(trackerType string, factory IssueTrackerFactory) {
	r.trackers[trackerType] = factory
}

// Get returns a configured tracker for the given settings.
func (r *IssueTrackerRegistry) Get(
	settings entities.IssueTrackerSettings,
) (domainRepos.IssueTrackerRepository, error) {
	trackerType := settings.TrackerType()
	factory, ok := r.trackers[trackerType]
	if !ok {
		return nil, entities.NewIssueTrackerError(entities.IssueTrackerUnknownType, trackerType, nil)
	}
	return factory(settings)
}

// Names returns the list of registered tracker types.
func (r *IssueTrackerRegistry) Names() []string {
	names := make([]string, 0, len(r.trackers))
	for name := range r.trackers {
		names = append(names, name)
	}
	return names
}
