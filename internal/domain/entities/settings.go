package entities

// IssueTrackerJira is the only issue tracker type shipped with wf.
const IssueTrackerJira = "jira"

// GlobalSettings holds the user-wide settings, shared by every repository.
type GlobalSettings struct {
	IssueTracker *IssueTrackerSettings `yaml:"issue_tracker,omitempty"`
}

// IssueTrackerSettings describes how to reach the issue tracker.
type IssueTrackerSettings struct {
	Type  string `yaml:"type,omitempty"` // defaults to "jira"
	Host  string `yaml:"host"`
	User  string `yaml:"user"`
	Token string `yaml:"token"` // inline or ${ENV_VAR}
}

// IsSet reports whether the global settings were initialized.
func (s *GlobalSettings) IsSet() bool {
	return s != nil && s.IssueTracker != nil
}

// TrackerType returns the configured tracker type, falling back to Jira.
func (s *IssueTrackerSettings) TrackerType() string {
	if s.Type == "" {
		return IssueTrackerJira
	}
	return s.Type
}

// RepositorySettings holds the settings of a single repository.
type RepositorySettings struct {
	BaseBranch string `yaml:"base_branch,omitempty"`
}

// IsSet reports whether the repository settings were initialized.
func (s *RepositorySettings) IsSet() bool {
	return s != nil && s.BaseBranch != ""
}
