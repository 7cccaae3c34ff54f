package entities

// Issue is a ticket fetched from the issue tracker.
type Issue struct {
	ID      string
	Key     string
	Summary string
	Status  IssueStatus
}

// IssueStatus is the workflow status of an Issue.
type IssueStatus struct {
	ID   string
	Name string
}
