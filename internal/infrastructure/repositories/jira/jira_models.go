package jira

// restIssue is the subset of /rest/api/2/issue/{key} used by wf.
type restIssue struct {
	ID     string     `json:"id"`
	Key    string     `json:"key"`
	Fields restFields `json:"fields"`
}

type restFields struct {
	Summary string     `json:"summary"`
	Status  restStatus `json:"status"`
}

type restStatus struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// restError is the error body returned by Jira.
type restError struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}
