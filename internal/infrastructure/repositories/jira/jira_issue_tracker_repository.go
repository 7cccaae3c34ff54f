package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

const (
	issuePath    = "/rest/api/2/issue/"
	maxErrorBody = 4096
)

// JiraIssueTrackerRepository fetches issues from the Jira REST API v2 with
// basic authentication. Requests are sent once, without timeout or retry.
type JiraIssueTrackerRepository struct {
	host       *url.URL
	user       string
	token      string
	httpClient *http.Client
}

var _ repositories.IssueTrackerRepository = (*JiraIssueTrackerRepository)(nil)

// Option configures the repository.
type Option func(*JiraIssueTrackerRepository)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(r *JiraIssueTrackerRepository) {
		r.httpClient = httpClient
	}
}

// NewJiraIssueTrackerRepository creates a Jira client from the user settings.
func NewJiraIssueTrackerRepository(
	settings entities.IssueTrackerSettings,
	opts ...Option,
) (*JiraIssueTrackerRepository, error) {
	host, err := url.Parse(settings.Host)
	if err != nil {
		return nil, entities.NewIssueTrackerError(entities.IssueTrackerInvalidURL, "", err)
	}
	if host.Scheme == "" || host.Host == "" {
		return nil, entities.NewIssueTrackerError(
			entities.IssueTrackerInvalidURL, "", fmt.Errorf("%q is not an absolute URL", settings.Host),
		)
	}

	r := &JiraIssueTrackerRepository{
		host:       host,
		user:       settings.User,
		token:      settings.Token,
		httpClient: cleanhttp.DefaultClient(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewIssueTrackerRepository is the registry factory for Jira.
func NewIssueTrackerRepository(
	settings entities.IssueTrackerSettings,
) (repositories.IssueTrackerRepository, error) {
	return NewJiraIssueTrackerRepository(settings)
}

// GetIssue retrieves an issue by key or id.
func (r *JiraIssueTrackerRepository) GetIssue(ctx context.Context, key string) (*entities.Issue, error) {
	if !isPathSegment(key) {
		return nil, entities.NewIssueTrackerError(entities.IssueTrackerInvalidKey, key, nil)
	}

	endpoint := r.host.JoinPath(issuePath, url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, entities.NewIssueTrackerError(entities.IssueTrackerCannotCreateClient, key, err)
	}
	req.SetBasicAuth(r.user, r.token)
	req.Header.Set("Accept", "application/json")

	logger.Debugf("GET %s", endpoint.Redacted())
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, entities.NewIssueTrackerError(entities.IssueTrackerRemoteServerError, key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, entities.NewIssueTrackerError(entities.IssueTrackerIssueNotFound, key, nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, entities.NewIssueTrackerError(entities.IssueTrackerRemoteServerError, key, parseError(resp))
	}

	var issue restIssue
	if err = json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, entities.NewIssueTrackerError(entities.IssueTrackerResponseError, key, err)
	}

	return &entities.Issue{
		ID:      issue.ID,
		Key:     issue.Key,
		Summary: issue.Fields.Summary,
		Status: entities.IssueStatus{
			ID:   issue.Fields.Status.ID,
			Name: issue.Fields.Status.Name,
		},
	}, nil
}

// isPathSegment reports whether key stays a single segment once joined to the
// issue path.
func isPathSegment(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}

// parseError builds an error from a non-2xx Jira response.
func parseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload restError
	if json.Unmarshal(body, &payload) == nil {
		if len(payload.ErrorMessages) > 0 {
			return fmt.Errorf("status %d: %s", resp.StatusCode, strings.Join(payload.ErrorMessages, "; "))
		}
		for field, message := range payload.Errors {
			return fmt.Errorf("status %d: %s: %s", resp.StatusCode, field, message)
		}
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
