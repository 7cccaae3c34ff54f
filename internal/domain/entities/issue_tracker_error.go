package entities

import "fmt"

// IssueTrackerErrorKind identifies an issue tracker failure.
type IssueTrackerErrorKind int

const (
	IssueTrackerCannotCreateClient IssueTrackerErrorKind = iota + 1
	IssueTrackerRemoteServerError
	IssueTrackerResponseError
	IssueTrackerInvalidURL
	IssueTrackerIssueNotFound
	IssueTrackerUnknownType
	IssueTrackerInvalidKey
)

// ErrIssueNotFound matches any IssueTrackerError of kind IssueTrackerIssueNotFound.
var ErrIssueNotFound = &IssueTrackerError{Kind: IssueTrackerIssueNotFound}

// IssueTrackerError is returned by issue tracker clients.
type IssueTrackerError struct {
	Kind IssueTrackerErrorKind
	Key  string
	Err  error
}

// NewIssueTrackerError creates an IssueTrackerError.
func NewIssueTrackerError(kind IssueTrackerErrorKind, key string, err error) *IssueTrackerError {
	return &IssueTrackerError{Kind: kind, Key: key, Err: err}
}

func (e *IssueTrackerError) Error() string {
	switch e.Kind {
	case IssueTrackerCannotCreateClient:
		return withCause("cannot create http client", e.Err)
	case IssueTrackerRemoteServerError:
		return withCause("remote server error", e.Err)
	case IssueTrackerResponseError:
		return withCause("invalid server response", e.Err)
	case IssueTrackerInvalidURL:
		return withCause("invalid server url", e.Err)
	case IssueTrackerIssueNotFound:
		return fmt.Sprintf("issue %s not found", e.Key)
	case IssueTrackerUnknownType:
		return fmt.Sprintf("unknown issue tracker type %q", e.Key)
	case IssueTrackerInvalidKey:
		return fmt.Sprintf("invalid issue key %q", e.Key)
	default:
		return withCause("issue tracker error", e.Err)
	}
}

func (e *IssueTrackerError) Unwrap() error {
	return e.Err
}

// Is matches another IssueTrackerError of the same kind.
func (e *IssueTrackerError) Is(target error) bool {
	other, ok := target.(*IssueTrackerError)
	return ok && other.Kind == e.Kind
}
