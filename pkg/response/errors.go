package response

import "errors"

var (
	// ErrInvalidScore is returned for a score that is not an integer from 0 to 10.
	ErrInvalidScore = errors.New("response: invalid score")

	// ErrMissingParams is returned when a survey link lacks the score, customer or email.
	ErrMissingParams = errors.New("response: missing link parameters")

	// ErrQueryFailed wraps database errors from the repository.
	ErrQueryFailed = errors.New("response: query failed")
)
