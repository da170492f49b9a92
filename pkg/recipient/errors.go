package recipient

import "errors"

var (
	// ErrInvalidCSV is returned when a recipients file has a missing header
	// column or a row without a customer ID or email.
	ErrInvalidCSV = errors.New("recipient: invalid csv")

	// ErrQueryFailed wraps database errors from the repository.
	ErrQueryFailed = errors.New("recipient: query failed")
)
