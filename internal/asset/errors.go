package asset

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyURL indicates the modal was opened without a source URL. No
// network call is made in this case.
var ErrEmptyURL = errors.New("model URL not provided")

// StatusError indicates the remote server answered with a non-success
// HTTP status.
type StatusError struct {
	URL  string
	Code int
}

// Error returns the user-facing message with the status code embedded
func (e *StatusError) Error() string {
	text := http.StatusText(e.Code)
	if text == "" {
		return fmt.Sprintf("model fetch failed with status %d", e.Code)
	}
	return fmt.Sprintf("model fetch failed with status %d (%s)", e.Code, text)
}

// IsStatusError reports whether err wraps a StatusError
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
