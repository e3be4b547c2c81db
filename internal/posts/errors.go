package posts

import (
	"errors"
	"strings"
)

const unknownErrorMessage = "Unknown error"

// FetchError is the single failure kind of a posts fetch. Connectivity,
// timeouts, non-2xx responses and undecodable bodies all surface as one.
type FetchError struct {
	Message string // Human readable reason shown to the user
	Err     error  // Underlying cause, may be nil
}

func (e *FetchError) Error() string {
	if e == nil {
		return unknownErrorMessage
	}
	if strings.TrimSpace(e.Message) == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return unknownErrorMessage
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newFetchError(err error) *FetchError {
	return &FetchError{Message: err.Error(), Err: err}
}

// IsFetchError reports whether err is or wraps a *FetchError.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// ErrorMessage returns the text to display for a failed fetch.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Error()
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return unknownErrorMessage
}
