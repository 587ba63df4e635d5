package jbooklib

import (
	"errors"
	"fmt"
	"net/url"
)

var ErrNoURL = errors.New("no url provided")

// StatusError reports an HTTP response with a status code of 400 or above.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// FailureReason reduces a fetch error to the short reason string printed
// in result lines. Status errors render as "HTTP <code>", transport
// errors are unwrapped from *url.Error to their inner cause, and anything
// else is stringified as-is.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Error()
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err.Error()
	}
	return err.Error()
}
