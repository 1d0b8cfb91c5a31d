package apierr

import (
	"errors"
	"fmt"
)

// ErrUnexpectedShape marks a response that was fetched and parsed but does
// not contain the fields the tracker requires.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// Error describes a failed call to an upstream API. It is the only error
// kind the tracker treats as recoverable: anything else is a programming
// error and is left to crash loudly.
type Error struct {
	URL    string
	Status int    // HTTP status, 0 for transport failures
	Body   string // raw response body, kept for diagnostics on shape errors
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Body != "":
		return fmt.Sprintf("%s: %v: %s", e.URL, e.Err, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: status %d", e.URL, e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// NewStatus reports a non-success HTTP status from the given URL.
func NewStatus(url string, status int) *Error {
	return &Error{URL: url, Status: status}
}

// NewShape reports a response whose JSON did not match the expected shape.
func NewShape(url, body string) *Error {
	return &Error{URL: url, Err: ErrUnexpectedShape, Body: body}
}

// NewTransport reports a request that never produced an HTTP response.
func NewTransport(url string, err error) *Error {
	return &Error{URL: url, Err: err}
}
