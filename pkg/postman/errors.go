package postman

import (
	"fmt"
)

// FetchError is returned when the collection could not be retrieved: the
// request failed or the server answered with a non-success status.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Cause      error
}

func (e *FetchError) Error() string {
	msg := "fetch " + e.URL
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: unexpected status %d", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ParseError is returned when a body is not a JSON document of the
// collection's shape.
type ParseError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
