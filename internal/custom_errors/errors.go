package custom_errors

import (
	"errors"
	"fmt"
)

var (
	ErrTransport           = errors.New("remote request failed")
	ErrDecode              = errors.New("malformed response body")
	ErrPostNotFound        = errors.New("post not found")
	ErrNoEditTarget        = errors.New("no post is being edited")
	ErrOperationInProgress = errors.New("operation already in progress for post")
	ErrInvalidInput        = errors.New("invalid input")
)

// TransportError reports a non-success response, or no response at all when StatusCode is 0.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDecode}
	}
	return []error{ErrDecode, e.Err}
}

// OperationError carries the single user-facing message for a failed sync operation.
type OperationError struct {
	Op      string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
