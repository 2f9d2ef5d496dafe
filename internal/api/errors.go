package api

import "errors"

// ErrServiceUnavailable means the health probe could not reach the backend
// or it answered with a non-success status.
var ErrServiceUnavailable = errors.New("assessment service unavailable")

// ProcessingError is a failed text or audio submission. Message carries the
// server-provided error text when the response body was decodable.
type ProcessingError struct {
	StatusCode int
	Message    string
}

func (e *ProcessingError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "failed to process input"
}

// DirectoryError wraps a failed chat-histories operation. These are logged
// by the caller and never surfaced into the transcript.
type DirectoryError struct {
	Op  string // "list", "load", "delete"
	Err error
}

func (e *DirectoryError) Error() string {
	return "chat histories " + e.Op + ": " + e.Err.Error()
}

func (e *DirectoryError) Unwrap() error { return e.Err }
