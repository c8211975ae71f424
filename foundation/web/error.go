package web

import "github.com/pkg/errors"

// FieldError reports a request field that failed validation.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error carries an application error together with the HTTP status to
// respond with and any per-field validation detail.
type Error struct {
	Err    error
	Status int
	Fields []FieldError
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError wraps a known error with an HTTP status.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// IsRequestError checks whether err (or anything it wraps) is a *Error.
func IsRequestError(err error) (*Error, bool) {
	var webErr *Error
	if errors.As(err, &webErr) {
		return webErr, true
	}
	return nil, false
}
