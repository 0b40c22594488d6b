package domain

import "errors"

// ErrMissingArgument is returned when a required positional argument is absent.
var ErrMissingArgument = errors.New("missing argument")

// ErrNotFound is returned when a requested field is absent from a response body.
var ErrNotFound = errors.New("not found")

// ErrUnknownScript is returned when a script name is not registered.
var ErrUnknownScript = errors.New("unknown script")

// ErrUnknownBinding is returned when a widget element has no binding.
var ErrUnknownBinding = errors.New("unknown binding")

// ErrInvalidShape is returned when an update would leave a shape with
// unusable dimensions or offsets.
var ErrInvalidShape = errors.New("invalid shape")

// ReportedError wraps an error whose message has already been written to the
// script output. Hosts use it to set a failure status without printing twice.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// Reported marks err as already shown to the user. A nil err stays nil.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &ReportedError{Err: err}
}

// IsReported reports whether err (or anything it wraps) was already printed.
func IsReported(err error) bool {
	var r *ReportedError
	return errors.As(err, &r)
}
