package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks a response the server rejected for lack of a
// valid session. It is wrapped inside a FetchError so callers can use
// errors.Is without losing the HTTP detail.
var ErrUnauthorized = errors.New("unauthorized")

// FetchError classifies gateway failures: unreachable server, an error
// status, or an undecodable payload. Status is zero when the server
// never responded.
type FetchError struct {
	Op     string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TimeoutError classifies a gateway call that exceeded its bound.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out: %v", e.Op, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// IsTimeout reports whether err is (or wraps) a TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
