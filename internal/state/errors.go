package state

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuthRequired is returned when a call that needs an authenticated
// session is made without one. The gateway is never contacted.
var ErrAuthRequired = errors.New("authentication required")

// FieldError names one validation rule a draft or patch failed.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Reason
}

// ValidationError enumerates every failing field of a client-side
// invariant check. It is produced before any gateway call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DuplicateError rejects a second tracking record for a problem the
// user already tracks.
type DuplicateError struct {
	UserID    int64
	ProblemID int64
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("user %d already tracks problem %d", e.UserID, e.ProblemID)
}

// ImmutableFieldError rejects a patch that tries to change a key field.
type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("field %s is immutable", e.Field)
}

// NotFoundError reports that no local record matches the given key.
type NotFoundError struct {
	UserID    int64
	ProblemID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record for user %d, problem %d", e.UserID, e.ProblemID)
}
