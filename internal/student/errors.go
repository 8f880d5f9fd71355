package student

import (
	"errors"
	"fmt"
)

// Sentinel errors carried inside an Issue. Compare with errors.Is.
var (
	ErrMissingAt   = errors.New("missing '@' symbol")
	ErrEmailFormat = errors.New("invalid email format")
	ErrInvalidAge  = errors.New("age must be a number")
	ErrAgeRange    = errors.New("age out of range")
)

// Field names used in Issue.Field.
const (
	FieldEmail = "email"
	FieldAge   = "age"
)

// Issue is one validation problem found while a record was constructed.
//
// Constructors never fail. Instead they collect Issues and fall back to a safe
// value (no email, age 0). The console decides how to render them.
type Issue struct {
	Field string // FieldEmail or FieldAge
	Value string // the rejected input, after trimming whitespace
	Err   error  // one of the sentinels above
}

// Error renders the issue as a user-facing sentence.
func (i Issue) Error() string {
	switch {
	case errors.Is(i.Err, ErrMissingAt):
		return fmt.Sprintf("Invalid email '%s'. Missing '@' symbol.", i.Value)
	case errors.Is(i.Err, ErrEmailFormat):
		return fmt.Sprintf("Invalid email format '%s'. Check for invalid characters or missing domain.", i.Value)
	case errors.Is(i.Err, ErrInvalidAge):
		return fmt.Sprintf("Invalid age '%s'. Must be a number.", i.Value)
	case errors.Is(i.Err, ErrAgeRange):
		return fmt.Sprintf("Invalid age '%s'. Age out of range.", i.Value)
	default:
		return fmt.Sprintf("Invalid %s '%s': %v", i.Field, i.Value, i.Err)
	}
}

// Unwrap exposes the sentinel so errors.Is works on an Issue directly.
func (i Issue) Unwrap() error {
	return i.Err
}

// Rejects reports whether the issue keeps the record out of the collection.
// Email problems reject; a bad age only resets the age to 0.
func (i Issue) Rejects() bool {
	return i.Field == FieldEmail
}
