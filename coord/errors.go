package coord

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates a string that is not a valid cell address or range.
var ErrMalformed = errors.New("malformed coordinates")

// ErrOutOfBounds indicates a translation that moved before column A or row 1.
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// Error reports the input that failed along with the kind of failure.
type Error struct {
	Input string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func malformed(input string) error {
	return &Error{Input: input, Err: ErrMalformed}
}

func outOfBounds(input string) error {
	return &Error{Input: input, Err: ErrOutOfBounds}
}
