package dictionary

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a dictionary source file does not exist.
var ErrNotFound = errors.New("dictionary not found")

// ErrInvalidFormat signals a structurally malformed dictionary source.
// Loading aborts entirely on it: a dictionary is either fully built or not
// returned at all.
var ErrInvalidFormat = errors.New("invalid dictionary format")

// OptionError reports an invalid option value passed to a query or
// component (negative bounds, zero caps and the like).
type OptionError struct {
	Option string
	Detail string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Detail)
}
