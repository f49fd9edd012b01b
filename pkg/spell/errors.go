package spell

import "fmt"

// CheckError wraps a failure inside a query, always carrying the word that
// triggered it.
type CheckError struct {
	Word string
	Err  error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("spellcheck %q: %v", e.Word, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}
