package optly

import (
	"errors"
	"fmt"
)

//NotSetError signals a strict check over an absent value
type NotSetError struct {
	Label   interface{}
	message string
}

// Error returns the caller supplied message, or a generated one referencing
// the key that produced the absent value.
func (e *NotSetError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("%v is not set", e.Label)
}

// IsNotSet returns true if err was raised by a strict check on an absent value.
func IsNotSet(err error) bool {
	var notSet *NotSetError
	return errors.As(err, &notSet)
}
