package qdict

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey indicates an attribute read for a key that is not present.
	ErrMissingKey = errors.New("missing key")

	// ErrConvert indicates a typed read found a value of the wrong dynamic type.
	ErrConvert = errors.New("cannot convert value")
)

// KeyError wraps key-related errors with the key they occurred on.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}
