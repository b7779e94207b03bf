package collision

import (
	"errors"
	"fmt"
)

// ErrMethodNotFound matches any *MethodNotFoundError via errors.Is
var ErrMethodNotFound = errors.New("collision method not found")

// MethodNotFoundError is returned when a method name was never registered
// This is a configuration error and is not retried
type MethodNotFoundError struct {
	Name string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("collision method %q not registered", e.Name)
}

func (e *MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}
