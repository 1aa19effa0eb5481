package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id does not resolve to a row.
var ErrNotFound = errors.New("not found")

// ConflictError reports a unique field collision.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q is already taken", e.Field, e.Value)
}

// BadReferenceError reports a foreign key pointing at a missing row.
type BadReferenceError struct {
	Entity string
	ID     int64
}

func (e *BadReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}
