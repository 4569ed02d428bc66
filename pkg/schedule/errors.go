package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange    = errors.New("harvest date is before planting date")
	ErrInvalidInterval = errors.New("interval must be at least one day")
	ErrNotCompletable  = errors.New("task can only be completed on its scheduled day")
	ErrNotFound        = errors.New("not found")
	ErrHasHistory      = errors.New("schedule already has completed tasks")
)

// PersistenceError wraps a failed store write. The planting record survives it,
// and the schedule can be written again later.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Retryable() bool { return true }
