package lib

import (
	"errors"

	"github.com/slok/tsk/internal/model"
)

// StorageType identifies where the tasks are stored.
type StorageType string

const (
	// StorageJSON stores the tasks in a JSON taskfile.
	StorageJSON StorageType = "json"
	// StorageSQLite stores the tasks in a SQLite database.
	StorageSQLite StorageType = "sqlite"
	// StorageMemory keeps the tasks in memory for the client lifetime.
	StorageMemory StorageType = "memory"
)

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("not found")
	// ErrParse is returned when the stored tasks are not in the expected format.
	ErrParse = errors.New("parse error")
	// ErrIO is returned when the storage can't be accessed.
	ErrIO = errors.New("io error")
	// ErrNotValid is returned when the client configuration is not valid.
	ErrNotValid = errors.New("not valid")
)

// Task is a to-do item returned by the SDK.
type Task struct {
	// ID is the identifier assigned when the task was added, it is never reused.
	ID int
	// Description is the task text.
	Description string
	// Finished is true once the task has been marked as done.
	Finished bool
}

// ListTasksOpts are the options to list tasks.
type ListTasksOpts struct {
	// IncompleteOnly skips the finished tasks.
	IncompleteOnly bool
}

func fromInternalTask(t model.IndexedTask) Task {
	return Task{ID: t.ID, Description: t.Description, Finished: t.Finished}
}

func fromInternalTaskList(ts []model.IndexedTask) []Task {
	result := make([]Task, len(ts))
	for i, t := range ts {
		result[i] = fromInternalTask(t)
	}
	return result
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return &mappedError{original: err, sentinel: ErrNotFound}
	case errors.Is(err, model.ErrParse):
		return &mappedError{original: err, sentinel: ErrParse}
	case errors.Is(err, model.ErrIO):
		return &mappedError{original: err, sentinel: ErrIO}
	case errors.Is(err, model.ErrNotValid):
		return &mappedError{original: err, sentinel: ErrNotValid}
	default:
		return err
	}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
