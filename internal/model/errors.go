package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a task is not found.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrParse is returned when the stored tasks can't be decoded.
	ErrParse = errors.New("parse error")
	// ErrIO is returned when the tasks storage can't be read or written.
	ErrIO = errors.New("io error")
)

// ParseError is returned when the stored tasks exist but are not in the expected format.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// IOError is returned when the tasks storage can't be accessed, absence is not one of them.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error        { return e.Err }
func (e *IOError) Is(target error) bool { return target == ErrIO }

// NotFoundError is returned when a task ID is not present in the collection.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Task with ID %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
