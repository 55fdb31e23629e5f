package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

// ValidationError reports a required field that is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// wrap turns a gorm error into one of the typed errors. Errors that are
// already typed pass through untouched so transactions can return them.
func wrap(op, entity string, id int64, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	var nf *NotFoundError
	var se *StorageError
	switch {
	case errors.As(err, &ve), errors.As(err, &nf), errors.As(err, &se):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Entity: entity, ID: id}
	}
	return &StorageError{Op: op, Err: err}
}
