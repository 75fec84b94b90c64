package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidRange indicates that a time range ends at or before its start.
var ErrInvalidRange = errors.New("end time must be after start time")

// ErrAlreadySubmitted indicates that a timesheet week was already submitted.
var ErrAlreadySubmitted = errors.New("timesheet already submitted")

// ErrNotSubmittable indicates that a timesheet week cannot be submitted in its current state.
var ErrNotSubmittable = errors.New("timesheet cannot be submitted")

// ErrLockedPeriod indicates an attempt to mutate entries of a week that left draft.
var ErrLockedPeriod = errors.New("timesheet period is locked")

// ErrStorage indicates a failure of the persistence layer.
var ErrStorage = errors.New("storage error")

// ValidationError carries field-keyed validation messages.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Is reports ValidationError as ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError wraps a driver error raised by a repository operation.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a StorageError for the given operation.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage.Error(), e.Op, e.Err)
}

// Is reports StorageError as ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// FieldsOf returns the field messages of a validation error, or nil.
func FieldsOf(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
