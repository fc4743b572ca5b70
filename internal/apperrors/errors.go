package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource changed underneath the caller (stale version).
var ErrConflict = errors.New("resource was modified concurrently")

// ErrForbidden indicates the actor may not touch the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates a missing or invalid actor identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned when the cause should not leak to the caller.
var ErrInternal = errors.New("internal error")

// ErrAtomicCommitFailed wraps any persistence failure inside an all-or-nothing unit.
// When it is returned nothing from the unit was written.
var ErrAtomicCommitFailed = errors.New("atomic commit failed")

// ErrDuplicateReferenceNumber means reference allocation kept colliding.
var ErrDuplicateReferenceNumber = errors.New("duplicate reference number")

// AppError carries an HTTP-ish code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// FieldError is a single validation failure on one attribute of one entity.
type FieldError struct {
	Entity string `json:"entity"`
	Field  string `json:"field"`
	Err    error  `json:"-"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Entity, e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors is the union of validation failures collected across every
// entity taking part in an operation. errors.Is matches any member and
// ErrValidation.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(fe)+1)
	errs = append(errs, ErrValidation)
	for _, e := range fe {
		errs = append(errs, e)
	}
	return errs
}

// Add appends a failure.
func (fe *FieldErrors) Add(entity, field string, err error) {
	*fe = append(*fe, FieldError{Entity: entity, Field: field, Err: err})
}

// ErrOrNil returns nil when nothing was collected.
func (fe FieldErrors) ErrOrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
