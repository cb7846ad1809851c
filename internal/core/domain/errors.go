package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")

	// ErrSlotUnavailable is returned when booking a slot that is already booked.
	ErrSlotUnavailable = errors.New("ad slot is no longer available")

	// ErrNotPublisher is returned to callers that need a publisher record but own none.
	ErrNotPublisher = Forbidden("Not a publisher")
)

// NotFoundError names the missing resource. It matches ErrNotFound.
type NotFoundError struct {
	Resource string
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "Resource not found"
	}
	return e.Resource + " not found"
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ForbiddenError carries the client-facing reason. It matches ErrForbidden.
type ForbiddenError struct {
	Reason string
}

func Forbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}

func (e *ForbiddenError) Error() string {
	if e.Reason == "" {
		return "Forbidden"
	}
	return e.Reason
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// ValidationError collects field-level problems with caller input. It
// matches ErrValidation.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a message against field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no field problems were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
