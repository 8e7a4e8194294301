package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for transport mapping and tests.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindValidation        Kind = "validation"
	KindUnavailable       Kind = "unavailable"
	KindConflict          Kind = "conflict"
	KindForbidden         Kind = "forbidden"
	KindInvalidTransition Kind = "invalid_transition"
	KindInternal          Kind = "internal"
)

// ConflictCause discriminates why a booking conflict was raised.
type ConflictCause string

const (
	CauseNone        ConflictCause = ""
	CauseOverlap     ConflictCause = "overlap"
	CauseSelfBooking ConflictCause = "self_booking"
)

// AppError is the error type returned by application services.
type AppError struct {
	Kind    Kind
	Entity  string
	Message string
	Cause   ConflictCause
	err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any.
func (e *AppError) Unwrap() error { return e.err }

// Is matches on Kind so sentinel-style comparisons work with errors.Is.
func (e *AppError) Is(target error) bool {
	var ae *AppError
	if !errors.As(target, &ae) {
		return false
	}
	return e.Kind == ae.Kind
}

// NewNotFound reports that an entity with the given identifier does not exist.
func NewNotFound(entity, id string) *AppError {
	return &AppError{Kind: KindNotFound, Entity: entity, Message: fmt.Sprintf("%q not found", id)}
}

// NewValidation reports invalid input.
func NewValidation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

// NewUnavailable reports that an item is not currently lendable.
func NewUnavailable(entity, id string) *AppError {
	return &AppError{Kind: KindUnavailable, Entity: entity, Message: fmt.Sprintf("%q is not available", id)}
}

// NewBookingConflict reports an overlap or self-booking conflict. The cause
// tag lets callers discriminate while the transport maps both to one status.
func NewBookingConflict(cause ConflictCause, msg string) *AppError {
	return &AppError{Kind: KindConflict, Entity: "Booking", Message: msg, Cause: cause}
}

// NewConflict reports a generic state conflict (concurrent modification).
func NewConflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

// NewForbidden reports an authorization failure.
func NewForbidden(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

// NewInvalidTransition reports an illegal status transition.
func NewInvalidTransition(from, to string) *AppError {
	return &AppError{Kind: KindInvalidTransition, Message: fmt.Sprintf("cannot transition from %s to %s", from, to)}
}

// NewInternal wraps an unexpected failure.
func NewInternal(msg string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: msg, err: err}
}

// KindOf extracts the Kind from an error chain, or KindInternal.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// CauseOf extracts the conflict cause from an error chain, or CauseNone.
func CauseOf(err error) ConflictCause {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Cause
	}
	return CauseNone
}
