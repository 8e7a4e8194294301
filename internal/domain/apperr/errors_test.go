package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Is(t *testing.T) {
	err := NewNotFound("Booking", "abc")

	assert.True(t, errors.Is(err, &AppError{Kind: KindNotFound}))
	assert.False(t, errors.Is(err, &AppError{Kind: KindForbidden}))

	wrapped := fmt.Errorf("loading booking: %w", err)
	assert.True(t, errors.Is(wrapped, &AppError{Kind: KindNotFound}))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NewNotFound("User", "x")))
	assert.Equal(t, KindValidation, KindOf(NewValidation("bad input")))
	assert.Equal(t, KindForbidden, KindOf(NewForbidden("nope")))
	assert.Equal(t, KindConflict, KindOf(NewBookingConflict(CauseOverlap, "busy")))
	assert.Equal(t, KindInvalidTransition, KindOf(NewInvalidTransition("approved", "rejected")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestCauseOf(t *testing.T) {
	assert.Equal(t, CauseOverlap, CauseOf(NewBookingConflict(CauseOverlap, "busy")))
	assert.Equal(t, CauseSelfBooking, CauseOf(NewBookingConflict(CauseSelfBooking, "own item")))
	assert.Equal(t, CauseNone, CauseOf(NewConflict("version mismatch")))
	assert.Equal(t, CauseNone, CauseOf(errors.New("plain")))
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := NewInternal("query failed", inner)
	assert.True(t, errors.Is(err, inner))
}
