package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

// Booking is the aggregate root for the booking domain: a time-bounded claim
// on an item by a booker, subject to the item owner's approval.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	start     time.Time
	end       time.Time
	status    Status
	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking aggregate with status=waiting. Window
// ordering is the transport layer's concern and is not re-validated here.
func NewBooking(itemID, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	if itemID == uuid.Nil {
		return nil, apperr.NewValidation("item ID is required")
	}
	if bookerID == uuid.Nil {
		return nil, apperr.NewValidation("booker ID is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, apperr.NewValidation("booking window is required")
	}

	now := time.Now().UTC()
	return &Booking{
		id:        uuid.New(),
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start,
		end:       end,
		status:    StatusWaiting,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	start, end time.Time,
	status Status,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start,
		end:       end,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// ItemID returns the reserved item's identifier.
func (b *Booking) ItemID() uuid.UUID { return b.itemID }

// BookerID returns the requesting user's identifier.
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }

// Start returns the start of the booking window.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the booking window.
func (b *Booking) End() time.Time { return b.end }

// Status returns the current booking status.
func (b *Booking) Status() Status { return b.status }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Decide applies the owner's decision. Approval is final; a rejected booking
// may still be approved afterwards (see the transition table in status.go).
func (b *Booking) Decide(approve bool) error {
	target := StatusRejected
	if approve {
		target = StatusApproved
	}
	if !b.status.CanTransitionTo(target) {
		return apperr.NewInvalidTransition(string(b.status), string(target))
	}
	b.status = target
	b.updatedAt = time.Now().UTC()
	return nil
}

// IsVisibleTo reports whether the user may read this booking. The item owner
// must be resolved by the caller.
func (b *Booking) IsVisibleTo(userID, itemOwnerID uuid.UUID) bool {
	return b.bookerID == userID || itemOwnerID == userID
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
