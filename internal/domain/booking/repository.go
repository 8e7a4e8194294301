package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for booking aggregates.
type Repository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// ExistsOverlapping reports whether any booking for the item, regardless
	// of status, overlaps [start, end] under the inclusive-boundary test.
	ExistsOverlapping(ctx context.Context, itemID uuid.UUID, start, end time.Time) (bool, error)

	// Save persists a new booking. The overlap check is re-run inside the
	// same transaction that inserts the row, so two concurrent saves for the
	// same item cannot both succeed with intersecting windows.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error

	// FindByBooker retrieves the booker's bookings in the given state bucket,
	// classified against now, ordered by start time descending.
	FindByBooker(ctx context.Context, bookerID uuid.UUID, filter StateFilter, now time.Time, page, limit int) ([]*Booking, int64, error)

	// FindByOwner retrieves bookings on items owned by the user, in the given
	// state bucket, classified against now, ordered by start time descending.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter StateFilter, now time.Time, page, limit int) ([]*Booking, int64, error)

	// ExistsFinishedApproved reports whether the booker has an approved
	// booking of the item whose window already ended. Used to gate comments.
	ExistsFinishedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)

	// ListAll retrieves all bookings with pagination (admin).
	ListAll(ctx context.Context, page, limit int) ([]*Booking, int64, error)

	// CountByStatus returns booking counts grouped by status (admin).
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
