package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

// Item is the aggregate root for a catalog listing. The availability flag
// gates new bookings; an unavailable item can still be read and commented on.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewItem creates a new catalog listing. requestID links the listing to the
// item request it answers, if any.
func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, apperr.NewValidation("owner ID is required")
	}
	if name == "" {
		return nil, apperr.NewValidation("item name is required")
	}
	if description == "" {
		return nil, apperr.NewValidation("item description is required")
	}

	now := time.Now().UTC()
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(
	id, ownerID uuid.UUID,
	name, description string,
	available bool,
	requestID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() uuid.UUID { return i.id }

// OwnerID returns the listing owner's identifier.
func (i *Item) OwnerID() uuid.UUID { return i.ownerID }

// Name returns the listing name.
func (i *Item) Name() string { return i.name }

// Description returns the listing description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item is currently lendable.
func (i *Item) Available() bool { return i.available }

// RequestID returns the originating item request, or nil.
func (i *Item) RequestID() *uuid.UUID { return i.requestID }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// IsOwnedBy reports whether the user owns this listing.
func (i *Item) IsOwnedBy(userID uuid.UUID) bool { return i.ownerID == userID }

// ApplyPatch updates the mutable listing fields. Empty strings and a nil
// available pointer leave the current values untouched.
func (i *Item) ApplyPatch(name, description string, available *bool) {
	if name != "" {
		i.name = name
	}
	if description != "" {
		i.description = description
	}
	if available != nil {
		i.available = *available
	}
	i.updatedAt = time.Now().UTC()
}
