package item

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for catalog listings.
type Repository interface {
	// FindByID retrieves an item by identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByIDs retrieves the items with the given identifiers. Missing IDs
	// are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Item, error)

	// FindByOwner retrieves the owner's listings with pagination.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]*Item, int64, error)

	// FindByRequestIDs retrieves listings answering any of the given requests.
	FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*Item, error)

	// Search retrieves available listings whose name or description contains
	// the text, case-insensitively. Blank text yields no results.
	Search(ctx context.Context, text string, page, limit int) ([]*Item, int64, error)

	// Save persists a new item.
	Save(ctx context.Context, i *Item) error

	// Update persists changes to an existing item.
	Update(ctx context.Context, i *Item) error
}
