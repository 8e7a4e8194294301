package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for comments.
type Repository interface {
	// FindByItem retrieves an item's comments, oldest first.
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*Comment, error)

	// Save persists a new comment.
	Save(ctx context.Context, c *Comment) error
}
