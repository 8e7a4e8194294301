package request

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for item requests.
type Repository interface {
	// FindByID retrieves a request by identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)

	// FindByRequestor retrieves the user's own requests, newest first.
	FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*Request, error)

	// FindOthers retrieves other users' requests, newest first, paged.
	FindOthers(ctx context.Context, requestorID uuid.UUID, page, limit int) ([]*Request, int64, error)

	// Save persists a new request.
	Save(ctx context.Context, r *Request) error
}
