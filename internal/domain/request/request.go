package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

// Request is the aggregate root for an item request: a user asking for an
// item that does not exist in the catalog yet.
type Request struct {
	id          uuid.UUID
	requestorID uuid.UUID
	description string
	createdAt   time.Time
}

// NewRequest creates a new item request.
func NewRequest(requestorID uuid.UUID, description string) (*Request, error) {
	if requestorID == uuid.Nil {
		return nil, apperr.NewValidation("requestor ID is required")
	}
	if description == "" {
		return nil, apperr.NewValidation("request description is required")
	}
	return &Request{
		id:          uuid.New(),
		requestorID: requestorID,
		description: description,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Request from persistence data (no validation).
func Reconstruct(id, requestorID uuid.UUID, description string, createdAt time.Time) *Request {
	return &Request{id: id, requestorID: requestorID, description: description, createdAt: createdAt}
}

// ID returns the request's unique identifier.
func (r *Request) ID() uuid.UUID { return r.id }

// RequestorID returns the requesting user's identifier.
func (r *Request) RequestorID() uuid.UUID { return r.requestorID }

// Description returns what the requestor is asking for.
func (r *Request) Description() string { return r.description }

// CreatedAt returns the creation timestamp.
func (r *Request) CreatedAt() time.Time { return r.createdAt }
