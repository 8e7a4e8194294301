package comment

import (
	"time"

	"github.com/google/uuid"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

// Comment is feedback left on an item by a user who already borrowed it.
type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      string
	createdAt time.Time
}

// NewComment creates a comment. Eligibility (a finished approved booking) is
// the application service's concern.
func NewComment(itemID, authorID uuid.UUID, text string) (*Comment, error) {
	if text == "" {
		return nil, apperr.NewValidation("comment text is required")
	}
	return &Comment{
		id:        uuid.New(),
		itemID:    itemID,
		authorID:  authorID,
		text:      text,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Comment from persistence data (no validation).
func Reconstruct(id, itemID, authorID uuid.UUID, text string, createdAt time.Time) *Comment {
	return &Comment{id: id, itemID: itemID, authorID: authorID, text: text, createdAt: createdAt}
}

// ID returns the comment's unique identifier.
func (c *Comment) ID() uuid.UUID { return c.id }

// ItemID returns the commented item's identifier.
func (c *Comment) ItemID() uuid.UUID { return c.itemID }

// AuthorID returns the author's identifier.
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }

// Text returns the comment body.
func (c *Comment) Text() string { return c.text }

// CreatedAt returns the creation timestamp.
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
