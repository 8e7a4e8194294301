package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for user accounts.
type Repository interface {
	// FindByID retrieves a user by identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByIDs retrieves the users with the given identifiers. Missing IDs
	// are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*User, error)

	// Exists reports whether a user with the identifier is registered.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ListAll retrieves every registered user.
	ListAll(ctx context.Context) ([]*User, error)

	// Save persists a new user. A duplicate email is a conflict.
	Save(ctx context.Context, u *User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// Delete removes a user by identifier.
	Delete(ctx context.Context, id uuid.UUID) error
}
