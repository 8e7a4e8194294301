package user

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

// User is the aggregate root for a platform account.
type User struct {
	id        uuid.UUID
	name      string
	email     string
	role      string
	createdAt time.Time
	updatedAt time.Time
}

// Roles known to the platform.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// NewUser creates a new user account with validated fields.
func NewUser(name, email string) (*User, error) {
	if name == "" {
		return nil, apperr.NewValidation("user name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.NewValidation("a valid email is required")
	}

	now := time.Now().UTC()
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		role:      RoleUser,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id uuid.UUID, name, email, role string, createdAt, updatedAt time.Time) *User {
	return &User{id: id, name: name, email: email, role: role, createdAt: createdAt, updatedAt: updatedAt}
}

// ID returns the user's unique identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the unique contact email.
func (u *User) Email() string { return u.email }

// Role returns the platform role.
func (u *User) Role() string { return u.role }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Rename updates the display name.
func (u *User) Rename(name string) error {
	if name == "" {
		return apperr.NewValidation("user name is required")
	}
	u.name = name
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangeEmail updates the contact email.
func (u *User) ChangeEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return apperr.NewValidation("a valid email is required")
	}
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}
