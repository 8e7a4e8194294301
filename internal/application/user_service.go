package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	userDomain "github.com/lendhub/service-lending/internal/domain/user"
)

// CreateUserRequest holds the data needed to register a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest holds a partial user update; empty fields are untouched.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService is the application service for the user directory.
type UserService struct {
	users  userDomain.Repository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.Repository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// CreateUser registers a new account.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserView, error) {
	u, err := userDomain.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", u.ID().String()))
	view := toUserView(u)
	return &view, nil
}

// GetUser retrieves an account by identifier.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toUserView(u)
	return &view, nil
}

// ListUsers retrieves all accounts.
func (s *UserService) ListUsers(ctx context.Context) ([]UserView, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, len(users))
	for i, u := range users {
		views[i] = toUserView(u)
	}
	return views, nil
}

// UpdateUser applies a partial update to an account.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserView, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		if err := u.Rename(req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != "" {
		if err := u.ChangeEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	view := toUserView(u)
	return &view, nil
}

// DeleteUser removes an account.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}
