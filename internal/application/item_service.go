package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lendhub/service-lending/internal/domain/apperr"
	bookingDomain "github.com/lendhub/service-lending/internal/domain/booking"
	commentDomain "github.com/lendhub/service-lending/internal/domain/comment"
	itemDomain "github.com/lendhub/service-lending/internal/domain/item"
	"github.com/lendhub/service-lending/internal/domain/pagination"
	userDomain "github.com/lendhub/service-lending/internal/domain/user"
)

// CreateItemRequest holds the data needed to list an item.
type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"request_id"`
}

// UpdateItemRequest holds a partial listing update; empty fields and a nil
// available pointer are untouched.
type UpdateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

// CreateCommentRequest holds a comment body.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ItemService is the application service for the item catalog.
type ItemService struct {
	items    itemDomain.Repository
	users    userDomain.Repository
	bookings bookingDomain.Repository
	comments commentDomain.Repository
	logger   *zap.Logger
	now      func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.Repository,
	users userDomain.Repository,
	bookings bookingDomain.Repository,
	comments commentDomain.Repository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateItem lists a new item for the owner.
func (s *ItemService) CreateItem(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemView, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	available := false
	if req.Available != nil {
		available = *req.Available
	}
	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, available, req.RequestID)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info("item listed",
		zap.String("item_id", it.ID().String()),
		zap.String("owner_id", ownerID.String()),
	)
	view := toItemView(it, nil)
	return &view, nil
}

// UpdateItem applies a partial update. Only the owner may edit a listing.
func (s *ItemService) UpdateItem(ctx context.Context, actorID, itemID uuid.UUID, req UpdateItemRequest) (*ItemView, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(actorID) {
		return nil, apperr.NewForbidden("only the owner may edit a listing")
	}

	it.ApplyPatch(req.Name, req.Description, req.Available)
	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}
	view := toItemView(it, nil)
	return &view, nil
}

// GetItem retrieves a listing with its comments.
func (s *ItemService) GetItem(ctx context.Context, itemID uuid.UUID) (*ItemView, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentViews(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view := toItemView(it, comments)
	return &view, nil
}

// ListOwnItems retrieves the caller's listings, paged.
func (s *ItemService) ListOwnItems(ctx context.Context, ownerID uuid.UUID, page, limit int) (*pagination.PaginatedResult[ItemView], error) {
	items, total, err := s.items.FindByOwner(ctx, ownerID, page, limit)
	if err != nil {
		return nil, err
	}
	views := make([]ItemView, len(items))
	for i, it := range items {
		views[i] = toItemView(it, nil)
	}
	result := pagination.NewPaginatedResult(views, total, page, limit)
	return &result, nil
}

// SearchItems retrieves available listings matching the text.
func (s *ItemService) SearchItems(ctx context.Context, text string, page, limit int) (*pagination.PaginatedResult[ItemView], error) {
	items, total, err := s.items.Search(ctx, text, page, limit)
	if err != nil {
		return nil, err
	}
	views := make([]ItemView, len(items))
	for i, it := range items {
		views[i] = toItemView(it, nil)
	}
	result := pagination.NewPaginatedResult(views, total, page, limit)
	return &result, nil
}

// AddComment posts feedback on an item. The author must have an approved
// booking of the item whose window already ended.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID uuid.UUID, req CreateCommentRequest) (*CommentView, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	eligible, err := s.bookings.ExistsFinishedApproved(ctx, itemID, authorID, s.now())
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, apperr.NewValidation("comments require a completed booking of the item")
	}

	c, err := commentDomain.NewComment(itemID, authorID, req.Text)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Save(ctx, c); err != nil {
		return nil, err
	}

	view := toCommentView(c, author.Name())
	return &view, nil
}

// commentViews loads an item's comments with author names resolved.
func (s *ItemService) commentViews(ctx context.Context, itemID uuid.UUID) ([]CommentView, error) {
	comments, err := s.comments.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, nil
	}

	authorIDs := make([]uuid.UUID, 0, len(comments))
	seen := make(map[uuid.UUID]struct{})
	for _, c := range comments {
		if _, ok := seen[c.AuthorID()]; !ok {
			seen[c.AuthorID()] = struct{}{}
			authorIDs = append(authorIDs, c.AuthorID())
		}
	}
	authors, err := s.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	namesByID := make(map[uuid.UUID]string, len(authors))
	for _, u := range authors {
		namesByID[u.ID()] = u.Name()
	}

	views := make([]CommentView, len(comments))
	for i, c := range comments {
		views[i] = toCommentView(c, namesByID[c.AuthorID()])
	}
	return views, nil
}
