package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	itemDomain "github.com/lendhub/service-lending/internal/domain/item"
	"github.com/lendhub/service-lending/internal/domain/pagination"
	requestDomain "github.com/lendhub/service-lending/internal/domain/request"
	userDomain "github.com/lendhub/service-lending/internal/domain/user"
)

// CreateRequestRequest holds the data needed to post an item request.
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestService is the application service for item requests.
type RequestService struct {
	requests requestDomain.Repository
	items    itemDomain.Repository
	users    userDomain.Repository
	logger   *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests requestDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{requests: requests, items: items, users: users, logger: logger}
}

// CreateRequest posts a new item request.
func (s *RequestService) CreateRequest(ctx context.Context, requestorID uuid.UUID, req CreateRequestRequest) (*RequestView, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}

	r, err := requestDomain.NewRequest(requestorID, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("item request posted",
		zap.String("request_id", r.ID().String()),
		zap.String("requestor_id", requestorID.String()),
	)
	view := toRequestView(r, nil)
	return &view, nil
}

// ListOwnRequests retrieves the caller's requests, newest first, with the
// listings that answer each one.
func (s *RequestService) ListOwnRequests(ctx context.Context, requestorID uuid.UUID) ([]RequestView, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.toRequestViews(ctx, requests)
}

// ListOtherRequests retrieves other users' requests, newest first, paged.
func (s *RequestService) ListOtherRequests(ctx context.Context, requestorID uuid.UUID, page, limit int) (*pagination.PaginatedResult[RequestView], error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, total, err := s.requests.FindOthers(ctx, requestorID, page, limit)
	if err != nil {
		return nil, err
	}
	views, err := s.toRequestViews(ctx, requests)
	if err != nil {
		return nil, err
	}
	result := pagination.NewPaginatedResult(views, total, page, limit)
	return &result, nil
}

// GetRequest retrieves a single request with its answering listings.
func (s *RequestService) GetRequest(ctx context.Context, actorID, requestID uuid.UUID) (*RequestView, error) {
	if _, err := s.users.FindByID(ctx, actorID); err != nil {
		return nil, err
	}

	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	views, err := s.toRequestViews(ctx, []*requestDomain.Request{r})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// toRequestViews attaches answering listings to each request in one batched
// item lookup.
func (s *RequestService) toRequestViews(ctx context.Context, requests []*requestDomain.Request) ([]RequestView, error) {
	ids := make([]uuid.UUID, len(requests))
	for i, r := range requests {
		ids[i] = r.ID()
	}

	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemsByRequest := make(map[uuid.UUID][]ItemView)
	for _, it := range items {
		if it.RequestID() == nil {
			continue
		}
		itemsByRequest[*it.RequestID()] = append(itemsByRequest[*it.RequestID()], toItemView(it, nil))
	}

	views := make([]RequestView, len(requests))
	for i, r := range requests {
		views[i] = toRequestView(r, itemsByRequest[r.ID()])
	}
	return views, nil
}
