package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lendhub/service-lending/internal/domain/apperr"
	requestDomain "github.com/lendhub/service-lending/internal/domain/request"
)

// GormRequestRepository is the GORM-based implementation of request.Repository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID retrieves a request by identifier.
func (r *GormRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*requestDomain.Request, error) {
	var model RequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("ItemRequest", id.String())
		}
		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}
	return toDomainRequest(&model), nil
}

// FindByRequestor retrieves the user's own requests, newest first.
func (r *GormRequestRepository) FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*requestDomain.Request, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requests by requestor: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindOthers retrieves other users' requests, newest first, paged.
func (r *GormRequestRepository) FindOthers(ctx context.Context, requestorID uuid.UUID, page, limit int) ([]*requestDomain.Request, int64, error) {
	q := r.db.WithContext(ctx).Model(&RequestModel{}).Where("requestor_id <> ?", requestorID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	var models []RequestModel
	if err := q.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find requests: %w", err)
	}
	return toDomainRequests(models), total, nil
}

// Save persists a new request.
func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.Request) error {
	model := &RequestModel{
		ID:          req.ID(),
		RequestorID: req.RequestorID(),
		Description: req.Description(),
		CreatedAt:   req.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	return nil
}

func toDomainRequest(m *RequestModel) *requestDomain.Request {
	return requestDomain.Reconstruct(m.ID, m.RequestorID, m.Description, m.CreatedAt)
}

func toDomainRequests(models []RequestModel) []*requestDomain.Request {
	requests := make([]*requestDomain.Request, len(models))
	for i, m := range models {
		requests[i] = toDomainRequest(&m)
	}
	return requests
}
