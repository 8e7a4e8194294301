package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lendhub/service-lending/internal/domain/pagination"
	"github.com/lendhub/service-lending/internal/repository"
)

// NotificationView is the read model for a notification feed entry.
type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	BookingID uuid.UUID `json:"booking_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationService lists and acknowledges a user's notification feed.
type NotificationService struct {
	notifications *repository.GormNotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifications *repository.GormNotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// ListNotifications retrieves the caller's feed, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID uuid.UUID, page, limit int) (*pagination.PaginatedResult[NotificationView], error) {
	rows, total, err := s.notifications.FindByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	views := make([]NotificationView, len(rows))
	for i, n := range rows {
		views[i] = NotificationView{
			ID:        n.ID,
			Kind:      n.Kind,
			Message:   n.Message,
			BookingID: n.BookingID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	result := pagination.NewPaginatedResult(views, total, page, limit)
	return &result, nil
}

// MarkNotificationRead acknowledges one feed entry.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.notifications.MarkRead(ctx, userID, id)
}
