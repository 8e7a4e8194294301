package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/lendhub/service-lending/internal/platform/kafka"
	"github.com/lendhub/service-lending/internal/repository"
)

// NotificationConsumer materializes booking lifecycle events into per-user
// notification rows: the owner hears about new requests, the booker about
// decisions.
type NotificationConsumer struct {
	consumer      *kafka.Consumer
	notifications *repository.GormNotificationRepository
	logger        *zap.Logger
}

// NewNotificationConsumer creates a NotificationConsumer.
func NewNotificationConsumer(
	brokers []string,
	groupID string,
	notifications *repository.GormNotificationRepository,
	logger *zap.Logger,
) *NotificationConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicBookingEvents, logger)
	return &NotificationConsumer{
		consumer:      consumer,
		notifications: notifications,
		logger:        logger,
	}
}

// Start begins consuming booking events. Blocks until the context ends.
func (c *NotificationConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *NotificationConsumer) Close() error {
	return c.consumer.Close()
}

func (c *NotificationConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // don't retry malformed messages
	}

	var evt BookingEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse booking event data", zap.Error(err))
		return nil
	}

	var recipient uuid.UUID
	var message string
	switch cloudEvent.Type {
	case BookingRequested:
		recipient = evt.OwnerID
		message = fmt.Sprintf("New booking request for %q from %s to %s",
			evt.ItemName, evt.StartTime.Format(time.RFC3339), evt.EndTime.Format(time.RFC3339))
	case BookingApproved:
		recipient = evt.BookerID
		message = fmt.Sprintf("Your booking of %q was approved", evt.ItemName)
	case BookingRejected:
		recipient = evt.BookerID
		message = fmt.Sprintf("Your booking of %q was rejected", evt.ItemName)
	default:
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}

	row := &repository.NotificationModel{
		ID:        uuid.New(),
		UserID:    recipient,
		Kind:      cloudEvent.Type,
		Message:   message,
		BookingID: evt.BookingID,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.notifications.Save(ctx, row); err != nil {
		c.logger.Error("failed to store notification",
			zap.String("booking_id", evt.BookingID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
