package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lendhub/service-lending/internal/platform/kafka"
)

// Kafka topics owned by this service.
const (
	TopicBookingEvents = "lending.booking.events"
)

// Event types carried on TopicBookingEvents.
const (
	BookingRequested = "booking.requested"
	BookingApproved  = "booking.approved"
	BookingRejected  = "booking.rejected"
)

const eventSource = "service-lending"

// BookingEvent is the payload shared by all booking lifecycle events.
type BookingEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ItemID     uuid.UUID `json:"item_id"`
	ItemName   string    `json:"item_name"`
	OwnerID    uuid.UUID `json:"owner_id"`
	BookerID   uuid.UUID `json:"booker_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits booking lifecycle events. Implementations must not block
// the request path on broker failures.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, eventType string, evt BookingEvent)
}

// KafkaPublisher publishes booking events to Kafka wrapped in CloudEvents.
type KafkaPublisher struct {
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(producer *kafka.Producer, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: logger}
}

// PublishBookingEvent wraps and publishes the event. Failures are logged and
// swallowed; the booking itself has already been persisted.
func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, eventType string, evt BookingEvent) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, evt)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := p.producer.PublishEvent(ctx, TopicBookingEvents, cloudEvent); err != nil {
		p.logger.Error("failed to publish booking event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
