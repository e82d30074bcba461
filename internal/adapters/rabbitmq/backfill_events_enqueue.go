package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessagePublisher реализуется *rabbitmq_producer.Publisher.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

type BackfillEventsAdapter struct {
	producer   MessagePublisher
	routingKey string
}

func NewBackfillEventsAdapter(producer MessagePublisher, routingKey string) (*BackfillEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &BackfillEventsAdapter{producer: producer, routingKey: routingKey}, nil
}

func (a *BackfillEventsAdapter) PublishBackfill(ctx context.Context, event domain.BackfillEvent) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "BackfillEventsAdapter",
		"routing_key": a.routingKey,
		"purpose":     event.Purpose,
		"page":        event.Page,
	})

	dto := BackfillEventDTO{
		EventID:    uuid.New().String(),
		Purpose:    string(event.Purpose),
		Page:       event.Page,
		PageSize:   event.PageSize,
		IDs:        event.IDs,
		TotalCount: event.TotalCount,
		OccurredAt: event.OccurredAt.UTC(),
	}
	if dto.IDs == nil {
		dto.IDs = []string{}
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal backfill event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    dto.EventID,
		Timestamp:    time.Now(),
		Headers:      amqp.Table{"event-type": "ListingsBackfilled", "event-version": "1.0.0"},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish backfill event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish backfill event: %w", err)
	}
	adapterLogger.Debug("Backfill event published", port.Fields{"ids_count": len(dto.IDs)})
	return nil
}
