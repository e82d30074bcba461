package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	usecases_port "listing-service/internal/core/port/usecases_port"
	"listing-service/pkg/rabbitmq/rabbitmq_consumer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// CacheInvalidationConsumerAdapter слушает команды сброса кэша страниц.
type CacheInvalidationConsumerAdapter struct {
	consumer rabbitmq_consumer.Consumer
	useCase  usecases_port.PropertyHandlerPort
	registry *contracts.Registry
	logger   port.LoggerPort
}

func NewCacheInvalidationConsumerAdapter(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	useCase usecases_port.PropertyHandlerPort,
	registry *contracts.Registry,
	logger port.LoggerPort,
	source rabbitmq_consumer.ChannelSource,
) (*CacheInvalidationConsumerAdapter, error) {
	if useCase == nil || registry == nil || logger == nil {
		return nil, fmt.Errorf("rabbitmq adapter: use case, registry and logger are required")
	}
	adapter := &CacheInvalidationConsumerAdapter{
		useCase:  useCase,
		registry: registry,
		logger:   logger,
	}

	pkgLogger := logger.WithFields(port.Fields{"component": "rabbitmq_distributing_consumer", "consumer_tag": consumerCfg.ConsumerTag})
	consumerCfg.Logger = NewPkgLoggerBridge(pkgLogger)

	consumer, err := rabbitmq_consumer.NewDistributingConsumer(consumerCfg, adapter.messageHandler, source)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for cache invalidation: %w", err)
	}
	adapter.consumer = consumer
	return adapter, nil
}

func (a *CacheInvalidationConsumerAdapter) Start(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

func (a *CacheInvalidationConsumerAdapter) Close() error {
	return a.consumer.Close()
}

func (a *CacheInvalidationConsumerAdapter) messageHandler(ctx context.Context, d amqp.Delivery) error {
	traceID, ok := d.Headers["x-trace-id"].(string)
	if !ok || traceID == "" {
		traceID = uuid.New().String()
	}
	msgLogger := a.logger.WithFields(port.Fields{
		"trace_id":     traceID,
		"delivery_tag": d.DeliveryTag,
		"adapter_name": "CacheInvalidationConsumerAdapter",
	})
	ctx = contextkeys.ContextWithLogger(ctx, msgLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)

	cmd, err := a.decode(d.Body)
	if err != nil {
		// повтор не исправит тело сообщения, подтверждаем и забываем
		msgLogger.Error("Invalid cache invalidation command, dropping", err, nil)
		return nil
	}

	fields := port.Fields{"purpose": cmd.Purpose}
	if cmd.Page != nil {
		fields["page"] = *cmd.Page
	}
	msgLogger.Info("Invalidating pagination cache", fields)

	a.useCase.InvalidateCache(ctx, cmd.Purpose, cmd.Page)
	return nil
}

func (a *CacheInvalidationConsumerAdapter) decode(body []byte) (*domain.InvalidationCommand, error) {
	if err := a.registry.ValidateJSON(contracts.CacheInvalidationCommandV1, body); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	var dto CacheInvalidationCommandDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}
	purpose, err := domain.ParsePurpose(dto.Purpose)
	if err != nil {
		return nil, err
	}
	return &domain.InvalidationCommand{Purpose: purpose, Page: dto.Page}, nil
}
