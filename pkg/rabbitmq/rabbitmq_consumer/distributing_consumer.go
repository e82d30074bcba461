package rabbitmq_consumer

import (
	"context"
	"errors"
	"fmt"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageHandler обрабатывает одно сообщение. ack/nack/DLQ решает потребитель.
type MessageHandler func(ctx context.Context, delivery amqp.Delivery) error

// DistributingConsumer обрабатывает каждое сообщение в отдельной горутине.
// Параллелизм ограничен PrefetchCount.
type DistributingConsumer struct {
	cfg       ConsumerConfig
	handler   MessageHandler
	logger    rabbitmq_common.Logger
	channel   *amqp.Channel
	queueName string
	dlx       *rabbitmq_producer.Publisher
	wg        sync.WaitGroup
}

var _ Consumer = (*DistributingConsumer)(nil)

func NewDistributingConsumer(cfg ConsumerConfig, handler MessageHandler, source ChannelSource) (*DistributingConsumer, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("distributing consumer: %w", err)
	}
	if handler == nil {
		return nil, fmt.Errorf("distributing consumer: message handler is required")
	}
	if source == nil {
		return nil, fmt.Errorf("distributing consumer: channel source cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	ch, err := source.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("distributing consumer: %w", err)
	}
	queueName, err := declareTopology(ch, cfg, logger)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("distributing consumer: %w", err)
	}

	c := &DistributingConsumer{
		cfg:       cfg,
		handler:   handler,
		logger:    logger,
		channel:   ch,
		queueName: queueName,
	}

	if cfg.EnableRetryMechanism {
		c.dlx, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:       cfg.Config,
			ExchangeName: cfg.FinalDLXExchange,
			Logger:       logger,
		}, source)
		if err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("distributing consumer: failed to create final DLX publisher: %w", err)
		}
	}
	return c, nil
}

func (c *DistributingConsumer) StartConsuming(ctx context.Context) error {
	msgs, err := c.channel.Consume(c.queueName, c.cfg.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer on queue '%s': %w", c.queueName, err)
	}
	closed := c.channel.NotifyClose(make(chan *amqp.Error, 1))

	c.logger.Info("Waiting for messages", "queue_name", c.queueName, "consumer_tag", c.cfg.ConsumerTag)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Context cancelled, stopping consumer", "consumer_tag", c.cfg.ConsumerTag)
			return nil
		case amqpErr := <-closed:
			if amqpErr == nil {
				return nil
			}
			return fmt.Errorf("consumer channel closed: %w", amqpErr)
		case d, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("deliveries channel closed by broker")
			}
			c.wg.Add(1)
			go func() {
				defer c.wg.Done()
				c.process(ctx, d)
			}()
		}
	}
}

func (c *DistributingConsumer) process(ctx context.Context, d amqp.Delivery) {
	handlerErr := c.handler(ctx, d)
	deaths := deathCount(d.Headers, c.queueName)

	switch decide(handlerErr, deaths, c.cfg) {
	case outcomeAck:
		_ = d.Ack(false)
	case outcomeDrop:
		c.logger.Error(handlerErr, "Handler failed, retries disabled. Dropping message", "delivery_tag", d.DeliveryTag)
		_ = d.Nack(false, false)
	case outcomeRetry:
		c.logger.Warn("Handler failed, scheduling retry", "delivery_tag", d.DeliveryTag, "death_count", deaths, "error", handlerErr.Error())
		_ = d.Nack(false, false)
	case outcomeDeadLetter:
		err := c.dlx.Publish(context.Background(), c.cfg.FinalDLQRoutingKey, amqp.Publishing{
			ContentType:  d.ContentType,
			Body:         d.Body,
			Headers:      d.Headers,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		})
		if err != nil {
			c.logger.Error(err, "Failed to publish to final DLX, message goes through retry again", "delivery_tag", d.DeliveryTag)
			_ = d.Nack(false, false)
			return
		}
		c.logger.Warn("Max retries reached, message moved to final DLQ", "delivery_tag", d.DeliveryTag, "error", handlerErr.Error())
		_ = d.Ack(false)
	}
}

// Close дожидается активных обработчиков и закрывает канал.
func (c *DistributingConsumer) Close() error {
	c.wg.Wait()

	var firstErr error
	if c.dlx != nil {
		if err := c.dlx.Close(); err != nil {
			firstErr = err
		}
	}
	if c.channel != nil && !c.channel.IsClosed() {
		if err := c.channel.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.logger.Info("Consumer closed", "consumer_tag", c.cfg.ConsumerTag)
	return firstErr
}
