package rabbitmq_producer

import (
	"context"
	"fmt"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ChannelSource выдает каналы. Реализуется *rabbitmq_common.ConnectionManager.
type ChannelSource interface {
	GetChannel() (*amqp.Channel, error)
}

type PublisherConfig struct {
	rabbitmq_common.Config
	ExchangeName       string // пустая строка - default exchange
	ExchangeType       string // direct, fanout, topic, headers
	DurableExchange    bool
	AutoDeleteExchange bool
	ExchangeArgs       amqp.Table

	// Если false, обменник должен уже существовать
	DeclareExchangeIfMissing bool

	Logger rabbitmq_common.Logger
}

func (c PublisherConfig) validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if c.DeclareExchangeIfMissing && (c.ExchangeName == "" || c.ExchangeType == "") {
		return fmt.Errorf("producer: exchange name and type are required when DeclareExchangeIfMissing is true")
	}
	return nil
}

// Publisher публикует сообщения в один обменник. Закрытый канал переоткрывается
// при следующей публикации.
type Publisher struct {
	cfg    PublisherConfig
	source ChannelSource
	logger rabbitmq_common.Logger

	mu      sync.Mutex
	channel *amqp.Channel
	closed  bool
}

func NewPublisher(cfg PublisherConfig, source ChannelSource) (*Publisher, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid publisher config: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("producer: channel source cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	p := &Publisher{cfg: cfg, source: source, logger: logger}
	if _, err := p.ensureChannel(); err != nil {
		return nil, err
	}
	return p, nil
}

// ensureChannel вызывается под p.mu или до того, как издатель стал доступен другим горутинам.
func (p *Publisher) ensureChannel() (*amqp.Channel, error) {
	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}

	ch, err := p.source.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("producer: failed to get channel: %w", err)
	}

	if p.cfg.DeclareExchangeIfMissing {
		p.logger.Debug("Declaring exchange", "name", p.cfg.ExchangeName, "type", p.cfg.ExchangeType)
		err = ch.ExchangeDeclare(
			p.cfg.ExchangeName,
			p.cfg.ExchangeType,
			p.cfg.DurableExchange,
			p.cfg.AutoDeleteExchange,
			false, // internal
			false, // no-wait
			p.cfg.ExchangeArgs,
		)
		if err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("producer: failed to declare exchange '%s': %w", p.cfg.ExchangeName, err)
		}
	}

	p.channel = ch
	return ch, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("producer: publisher is closed")
	}
	ch, err := p.ensureChannel()
	if err != nil {
		return err
	}
	if err := ch.PublishWithContext(ctx, p.cfg.ExchangeName, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("producer: failed to publish message: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.channel == nil || p.channel.IsClosed() {
		return nil
	}
	err := p.channel.Close()
	p.channel = nil
	if err != nil {
		p.logger.Error(err, "Error closing publisher channel")
		return err
	}
	p.logger.Debug("Publisher closed")
	return nil
}
