package rabbitmq_consumer

import (
	"context"
	"fmt"
	"listing-service/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer - общий контракт потребителей пакета.
type Consumer interface {
	// StartConsuming блокируется до отмены ctx или потери канала.
	StartConsuming(ctx context.Context) error
	Close() error
}

// ChannelSource выдает каналы. Реализуется *rabbitmq_common.ConnectionManager.
type ChannelSource interface {
	GetChannel() (*amqp.Channel, error)
}

type ConsumerConfig struct {
	rabbitmq_common.Config

	// Очередь. Пустое имя при DeclareQueue - имя сгенерирует сервер.
	QueueName    string
	DeclareQueue bool
	DurableQueue bool
	QueueArgs    amqp.Table

	// Привязка. Пустое имя обменника - без привязки.
	ExchangeNameForBind    string
	ExchangeTypeForBind    string
	DeclareExchangeForBind bool
	DurableExchangeForBind bool
	RoutingKeyForBind      string

	PrefetchCount int
	ConsumerTag   string

	// Ретраи: основная очередь -> RetryExchange -> RetryQueue (TTL) -> обратно в ExchangeNameForBind.
	// После MaxRetries сообщение публикуется в FinalDLXExchange.
	EnableRetryMechanism bool
	RetryExchange        string
	RetryQueue           string
	RetryTTL             int // мс
	FinalDLXExchange     string
	FinalDLQ             string
	FinalDLQRoutingKey   string
	MaxRetries           int

	Logger rabbitmq_common.Logger
}

func (c ConsumerConfig) validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if !c.DeclareQueue && c.QueueName == "" {
		return fmt.Errorf("consumer: queue name is required if DeclareQueue is false")
	}
	if c.DeclareExchangeForBind && (c.ExchangeNameForBind == "" || c.ExchangeTypeForBind == "") {
		return fmt.Errorf("consumer: exchange name and type are required to declare an exchange for binding")
	}
	if c.EnableRetryMechanism {
		switch {
		case c.ExchangeNameForBind == "":
			return fmt.Errorf("consumer: retry mechanism needs ExchangeNameForBind to route retried messages back")
		case c.RetryExchange == "" || c.RetryQueue == "":
			return fmt.Errorf("consumer: RetryExchange and RetryQueue are required when retries are enabled")
		case c.FinalDLXExchange == "" || c.FinalDLQ == "":
			return fmt.Errorf("consumer: FinalDLXExchange and FinalDLQ are required when retries are enabled")
		case c.RetryTTL <= 0 || c.MaxRetries < 0:
			return fmt.Errorf("consumer: RetryTTL must be positive and MaxRetries non-negative")
		}
	}
	return nil
}

// declareTopology объявляет очередь, привязку и, при включенных ретраях, retry/DLQ сателлиты.
// Возвращает фактическое имя очереди.
func declareTopology(ch *amqp.Channel, cfg ConsumerConfig, logger rabbitmq_common.Logger) (string, error) {
	if cfg.PrefetchCount > 0 {
		if err := ch.Qos(cfg.PrefetchCount, 0, false); err != nil {
			return "", fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	queueArgs := amqp.Table{}
	for k, v := range cfg.QueueArgs {
		queueArgs[k] = v
	}
	if cfg.EnableRetryMechanism {
		queueArgs["x-dead-letter-exchange"] = cfg.RetryExchange
	}

	queueName := cfg.QueueName
	if cfg.DeclareQueue {
		q, err := ch.QueueDeclare(queueName, cfg.DurableQueue, false, false, false, queueArgs)
		if err != nil {
			return "", fmt.Errorf("failed to declare queue '%s': %w", queueName, err)
		}
		queueName = q.Name
	}

	if cfg.DeclareExchangeForBind {
		err := ch.ExchangeDeclare(cfg.ExchangeNameForBind, cfg.ExchangeTypeForBind, cfg.DurableExchangeForBind, false, false, false, nil)
		if err != nil {
			return "", fmt.Errorf("failed to declare exchange '%s': %w", cfg.ExchangeNameForBind, err)
		}
	}
	if cfg.ExchangeNameForBind != "" {
		if err := ch.QueueBind(queueName, cfg.RoutingKeyForBind, cfg.ExchangeNameForBind, false, nil); err != nil {
			return "", fmt.Errorf("failed to bind queue '%s' to '%s': %w", queueName, cfg.ExchangeNameForBind, err)
		}
	}

	if !cfg.EnableRetryMechanism {
		return queueName, nil
	}

	logger.Debug("Declaring retry topology", "retry_exchange", cfg.RetryExchange, "retry_queue", cfg.RetryQueue, "final_dlq", cfg.FinalDLQ)
	if err := ch.ExchangeDeclare(cfg.FinalDLXExchange, "direct", true, false, false, false, nil); err != nil {
		return "", fmt.Errorf("failed to declare final DLX: %w", err)
	}
	if _, err := ch.QueueDeclare(cfg.FinalDLQ, true, false, false, false, nil); err != nil {
		return "", fmt.Errorf("failed to declare final DLQ: %w", err)
	}
	if err := ch.QueueBind(cfg.FinalDLQ, cfg.FinalDLQRoutingKey, cfg.FinalDLXExchange, false, nil); err != nil {
		return "", fmt.Errorf("failed to bind final DLQ: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.RetryExchange, "fanout", true, false, false, false, nil); err != nil {
		return "", fmt.Errorf("failed to declare retry exchange: %w", err)
	}
	_, err := ch.QueueDeclare(cfg.RetryQueue, true, false, false, false, amqp.Table{
		"x-message-ttl":          int32(cfg.RetryTTL),
		"x-dead-letter-exchange": cfg.ExchangeNameForBind,
	})
	if err != nil {
		return "", fmt.Errorf("failed to declare retry queue: %w", err)
	}
	if err := ch.QueueBind(cfg.RetryQueue, "", cfg.RetryExchange, false, nil); err != nil {
		return "", fmt.Errorf("failed to bind retry queue: %w", err)
	}
	return queueName, nil
}

// deathCount - сколько раз сообщение было отброшено из очереди queueName (заголовок x-death).
func deathCount(headers amqp.Table, queueName string) int64 {
	deaths, ok := headers["x-death"].([]interface{})
	if !ok {
		return 0
	}
	for _, death := range deaths {
		tbl, ok := death.(amqp.Table)
		if !ok {
			continue
		}
		if queue, _ := tbl["queue"].(string); queue != queueName {
			continue
		}
		switch n := tbl["count"].(type) {
		case int64:
			return n
		case int32:
			return int64(n)
		case int:
			return int64(n)
		}
	}
	return 0
}

type outcome int

const (
	outcomeAck outcome = iota
	outcomeDrop
	outcomeRetry
	outcomeDeadLetter
)

// decide выбирает судьбу сообщения после обработчика.
func decide(handlerErr error, deaths int64, cfg ConsumerConfig) outcome {
	switch {
	case handlerErr == nil:
		return outcomeAck
	case !cfg.EnableRetryMechanism:
		return outcomeDrop
	case deaths < int64(cfg.MaxRetries):
		return outcomeRetry
	default:
		return outcomeDeadLetter
	}
}
