package rabbitmq_common

import (
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultReconnectDelay = 5 * time.Second

// ConnectionManager держит одно соединение на процесс и раздает из него каналы.
// После обрыва соединение восстанавливается в фоне.
type ConnectionManager struct {
	cfg            Config
	logger         Logger
	reconnectDelay time.Duration

	mu   sync.RWMutex
	conn *amqp.Connection

	done      chan struct{}
	closeOnce sync.Once
}

// NewConnectionManager подключается сразу и возвращает ошибку, если брокер недоступен.
func NewConnectionManager(cfg Config, logger Logger) (*ConnectionManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewNoopLogger()
	}
	m := &ConnectionManager{
		cfg:            cfg,
		logger:         logger,
		reconnectDelay: defaultReconnectDelay,
		done:           make(chan struct{}),
	}
	conn, err := m.dial()
	if err != nil {
		return nil, fmt.Errorf("initial connection failed: %w", err)
	}
	m.watch(conn)
	return m, nil
}

func (m *ConnectionManager) dial() (*amqp.Connection, error) {
	m.logger.Debug("Connecting to RabbitMQ")
	conn, err := amqp.Dial(m.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}
	m.mu.Lock()
	m.conn = conn
	m.mu.Unlock()
	m.logger.Info("Connected to RabbitMQ")
	return conn, nil
}

// watch ждет закрытия соединения и переподключается, пока менеджер не закрыт.
func (m *ConnectionManager) watch(conn *amqp.Connection) {
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		select {
		case <-m.done:
			return
		case amqpErr, ok := <-closed:
			if !ok || amqpErr == nil {
				// закрыто нами
				return
			}
			m.logger.Warn("RabbitMQ connection lost", "reason", amqpErr.Reason, "code", amqpErr.Code)
		}

		for {
			select {
			case <-m.done:
				return
			case <-time.After(m.reconnectDelay):
			}
			next, err := m.dial()
			if err != nil {
				m.logger.Error(err, "Reconnect failed", "retry_in", m.reconnectDelay.String())
				continue
			}
			m.watch(next)
			return
		}
	}()
}

// GetChannel открывает новый канал на общем соединении.
func (m *ConnectionManager) GetChannel() (*amqp.Channel, error) {
	m.mu.RLock()
	conn := m.conn
	m.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return nil, fmt.Errorf("rabbitmq connection is not available")
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return ch, nil
}

func (m *ConnectionManager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.done)
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.conn != nil && !m.conn.IsClosed() {
			err = m.conn.Close()
		}
		m.logger.Debug("RabbitMQ connection manager closed")
	})
	return err
}
