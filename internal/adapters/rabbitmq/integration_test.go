//go:build integration

package rabbitmq

import (
	"context"
	"testing"
	"time"

	"listing-service/internal/constants"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port/usecases_port/mocks"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_consumer"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	tcrabbitmq "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"go.uber.org/mock/gomock"
)

type RabbitIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcrabbitmq.RabbitMQContainer
	cfg       rabbitmq_common.Config
	conn      *rabbitmq_common.ConnectionManager
}

func (s *RabbitIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcrabbitmq.Run(s.ctx, "rabbitmq:3.13-management-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.cfg = rabbitmq_common.Config{URL: url}

	s.conn, err = rabbitmq_common.NewConnectionManager(s.cfg, NewPkgLoggerBridge(quietLogger()))
	s.Require().NoError(err)
}

func (s *RabbitIntegrationSuite) TearDownSuite() {
	if s.conn != nil {
		_ = s.conn.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RabbitIntegrationSuite) TestInvalidationCommandRoundTrip() {
	ctrl := gomock.NewController(s.T())
	uc := mocks.NewMockPropertyHandlerPort(ctrl)
	registry, err := contracts.NewRegistry()
	s.Require().NoError(err)

	done := make(chan struct{})
	uc.EXPECT().
		InvalidateCache(gomock.Any(), domain.PurposeRent, gomock.Any()).
		Do(func(context.Context, domain.Purpose, *int) { close(done) })

	adapter, err := NewCacheInvalidationConsumerAdapter(rabbitmq_consumer.ConsumerConfig{
		Config:                 s.cfg,
		QueueName:              constants.QueueCacheInvalidation,
		DeclareQueue:           true,
		DurableQueue:           true,
		ExchangeNameForBind:    constants.ListingsExchange,
		ExchangeTypeForBind:    "topic",
		DeclareExchangeForBind: true,
		DurableExchangeForBind: true,
		RoutingKeyForBind:      constants.RoutingKeyCacheInvalidation,
		PrefetchCount:          4,
		ConsumerTag:            "it-invalidation",
	}, uc, registry, quietLogger(), s.conn)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go func() { _ = adapter.Start(ctx) }()

	publisher, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:       s.cfg,
		ExchangeName: constants.ListingsExchange,
	}, s.conn)
	s.Require().NoError(err)
	defer publisher.Close()

	err = publisher.Publish(ctx, constants.RoutingKeyCacheInvalidation, amqp.Publishing{
		ContentType: "application/json",
		Body:        []byte(`{"purpose":"for-rent","page":2}`),
	})
	s.Require().NoError(err)

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		s.Fail("invalidation command was not consumed")
	}
	cancel()
	s.NoError(adapter.Close())
}

func TestRabbitIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitIntegrationSuite))
}
