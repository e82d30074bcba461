package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"listing-service/internal/adapters/bayutfetcher"
	logger_adapter "listing-service/internal/adapters/logger"
	mongo_adapter "listing-service/internal/adapters/mongo"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	redis_adapter "listing-service/internal/adapters/redis"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/adapters/s3mirror"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/contracts"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/pkg/awss3"
	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/mongodb"
	"listing-service/pkg/postgres"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_consumer"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"
	redisclient "listing-service/pkg/redis"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	redisClient  *goredis.Client
	mongoClient  *mongo.Client
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	connManager          *rabbitmq_common.ConnectionManager
	eventsProducer       *rabbitmq_producer.Publisher
	invalidationListener port.EventListenerPort

	// закрываются в обратном порядке при ошибке инициализации
	closers []func()
}

func (a *App) closeAll() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// NewApp - composition root: здесь создаются и связываются все зависимости.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}
	app := &App{config: appConfig}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if appConfig.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
			Timeout:   3 * time.Second,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, err
		}
		app.fluentClient = fluentClient
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}
	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger = appLogger
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	fail := func(msg string, err error) (*App, error) {
		appLogger.Error(msg, err, nil)
		app.closeAll()
		if app.fluentClient != nil {
			_ = app.fluentClient.Close()
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()

	// --- 2. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	dbPool, err := postgres.NewClient(initCtx, postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		return fail("Failed to connect to PostgreSQL", err)
	}
	app.dbPool = dbPool
	app.closers = append(app.closers, dbPool.Close)
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	storageAdapter, err := postgres_adapter.NewPostgresListingStorageAdapter(dbPool)
	if err != nil {
		return fail("Failed to create postgres storage adapter", err)
	}

	redisClient, err := redisclient.NewClient(redisclient.Config{
		URL:          appConfig.Redis.URL,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err != nil {
		return fail("Failed to create redis client", err)
	}
	app.redisClient = redisClient
	app.closers = append(app.closers, func() { _ = redisClient.Close() })

	cacheAdapter, err := redis_adapter.NewRedisPaginationCacheAdapter(redisClient)
	if err != nil {
		return fail("Failed to create pagination cache adapter", err)
	}
	if !cacheAdapter.HealthCheck(initCtx) {
		appLogger.Warn("Redis is not reachable at startup, pages will be served without cache", nil)
	}

	s3Client, _, err := awss3.NewClient(awss3.Config{
		Region:          appConfig.S3.Region,
		Endpoint:        appConfig.S3.Endpoint,
		ForcePathStyle:  appConfig.S3.ForcePathStyle,
		AccessKeyID:     appConfig.S3.AccessKeyID,
		SecretAccessKey: appConfig.S3.SecretAccessKey,
		MaxRetries:      3,
	})
	if err != nil {
		return fail("Failed to create S3 client", err)
	}
	mirrorAdapter, err := s3mirror.NewS3ImageMirrorAdapter(s3Client, appConfig.S3.Bucket, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		return fail("Failed to create image mirror adapter", err)
	}

	upstreamAdapter, err := bayutfetcher.NewBayutFetcherAdapter(bayutfetcher.Config{
		BaseURL:             appConfig.Upstream.BaseURL,
		APIKey:              appConfig.Upstream.APIKey,
		APIHost:             appConfig.Upstream.APIHost,
		LocationExternalIDs: appConfig.Upstream.LocationExternalIDs,
		Parallelism:         appConfig.Upstream.Parallelism,
		RandomDelay:         appConfig.Upstream.RandomDelay,
		Timeout:             appConfig.Upstream.Timeout,
	})
	if err != nil {
		return fail("Failed to create upstream fetcher", err)
	}

	registry, err := contracts.NewRegistry()
	if err != nil {
		return fail("Failed to compile JSON schemas", err)
	}
	validator, err := contracts.NewListingValidator(registry)
	if err != nil {
		return fail("Failed to create listing validator", err)
	}

	deps := usecase.PropertyHandlerDeps{
		Store:     storageAdapter,
		Cache:     cacheAdapter,
		Mirror:    mirrorAdapter,
		Upstream:  upstreamAdapter,
		Validator: validator,
	}

	if appConfig.Mongo.Enabled {
		mongoClient, err := mongodb.NewClient(initCtx, mongodb.Config{URI: appConfig.Mongo.URI})
		if err != nil {
			return fail("Failed to connect to MongoDB", err)
		}
		app.mongoClient = mongoClient
		app.closers = append(app.closers, func() { _ = mongoClient.Disconnect(context.Background()) })

		archiveAdapter, err := mongo_adapter.NewMongoPageArchiveAdapter(mongoClient.Database(appConfig.Mongo.Database), appConfig.Mongo.Collection)
		if err != nil {
			return fail("Failed to create page archive adapter", err)
		}
		deps.Archive = archiveAdapter
		appLogger.Info("Upstream page archive enabled.", nil)
	}

	if appConfig.RabbitMQ.Enabled {
		rabbitCfg := rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL}
		connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
		connManager, err := rabbitmq_common.NewConnectionManager(rabbitCfg, connManagerBridge)
		if err != nil {
			return fail("Failed to create connection manager", err)
		}
		app.connManager = connManager
		app.closers = append(app.closers, func() { _ = connManager.Close() })

		eventsProducer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitCfg,
			ExchangeName:             constants.ListingsExchange,
			ExchangeType:             "topic",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
		}, connManager)
		if err != nil {
			return fail("Failed to create event producer", err)
		}
		app.eventsProducer = eventsProducer
		app.closers = append(app.closers, func() { _ = eventsProducer.Close() })

		eventsAdapter, err := rabbitmq_adapter.NewBackfillEventsAdapter(eventsProducer, constants.RoutingKeyListingsBackfilled)
		if err != nil {
			return fail("Failed to create backfill events adapter", err)
		}
		deps.Events = eventsAdapter
		appLogger.Info("RabbitMQ Event Producer initialized.", nil)
	}

	// --- 3. USE CASES ---
	propertyHandlerUC, err := usecase.NewPropertyHandlerUseCase(deps, usecase.PropertyHandlerConfig{
		CacheTTL:          appConfig.Redis.CacheTTL,
		SignedURLTTL:      appConfig.S3.SignedURLTTL,
		MirrorConcurrency: appConfig.Pipeline.MirrorConcurrency,
		DedupBackfill:     appConfig.Pipeline.DedupBackfill,
	})
	if err != nil {
		return fail("Failed to create property handler use case", err)
	}
	findListingsUC := usecase.NewFindListingsUseCase(storageAdapter, mirrorAdapter, appConfig.S3.SignedURLTTL)
	appLogger.Info("All use cases initialized.", nil)

	// --- 4. ВХОДЯЩИЕ АДАПТЕРЫ ---
	if appConfig.RabbitMQ.Enabled {
		listener, err := rabbitmq_adapter.NewCacheInvalidationConsumerAdapter(rabbitmq_consumer.ConsumerConfig{
			Config:                 rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			QueueName:              constants.QueueCacheInvalidation,
			DeclareQueue:           true,
			DurableQueue:           true,
			ExchangeNameForBind:    constants.ListingsExchange,
			ExchangeTypeForBind:    "topic",
			DeclareExchangeForBind: true,
			DurableExchangeForBind: true,
			RoutingKeyForBind:      constants.RoutingKeyCacheInvalidation,
			PrefetchCount:          4,
			ConsumerTag:            "cache-invalidation-adapter",

			EnableRetryMechanism: true,
			RetryExchange:        constants.QueueCacheInvalidation + "_retry_ex",
			RetryQueue:           constants.QueueCacheInvalidation + "_retry_wait_5s",
			RetryTTL:             5000,
			FinalDLXExchange:     constants.FinalDLXExchange,
			FinalDLQ:             constants.FinalDLQ,
			FinalDLQRoutingKey:   constants.FinalDLQRoutingKey,
			MaxRetries:           3,
		}, propertyHandlerUC, registry, baseLogger, app.connManager)
		if err != nil {
			return fail("Failed to create cache invalidation listener", err)
		}
		app.invalidationListener = listener
		appLogger.Info("Cache invalidation listener initialized.", nil)
	}

	handler := rest.NewPropertyHandler(propertyHandlerUC, findListingsUC, appConfig.Pipeline.DefaultPageSize)
	app.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.Port,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
		RateLimitRPS:   appConfig.Rest.RateLimitRPS,
		RateLimitBurst: appConfig.Rest.RateLimitBurst,
	}, handler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return app, nil
}

// Run запускает компоненты и ждет сигнала завершения.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	var wg sync.WaitGroup
	errorsCh := make(chan error, 2)

	if a.invalidationListener != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listenerLogger := a.logger.WithFields(port.Fields{"listener_name": "Cache Invalidation Listener"})
			listenerLogger.Info("Starting listener...", nil)
			if err := a.invalidationListener.Start(appCtx); err != nil {
				listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
				errorsCh <- fmt.Errorf("cache invalidation listener: %w", err)
				return
			}
			listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
		}()
	}

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	cancelApp()
	wg.Wait()

	if a.invalidationListener != nil {
		if err := a.invalidationListener.Close(); err != nil {
			a.logger.Error("Error closing cache invalidation listener", err, nil)
		}
	}
	a.closeAll()
	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
	return runErr
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
