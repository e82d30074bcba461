package configs

import (
	"fmt"
	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type RESTConfig struct {
	Port           string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

type S3Config struct {
	Region          string
	Bucket          string
	Endpoint        string // пусто для AWS, иначе MinIO/LocalStack
	ForcePathStyle  bool
	AccessKeyID     string
	SecretAccessKey string
	SignedURLTTL    time.Duration
}

type UpstreamConfig struct {
	BaseURL             string
	APIKey              string
	APIHost             string
	LocationExternalIDs string
	Parallelism         int
	RandomDelay         time.Duration
	Timeout             time.Duration
}

type MongoConfig struct {
	Enabled    bool
	URI        string
	Database   string
	Collection string
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

type PipelineConfig struct {
	DefaultPageSize   int
	MirrorConcurrency int
	DedupBackfill     bool
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Rest         RESTConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	S3           S3Config
	Upstream     UpstreamConfig
	Mongo        MongoConfig
	RabbitMQ     RabbitMQConfig
	Pipeline     PipelineConfig
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env файл необязателен: в контейнере переменные приходят из окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: could not load .env file (path: %v): %v. Using process environment.\n", envPath, err)
	}

	cfg := &AppConfig{}
	cfg.AppName = getEnvAsString("APP_NAME", "listing-service")

	cfg.Rest.Port = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	cfg.Rest.RateLimitRPS = getEnvAsFloat("RATE_LIMIT_RPS", 10)
	cfg.Rest.RateLimitBurst = getEnvAsInt("RATE_LIMIT_BURST", 20)

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg.Redis.URL = getEnvAsString("REDIS_URL", "redis://localhost:6379/0")
	cfg.Redis.CacheTTL = getEnvAsDuration("CACHE_TTL", constants.DefaultCacheTTL)

	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	if cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required")
	}
	cfg.S3.Region = getEnvAsString("AWS_REGION", "us-east-1")
	cfg.S3.Endpoint = getEnvAsString("S3_ENDPOINT", "")
	cfg.S3.ForcePathStyle = getEnvAsBool("S3_FORCE_PATH_STYLE", cfg.S3.Endpoint != "")
	cfg.S3.AccessKeyID = getEnvAsString("AWS_ACCESS_KEY_ID", "")
	cfg.S3.SecretAccessKey = getEnvAsString("AWS_SECRET_ACCESS_KEY", "")
	cfg.S3.SignedURLTTL = getEnvAsDuration("S3_SIGNED_URL_TTL", constants.DefaultSignedURLTTL)

	cfg.Upstream.APIKey = os.Getenv("RAPIDAPI_KEY")
	if cfg.Upstream.APIKey == "" {
		return nil, fmt.Errorf("RAPIDAPI_KEY environment variable is required")
	}
	cfg.Upstream.APIHost = getEnvAsString("RAPIDAPI_HOST", "bayut.p.rapidapi.com")
	cfg.Upstream.BaseURL = getEnvAsString("UPSTREAM_BASE_URL", "https://"+cfg.Upstream.APIHost)
	cfg.Upstream.LocationExternalIDs = getEnvAsString("UPSTREAM_LOCATION_EXTERNAL_IDS", constants.DefaultLocationExternalIDs)
	cfg.Upstream.Parallelism = getEnvAsInt("UPSTREAM_PARALLELISM", 2)
	cfg.Upstream.RandomDelay = getEnvAsDuration("UPSTREAM_RANDOM_DELAY", 0)
	cfg.Upstream.Timeout = getEnvAsDuration("UPSTREAM_TIMEOUT", 15*time.Second)

	cfg.Mongo.Enabled = getEnvAsBool("MONGO_ENABLED", false)
	if cfg.Mongo.Enabled {
		cfg.Mongo.URI = os.Getenv("MONGO_URI")
		if cfg.Mongo.URI == "" {
			log.Println("WARNING: MONGO_ENABLED is true, but MONGO_URI is not set. Disabling page archive.")
			cfg.Mongo.Enabled = false
		}
		cfg.Mongo.Database = getEnvAsString("MONGO_DATABASE", "listings")
		cfg.Mongo.Collection = getEnvAsString("MONGO_COLLECTION", "upstream_pages")
	}

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL environment variable is required when RABBITMQ_ENABLED is true")
		}
	}

	cfg.Pipeline.DefaultPageSize = getEnvAsInt("ITEMS_PER_PAGE", domain.DefaultPageSize)
	if cfg.Pipeline.DefaultPageSize < 1 {
		log.Printf("Warning: ITEMS_PER_PAGE must be positive. Using default value: %d\n", domain.DefaultPageSize)
		cfg.Pipeline.DefaultPageSize = domain.DefaultPageSize
	}
	cfg.Pipeline.MirrorConcurrency = getEnvAsInt("MIRROR_CONCURRENCY", 4)
	if cfg.Pipeline.MirrorConcurrency < 1 {
		cfg.Pipeline.MirrorConcurrency = 1
	}
	cfg.Pipeline.DedupBackfill = getEnvAsBool("DEDUP_BACKFILL", true)

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as float: %v. Using default value: %g\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsDuration принимает "90s", "1h" или целое число секунд ("3600").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(valStr); err == nil {
		return time.Duration(seconds) * time.Second
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
