package awss3

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Config struct {
	Region string
	// Endpoint задается для MinIO/LocalStack, пусто для AWS
	Endpoint       string
	ForcePathStyle bool
	// Пустые ключи - стандартная цепочка провайдеров (env, профиль, IAM роль)
	AccessKeyID     string
	SecretAccessKey string
	MaxRetries      int
}

// NewClient создает S3 клиент на общей AWS сессии.
func NewClient(cfg Config) (*s3.S3, *session.Session, error) {
	if cfg.Region == "" {
		return nil, nil, fmt.Errorf("AWS region is required")
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(cfg.ForcePathStyle),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.MaxRetries > 0 {
		awsConfig.MaxRetries = aws.Int(cfg.MaxRetries)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return s3.New(sess), sess, nil
}
