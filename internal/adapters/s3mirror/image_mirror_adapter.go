package s3mirror

import (
	"context"
	"errors"
	"fmt"
	"io"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const (
	defaultContentType = "image/jpeg"
	maxImageBytes      = 20 << 20
)

// S3ImageMirrorAdapter копирует обложки в бакет по ключу {purpose}/{id}.jpg.
type S3ImageMirrorAdapter struct {
	client     s3iface.S3API
	uploader   *s3manager.Uploader
	bucket     string
	httpClient *http.Client
}

func NewS3ImageMirrorAdapter(client s3iface.S3API, bucket string, httpClient *http.Client) (*S3ImageMirrorAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client cannot be nil")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &S3ImageMirrorAdapter{
		client:     client,
		uploader:   s3manager.NewUploaderWithClient(client),
		bucket:     bucket,
		httpClient: httpClient,
	}, nil
}

func (a *S3ImageMirrorAdapter) Exists(ctx context.Context, id string, purpose domain.Purpose) (bool, error) {
	key := domain.ImageObjectKey(purpose, id)
	_, err := a.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	return false, fmt.Errorf("%w: head %s: %v", domain.ErrImageMirror, key, err)
}

// Upload скачивает картинку по sourceURL и потоково кладет ее в бакет.
func (a *S3ImageMirrorAdapter) Upload(ctx context.Context, id string, purpose domain.Purpose, sourceURL string) error {
	key := domain.ImageObjectKey(purpose, id)
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "S3ImageMirrorAdapter",
		"key":       key,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request for %s: %v", domain.ErrImageMirror, sourceURL, err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: download %s: %v", domain.ErrImageMirror, sourceURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: download %s: status %d", domain.ErrImageMirror, sourceURL, resp.StatusCode)
	}
	if resp.ContentLength > maxImageBytes {
		return fmt.Errorf("%w: image %s is too large (%d bytes)", domain.ErrImageMirror, sourceURL, resp.ContentLength)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = defaultContentType
	}

	_, err = a.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        io.LimitReader(resp.Body, maxImageBytes),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", domain.ErrImageMirror, key, err)
	}
	logger.Debug("Image mirrored", port.Fields{"content_type": contentType})
	return nil
}

// SignedURL подписывает GET на объект локально, без обращения к S3.
func (a *S3ImageMirrorAdapter) SignedURL(ctx context.Context, id string, purpose domain.Purpose, ttl time.Duration) (string, error) {
	key := domain.ImageObjectKey(purpose, id)
	req, _ := a.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	req.SetContext(ctx)

	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("%w: presign %s: %v", domain.ErrImageMirror, key, err)
	}
	return url, nil
}
