package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds object storage settings
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, for S3-compatible stores
	PublicURL string // base URL for served objects, defaults to the bucket endpoint
}

// S3Storage implements ObjectStorage on top of AWS S3 or any
// S3-compatible store
type S3Storage struct {
	client   *s3.Client
	uploader *manager.Uploader
	config   *S3Config
}

// NewS3Storage creates an S3-backed ObjectStorage using the default
// AWS credential chain
func NewS3Storage(ctx context.Context, cfg *S3Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:   client,
		uploader: manager.NewUploader(client),
		config:   cfg,
	}, nil
}

// Upload stores an object and returns its public URL
func (s *S3Storage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return s.publicURL(key), nil
}

// Delete removes an object. Deleting a missing key is not an error.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) publicURL(key string) string {
	base := s.config.PublicURL
	if base == "" {
		if s.config.Endpoint != "" {
			base = fmt.Sprintf("%s/%s", strings.TrimSuffix(s.config.Endpoint, "/"), s.config.Bucket)
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.config.Bucket, s.config.Region)
		}
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), key)
}
