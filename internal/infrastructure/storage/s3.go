package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"studio_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store keeps objects in a bucket readable through publicBaseURL (a CDN or
// the bucket website endpoint).
type S3Store struct {
	client        s3API
	bucket        string
	prefix        string
	publicBaseURL string
	maxElapsed    time.Duration
	log           *zap.Logger
}

var _ interfaces.IObjectStorage = (*S3Store)(nil)

func NewS3Store(cfg aws.Config, bucket, prefix, publicBaseURL string, log *zap.Logger) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
	}
	return newS3Store(s3.NewFromConfig(cfg), bucket, prefix, publicBaseURL, log), nil
}

func newS3Store(client s3API, bucket, prefix, publicBaseURL string, log *zap.Logger) *S3Store {
	return &S3Store{
		client:        client,
		bucket:        bucket,
		prefix:        strings.Trim(prefix, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxElapsed:    30 * time.Second,
		log:           log.Named("storage.s3"),
	}
}

// Put buffers the body so transient S3 failures can be retried.
func (s *S3Store) Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	objectKey := s.objectKey(key)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = s.maxElapsed

	err = backoff.RetryNotify(
		func() error {
			_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:      aws.String(s.bucket),
				Key:         aws.String(objectKey),
				Body:        bytes.NewReader(body),
				ContentType: aws.String(contentType),
			})
			return err
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			s.log.Warn("put object failed, retrying",
				zap.String("key", objectKey),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return "", fmt.Errorf("s3 put object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return s.publicBaseURL + "/" + objectKey, nil
}

func (s *S3Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if !validKey(key) {
		return nil, fmt.Errorf("invalid storage key %q", key)
	}
	objectKey := s.objectKey(key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return out.Body, nil
}

func (s *S3Store) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}
