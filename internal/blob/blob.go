// File path: internal/blob/blob.go

// Package blob stores uploaded evidence files in an S3-compatible bucket.
// Only the object bytes live here; descriptive metadata stays in the
// relational store.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/acambier/plume/internal/common"
)

// Config carries the S3 connection settings, normally sourced from the
// environment.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ConfigFromEnv reads the S3_* variables. An empty endpoint means blob
// storage is not configured; the caller decides whether that is fatal.
func ConfigFromEnv() Config {
	return Config{
		Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Bucket:    strings.TrimSpace(os.Getenv("S3_BUCKET")),
		UseSSL:    strings.EqualFold(os.Getenv("S3_USE_SSL"), "true"),
	}
}

// Store is a thin wrapper over the minio client scoped to one bucket. The
// bucket is created lazily on first write.
type Store struct {
	client *minio.Client
	bucket string

	ensureOnce sync.Once
	ensureErr  error
}

// New connects to the S3 endpoint described by cfg.
func New(cfg Config) (*Store, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("blob: endpoint required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("blob: bucket required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("blob: connect %s: %w", cfg.Endpoint, err)
	}
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	s.ensureOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.ensureErr = fmt.Errorf("blob: check bucket %s: %w", s.bucket, err)
			return
		}
		if exists {
			return
		}
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			s.ensureErr = fmt.Errorf("blob: create bucket %s: %w", s.bucket, err)
			return
		}
		common.Logger().Info("blob: bucket created", "bucket", s.bucket)
	})
	return s.ensureErr
}

// Put streams one object into the bucket under key.
func (s *Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("blob: put %s: %w", key, err)
	}
	return nil
}

// Get opens one stored object for reading. The caller closes the reader.
func (s *Store) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("blob: get %s: %w", key, err)
	}
	return obj, nil
}
