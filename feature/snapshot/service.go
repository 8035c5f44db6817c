package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"asset-indexer/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ContentType is set on every uploaded index file.
const ContentType = "application/vnd.sqlite3"

// Info describes a published snapshot.
type Info struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Size   int64  `json:"size"`
	ETag   string `json:"etag"`
}

// Service publishes index files to object storage and fetches them back.
type Service struct {
	client storage.Client
	bucket string
	region string
	prefix string
	logger *zap.Logger
}

// NewService creates a new snapshot service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: cfg.Prefix,
		logger: logger,
	}
}

// Key returns the object key a file is published under.
func (s *Service) Key(file string) string {
	return path.Join(s.prefix, filepath.Base(file))
}

// Publish uploads file, creating the bucket when it does not exist yet.
func (s *Service) Publish(ctx context.Context, file string) (*Info, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open index file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat index file: %w", err)
	}

	key := s.Key(file)
	upload, err := s.client.PutObject(ctx, s.bucket, key, f, stat.Size(), minio.PutObjectOptions{ContentType: ContentType})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Info("Published index snapshot",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int64("size", stat.Size()))

	return &Info{Bucket: s.bucket, Key: key, Size: stat.Size(), ETag: upload.ETag}, nil
}

// Fetch downloads the snapshot named after dest and writes it to dest.
// dest is replaced only once the download has completed.
func (s *Service) Fetch(ctx context.Context, dest string) (int64, error) {
	key := s.Key(dest)
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to download %s: %w", key, err)
	}
	defer obj.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, obj)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("failed to download %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return 0, fmt.Errorf("failed to replace index file: %w", err)
	}

	s.logger.Info("Fetched index snapshot", zap.String("key", key), zap.Int64("size", n))
	return n, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	return nil
}
