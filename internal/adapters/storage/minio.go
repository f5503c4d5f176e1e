package storage

import (
	"context"
	"fmt"
	"io"

	"lexportal_backend/platform/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOService implements StorageService using MinIO.
type MinIOService struct {
	client      *minio.Client
	maxFileSize int64
}

// NewMinIOService creates a new MinIO storage service.
func NewMinIOService(cfg config.MinIOConfig) (*MinIOService, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOService{
		client:      client,
		maxFileSize: cfg.GetMinIOMaxFileSize(),
	}, nil
}

// Compile-time check that MinIOService implements StorageService.
var _ StorageService = (*MinIOService)(nil)

// metaFileName is the user metadata key holding the original upload name.
// MinIO stores it as X-Amz-Meta-Filename and hands it back canonicalized.
const metaFileName = "Filename"

// EnsureBucketExists creates the bucket if it doesn't exist.
func (s *MinIOService) EnsureBucketExists(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	return nil
}

// Upload stores the object under the given key.
func (s *MinIOService) Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType, fileName string) error {
	if err := s.ValidateFileSize(size); err != nil {
		return err
	}

	opts := minio.PutObjectOptions{ContentType: contentType}
	if fileName != "" {
		opts.UserMetadata = map[string]string{metaFileName: fileName}
	}

	_, err := s.client.PutObject(ctx, bucket, key, reader, size, opts)
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return nil
}

// Download opens the object for streaming.
func (s *MinIOService) Download(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("failed to get object %s: %w", key, err)
	}

	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, ObjectInfo{}, fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	fileName := stat.UserMetadata[metaFileName]
	if fileName == "" {
		fileName = key
	}

	return obj, ObjectInfo{
		Key:         key,
		FileName:    fileName,
		ContentType: stat.ContentType,
		SizeBytes:   stat.Size,
	}, nil
}

// DeleteObject removes the object.
func (s *MinIOService) DeleteObject(ctx context.Context, bucket, key string) error {
	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// ValidateFileSize rejects files above the configured limit.
func (s *MinIOService) ValidateFileSize(sizeBytes int64) error {
	if s.maxFileSize > 0 && sizeBytes > s.maxFileSize {
		return fmt.Errorf("file size %d exceeds maximum of %d bytes", sizeBytes, s.maxFileSize)
	}
	return nil
}
