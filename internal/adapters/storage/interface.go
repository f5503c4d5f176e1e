// Package storage provides object storage for uploaded attachments.
package storage

import (
	"context"
	"io"
)

// ObjectInfo describes a stored object. FileName is the original upload
// name, carried in object metadata; it falls back to the key for objects
// stored without one.
type ObjectInfo struct {
	Key         string
	FileName    string
	ContentType string
	SizeBytes   int64
}

// StorageService abstracts the object store behind upload and download
// operations so handlers stay independent of the MinIO client.
type StorageService interface {
	// EnsureBucketExists creates the bucket if it does not exist yet.
	EnsureBucketExists(ctx context.Context, bucket string) error
	// Upload stores the object under the given key, keeping the original
	// file name as object metadata.
	Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType, fileName string) error
	// Download opens the object for streaming. The caller closes the reader.
	Download(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error)
	// DeleteObject removes the object.
	DeleteObject(ctx context.Context, bucket, key string) error
	// ValidateFileSize rejects files above the configured limit.
	ValidateFileSize(sizeBytes int64) error
}
