package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"lexportal_backend/internal/adapters/storage"
	"lexportal_backend/internal/uploads/transport"
	"lexportal_backend/platform/apperr"
	"lexportal_backend/platform/logger"
)

type Service struct {
	storage storage.StorageService
	bucket  string
	log     *logger.Logger
	now     func() time.Time
}

func NewService(store storage.StorageService, bucket string, log *logger.Logger) *Service {
	return &Service{storage: store, bucket: bucket, log: log, now: time.Now}
}

// Upload stores a multipart file in the bucket under a timestamped key and
// returns the metadata callers attach to comments.
func (s *Service) Upload(ctx context.Context, header *multipart.FileHeader) (transport.UploadResponse, error) {
	const op = "uploads.service.Upload"

	if err := s.storage.ValidateFileSize(header.Size); err != nil {
		return transport.UploadResponse{}, err
	}

	file, err := header.Open()
	if err != nil {
		return transport.UploadResponse{}, apperr.Wrap(apperr.KindBadRequest, "could not read uploaded file", err).WithOp(op)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fileName := sanitizeFileName(header.Filename)
	key := fmt.Sprintf("%d_%s", s.now().UnixMilli(), fileName)

	if err := s.storage.Upload(ctx, s.bucket, key, file, header.Size, contentType, fileName); err != nil {
		return transport.UploadResponse{}, apperr.Wrap(apperr.KindInternal, "could not store file", err).WithOp(op)
	}

	s.log.InfoContext(ctx, "file uploaded", "key", key, "size_bytes", header.Size)
	return transport.UploadResponse{
		FileKey:     key,
		FileName:    header.Filename,
		URL:         "/api/v1/uploads/" + key,
		ContentType: contentType,
		SizeBytes:   header.Size,
	}, nil
}

// Open streams a previously uploaded object. The caller closes the reader.
func (s *Service) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	const op = "uploads.service.Open"

	if !validKey(key) {
		return nil, storage.ObjectInfo{}, apperr.BadRequest("invalid file key").WithOp(op)
	}
	return s.storage.Download(ctx, s.bucket, key)
}

// sanitizeFileName strips path components and replaces characters that are
// unsafe in object keys or Content-Disposition headers.
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "file"
	}
	return out
}

func validKey(key string) bool {
	return key != "" && !strings.Contains(key, "/") && !strings.Contains(key, "..")
}
