package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"lexportal_backend/internal/adapters/storage"
	"lexportal_backend/platform/logger"
)

type fakeStorage struct {
	uploadedKey      string
	uploadedFileName string
	info             storage.ObjectInfo
}

func (f *fakeStorage) EnsureBucketExists(ctx context.Context, bucket string) error { return nil }

func (f *fakeStorage) Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType, fileName string) error {
	f.uploadedKey = key
	f.uploadedFileName = fileName
	return nil
}

func (f *fakeStorage) Download(ctx context.Context, bucket, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	return io.NopCloser(strings.NewReader("data")), f.info, nil
}

func (f *fakeStorage) DeleteObject(ctx context.Context, bucket, key string) error { return nil }

func (f *fakeStorage) ValidateFileSize(sizeBytes int64) error { return nil }

func multipartHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestUploadKeepsOriginalFileName(t *testing.T) {
	store := &fakeStorage{}
	svc := NewService(store, "uploads", logger.New("development"))
	svc.now = func() time.Time { return time.UnixMilli(1718000000000) }

	resp, err := svc.Upload(context.Background(), multipartHeader(t, "contract.pdf", "pdf bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.FileKey != "1718000000000_contract.pdf" {
		t.Errorf("unexpected key %q", resp.FileKey)
	}
	if store.uploadedFileName != "contract.pdf" {
		t.Errorf("stored file name %q, want the original name", store.uploadedFileName)
	}
	if resp.URL != "/api/v1/uploads/1718000000000_contract.pdf" {
		t.Errorf("unexpected url %q", resp.URL)
	}
}

func TestOpenCarriesFileName(t *testing.T) {
	store := &fakeStorage{info: storage.ObjectInfo{
		Key:         "1718000000000_contract.pdf",
		FileName:    "contract.pdf",
		ContentType: "application/pdf",
		SizeBytes:   9,
	}}
	svc := NewService(store, "uploads", logger.New("development"))

	reader, info, err := svc.Open(context.Background(), "1718000000000_contract.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reader.Close()

	if info.FileName != "contract.pdf" {
		t.Errorf("downloads should carry the original name, got %q", info.FileName)
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"contract.pdf", "contract.pdf"},
		{"my report 2025.docx", "my_report_2025.docx"},
		{"../../etc/passwd", "passwd"},
		{"weird<>|name?.txt", "weird___name_.txt"},
		{"", "file"},
		{"...", "file"},
		{"héllo.png", "h_llo.png"},
	}

	for _, tt := range tests {
		if got := sanitizeFileName(tt.in); got != tt.want {
			t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidKey(t *testing.T) {
	if !validKey("1718000000000_contract.pdf") {
		t.Error("expected timestamped key to be valid")
	}
	for _, key := range []string{"", "a/b", "..", "foo/../bar"} {
		if validKey(key) {
			t.Errorf("expected %q to be rejected", key)
		}
	}
}
