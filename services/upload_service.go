package services

import (
	"CampusTour/storage"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

// UploadURLPrefix is the public path uploaded files are served under.
const UploadURLPrefix = "/uploads/"

// UploadService is the file intake for feedback images.
type UploadService struct {
	storage storage.Storage
	now     func() time.Time
}

func NewUploadService(s storage.Storage) *UploadService {
	return &UploadService{storage: s, now: time.Now}
}

// Save stores file as "<unix millis>-<original name>" and returns its public
// URL path. Files are stored as received, without type or size checks.
func (s *UploadService) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), cleanFilename(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, name, src); err != nil {
		return "", fmt.Errorf("store upload %s: %w", name, err)
	}
	return UploadURLPrefix + name, nil
}

// Discard removes a file previously returned by Save.
func (s *UploadService) Discard(ctx context.Context, url string) error {
	return s.storage.Delete(ctx, strings.TrimPrefix(url, UploadURLPrefix))
}

// Open returns the stored file called name.
func (s *UploadService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.storage.Open(ctx, name)
}

// cleanFilename keeps only the last path element of a client-supplied name.
func cleanFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == ".." || name == "" {
		return "upload"
	}
	return name
}
