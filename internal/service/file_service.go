package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/pkg/storage"
)

const maxUploadSize = 25 << 20 // 25 MB

var blockedExtensions = map[string]bool{
	".exe": true,
	".bat": true,
	".cmd": true,
	".sh":  true,
	".php": true,
	".js":  true,
}

// FileService uploads files to object storage and returns durable
// references. Attachments on messages and documents on student or
// teacher records go through it.
type FileService interface {
	Upload(ctx context.Context, prefix string, file *multipart.FileHeader) (*domain.AttachmentRef, error)
	Delete(ctx context.Context, key string) error
}

type fileService struct {
	store *storage.S3Client
}

// NewFileService creates a new FileService
func NewFileService(store *storage.S3Client) FileService {
	return &fileService{store: store}
}

func (s *fileService) Upload(ctx context.Context, prefix string, file *multipart.FileHeader) (*domain.AttachmentRef, error) {
	if s.store == nil {
		return nil, fmt.Errorf("file storage is not configured")
	}
	if file.Size > maxUploadSize {
		return nil, fmt.Errorf("file exceeds the %dMB upload limit", maxUploadSize>>20)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if blockedExtensions[ext] {
		return nil, fmt.Errorf("file type %s is not allowed", ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.GenerateKey(prefix, file.Filename)
	result, err := s.store.Upload(ctx, key, src, contentType, file.Size)
	if err != nil {
		return nil, err
	}

	url := result.URL
	if result.CDNURL != "" {
		url = result.CDNURL
	}
	return &domain.AttachmentRef{
		FileName:    file.Filename,
		FileKey:     result.Key,
		FileURL:     url,
		ContentType: result.ContentType,
		Size:        result.Size,
	}, nil
}

func (s *fileService) Delete(ctx context.Context, key string) error {
	if s.store == nil {
		return nil
	}
	return s.store.Delete(ctx, key)
}
