package infra

import (
	"context"
	"fmt"
	"math/rand/v2"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/feedhub/feedhub-service/config"
)

// Only images and videos are accepted; everything else rejects the whole
// request before any storage write.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/jpg":       true,
	"video/mp4":       true,
	"video/quicktime": true,
}

// MediaDescriptor is the stable reference Media Intake hands to the listing
// store: a public URL plus the coarse media kind.
type MediaDescriptor struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
}

type UploadService struct {
	Minio       *MinioClient
	Bucket      string
	MaxFiles    int
	MaxFileSize int64
}

func InitUploadService(cfg *config.EnvConfig, minio *MinioClient) *UploadService {
	if minio == nil {
		panic("Upload service requires a MinIO client")
	}
	return &UploadService{
		Minio:       minio,
		Bucket:      cfg.Minio.UploadBucket,
		MaxFiles:    cfg.Upload.MaxFiles,
		MaxFileSize: cfg.Upload.MaxFileSize,
	}
}

// ValidateFiles checks the whole batch before anything is written. A single
// bad file fails the request.
func (s *UploadService) ValidateFiles(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return fmt.Errorf("at least one media file is required")
	}
	if len(files) > s.MaxFiles {
		return fmt.Errorf("too many files: at most %d allowed", s.MaxFiles)
	}
	for _, file := range files {
		contentType := file.Header.Get("Content-Type")
		if !allowedContentTypes[contentType] {
			return fmt.Errorf("unsupported file type %q for %q", contentType, file.Filename)
		}
		if file.Size > s.MaxFileSize {
			return fmt.Errorf("file %q exceeds the %d byte limit", file.Filename, s.MaxFileSize)
		}
	}
	return nil
}

// StoreFiles persists the already-validated batch and returns one descriptor
// per file. Any storage failure aborts and deletes what was written so far.
func (s *UploadService) StoreFiles(ctx context.Context, files []*multipart.FileHeader) ([]MediaDescriptor, error) {
	descriptors := make([]MediaDescriptor, 0, len(files))

	for _, file := range files {
		contentType := file.Header.Get("Content-Type")
		name := GenerateObjectName(file.Filename)

		src, err := file.Open()
		if err != nil {
			_ = s.RemoveFiles(ctx, descriptors)
			return nil, fmt.Errorf("failed to open upload %q: %w", file.Filename, err)
		}

		err = s.Minio.PutObject(ctx, s.Bucket, name, src, file.Size, contentType)
		_ = src.Close()
		if err != nil {
			_ = s.RemoveFiles(ctx, descriptors)
			return nil, err
		}

		descriptors = append(descriptors, MediaDescriptor{
			ObjectName: name,
			URL:        "/uploads/" + name,
			Type:       MediaTypeFor(contentType),
		})
	}

	return descriptors, nil
}

// RemoveFiles is the compensating cleanup after a failed creation
// transaction. Best effort: the first storage error is returned but the
// remaining objects are still attempted.
func (s *UploadService) RemoveFiles(ctx context.Context, descriptors []MediaDescriptor) error {
	var firstErr error
	for _, d := range descriptors {
		if err := s.Minio.RemoveObject(ctx, s.Bucket, d.ObjectName); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// MediaTypeFor derives the coarse media kind from the declared content type.
// Never client-asserted.
func MediaTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}
	return "image"
}

// GenerateObjectName builds a collision-resistant object name: time-based
// prefix plus random suffix, original extension preserved.
func GenerateObjectName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("media-%d-%09d%s", time.Now().UnixNano(), rand.IntN(1_000_000_000), ext)
}
