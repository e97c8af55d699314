package services

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"atelie-backend/internal/errs"

	"go.uber.org/zap"
)

const MaxPhotoSize = 10 << 20

// Photo is an uploaded order-sheet picture.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StorageService validates order photos before handing them to blob storage.
type StorageService struct {
	storage PhotoStorage
	logger  *zap.Logger
}

func NewStorageService(storage PhotoStorage, logger *zap.Logger) *StorageService {
	return &StorageService{
		storage: storage,
		logger:  logger.Named("photos"),
	}
}

func (s *StorageService) Enabled() bool {
	return s != nil && s.storage != nil
}

// Validate checks size and image type and returns the content type to store
// the photo with. It does no I/O.
func (s *StorageService) Validate(photo *Photo) (string, error) {
	if len(photo.Data) == 0 || len(photo.Data) > MaxPhotoSize {
		return "", errs.InvalidPhoto()
	}

	contentType := photo.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(photo.Data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.InvalidPhoto()
	}
	return contentType, nil
}

// Upload stores the photo and returns its public URL.
func (s *StorageService) Upload(ctx context.Context, photo *Photo) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("photo storage is not configured")
	}
	contentType, err := s.Validate(photo)
	if err != nil {
		return "", err
	}

	url, err := s.storage.UploadOrderPhoto(ctx, filepath.Base(photo.Filename), photo.Data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	s.logger.Info("photo uploaded", zap.String("url", url), zap.Int("size", len(photo.Data)))
	return url, nil
}

// Remove deletes a photo by its public URL. Failures are logged only; a
// leftover blob never blocks the caller.
func (s *StorageService) Remove(ctx context.Context, publicURL string) {
	if !s.Enabled() || publicURL == "" {
		return
	}
	if err := s.storage.DeleteByPublicURL(ctx, publicURL); err != nil {
		s.logger.Warn("failed to remove photo", zap.String("url", publicURL), zap.Error(err))
	}
}
