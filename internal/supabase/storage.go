package supabase

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewStorageClient(supabaseURL, key, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimRight(supabaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is required for storage")
	}
	client := storage.NewClient(baseURL+"/storage/v1", key, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
		now:     time.Now,
	}, nil
}

// PhotoPath builds servicos/{yyyy}/{mm}/{uuid}{ext}. The random name keeps two
// photos with the same original filename from overwriting each other.
func PhotoPath(filename, contentType string, at time.Time) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		if contentType == "image/jpeg" {
			ext = ".jpg"
		} else if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	return fmt.Sprintf("servicos/%04d/%02d/%s%s", at.Year(), int(at.Month()), uuid.New().String(), ext)
}

func (s *StorageClient) UploadOrderPhoto(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	storagePath := PhotoPath(filename, contentType, s.now())
	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

// PathFromPublicURL recovers the object path from a URL built by
// GetPublicURL. ok is false for URLs from another bucket or host.
func (s *StorageClient) PathFromPublicURL(publicURL string) (string, bool) {
	prefix := s.GetPublicURL("")
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	storagePath := strings.TrimPrefix(publicURL, prefix)
	if i := strings.IndexAny(storagePath, "?#"); i >= 0 {
		storagePath = storagePath[:i]
	}
	return storagePath, storagePath != ""
}

func (s *StorageClient) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	storagePath, ok := s.PathFromPublicURL(publicURL)
	if !ok {
		return fmt.Errorf("url %q is not in bucket %s", publicURL, s.bucket)
	}
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}
