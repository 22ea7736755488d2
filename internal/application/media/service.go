// Package media stores issue photos and videos in object storage.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/id"
)

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type Service struct {
	store objectStore
}

func NewService(store objectStore) *Service {
	return &Service{store: store}
}

// UploadResult describes a stored media object.
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Upload stores an uploaded file under a fresh key, keeping the original
// file extension so the content remains identifiable.
func (s *Service) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*UploadResult, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !allowedExt(ext) {
		return nil, fmt.Errorf("unsupported media type %q: %w", ext, domain.ErrBadRequest)
	}
	key := id.New() + ext
	url, err := s.store.Upload(ctx, key, r, contentType)
	if err != nil {
		return nil, err
	}
	return &UploadResult{Key: key, URL: url}, nil
}

// Download streams a stored media object back to the caller.
func (s *Service) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.store.Download(ctx, key)
}

func allowedExt(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".mp4", ".mov":
		return true
	}
	return false
}
