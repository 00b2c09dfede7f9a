package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/storefrontlabs/storefront-backend/pkg/config"
	"github.com/storefrontlabs/storefront-backend/pkg/logger"
)

// allowed image extensions, lowercased
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// LocalStore persists product images on the local filesystem and serves them
// under a public base URL. Object names are generated, never caller supplied,
// so path traversal is not a concern past extension validation.
type LocalStore struct {
	root          string
	publicBaseURL string
	maxBytes      int64
}

func NewLocalStore(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*LocalStore, error) {
	if cfg.ProductImageDir == "" {
		return nil, errors.New("product image dir is required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("public base url is required")
	}

	if err := os.MkdirAll(cfg.ProductImageDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image dir %q: %w", cfg.ProductImageDir, err)
	}

	store := &LocalStore{
		root:          cfg.ProductImageDir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:      int64(cfg.MaxUploadMB) << 20,
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "dir", cfg.ProductImageDir), "local image store initialized")
	}
	return store, nil
}

// MaxBytes reports the configured upload cap in bytes.
func (s *LocalStore) MaxBytes() int64 {
	return s.maxBytes
}

// Save writes the image body to disk under a generated name and returns the
// object name. The original filename only contributes its extension.
func (s *LocalStore) Save(ctx context.Context, originalName string, body io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	object := uuid.New().String() + ext
	dst := filepath.Join(s.root, object)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}

	reader := io.Reader(body)
	if s.maxBytes > 0 {
		reader = io.LimitReader(body, s.maxBytes+1)
	}

	written, err := io.Copy(f, reader)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("writing image file: %w", err)
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		_ = os.Remove(dst)
		return "", fmt.Errorf("image exceeds %d byte limit", s.maxBytes)
	}

	return object, nil
}

// Delete removes a stored object. A missing object is not an error so that
// replace and cleanup flows stay idempotent.
func (s *LocalStore) Delete(ctx context.Context, object string) error {
	if object == "" {
		return nil
	}
	// object names are generated uuids; reject anything that left that shape
	if object != filepath.Base(object) {
		return fmt.Errorf("invalid object name %q", object)
	}
	err := os.Remove(filepath.Join(s.root, object))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing image file: %w", err)
	}
	return nil
}

// PublicURL returns the externally reachable URL for a stored object.
func (s *LocalStore) PublicURL(object string) string {
	return s.publicBaseURL + "/" + path.Join("images", "products", url.PathEscape(object))
}

// ObjectFromURL extracts the object name from a URL previously produced by
// PublicURL. It returns an empty string when the URL is not one of ours.
func (s *LocalStore) ObjectFromURL(imageURL string) string {
	if imageURL == "" || !strings.HasPrefix(imageURL, s.publicBaseURL+"/") {
		return ""
	}
	object := path.Base(imageURL)
	unescaped, err := url.PathUnescape(object)
	if err != nil {
		return ""
	}
	return unescaped
}
