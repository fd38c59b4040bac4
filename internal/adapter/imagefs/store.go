// Package imagefs stores uploaded images on the local filesystem. Paths
// returned to callers are relative to the store root so the serving layer
// can remap them freely.
package imagefs

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// Store writes base64-encoded images under a root directory.
type Store struct {
	dir      string
	maxBytes int64
	log      *slog.Logger
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, maxBytes int64, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Store{
		dir:      dir,
		maxBytes: maxBytes,
		log:      logger.With("adapter", "imagefs"),
	}, nil
}

// Upload decodes the base64 payload and writes it under a fresh uuid name.
// Accepts both raw base64 and data URLs ("data:image/png;base64,...").
func (s *Store) Upload(ctx context.Context, encoded string) (string, error) {
	ext := ".png"
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
		if e := extensionFromMediaType(encoded[:idx]); e != "" {
			ext = e
		}
		encoded = encoded[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domain.NewValidationError("image", "invalid base64 payload")
	}
	if int64(len(data)) > s.maxBytes {
		return "", domain.NewValidationError("image", fmt.Sprintf("image exceeds %d bytes", s.maxBytes))
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	s.log.DebugContext(ctx, "image stored",
		slog.String("name", name),
		slog.Int("bytes", len(data)),
	)

	return name, nil
}

// Remove deletes a stored image. A missing file is not an error: removal is
// cleanup, not bookkeeping.
func (s *Store) Remove(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

func extensionFromMediaType(prefix string) string {
	switch {
	case strings.Contains(prefix, "image/jpeg"):
		return ".jpg"
	case strings.Contains(prefix, "image/png"):
		return ".png"
	case strings.Contains(prefix, "image/webp"):
		return ".webp"
	default:
		return ""
	}
}
