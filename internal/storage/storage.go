// Package storage keeps uploaded images on the local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gradevo/gradevo-api/internal/logger"
)

// PublicPrefix is the URL path the uploads directory is served under.
const PublicPrefix = "/uploads"

// LocalFileStore writes uploads into a single flat directory.
type LocalFileStore struct {
	dir string
}

// NewLocalFileStore creates dir when it does not exist yet.
func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalFileStore{dir: dir}, nil
}

// Dir is the directory files are written to.
func (s *LocalFileStore) Dir() string {
	return s.dir
}

// Save stores the content under a fresh unique name that keeps the original file
// extension and returns the public path of the file, e.g. /uploads/<uuid>.png.
func (s *LocalFileStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + cleanExt(filename)
	dst := filepath.Join(s.dir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(f, content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	publicPath := path.Join(PublicPrefix, name)
	logger.Log.Infow("upload stored", "original", filename, "path", publicPath, "bytes", n)

	return publicPath, nil
}

// cleanExt returns the lowercased extension of filename when it is short and
// alphanumeric, otherwise an empty string.
func cleanExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
