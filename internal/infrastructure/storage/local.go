package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"studio_api/internal/usecase/interfaces"
)

// LocalRoute is the URL prefix under which the HTTP layer serves LocalStore files.
const LocalRoute = "/files"

// LocalStore writes objects below baseDir. Public URLs point at LocalRoute.
type LocalStore struct {
	baseDir       string
	publicBaseURL string
}

var _ interfaces.IObjectStorage = (*LocalStore)(nil)

func NewLocalStore(baseDir, publicBaseURL string) *LocalStore {
	return &LocalStore{baseDir: baseDir, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (s *LocalStore) BaseDir() string { return s.baseDir }

func (s *LocalStore) Put(ctx context.Context, key string, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !validKey(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write body: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}
	return s.publicBaseURL + LocalRoute + "/" + key, nil
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validKey(key) {
		return nil, fmt.Errorf("invalid storage key %q", key)
	}
	return os.Open(filepath.Join(s.baseDir, filepath.FromSlash(key)))
}
