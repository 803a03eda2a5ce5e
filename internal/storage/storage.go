// Package storage persists generated audio assets (voiceovers, music
// previews) and hands back the URL the editor streams them from.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage is the only interface handlers depend on. The implementation is
// chosen in main: local disk today, S3 when infra is ready.
type Storage interface {
	Save(r io.Reader, filename string, contentType string) (string, error)
}

// ── Local storage ─────────────────────────────────────────────────────────────

type LocalStorage struct {
	Dir     string
	BaseURL string // e.g. "http://localhost:8083"
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	os.MkdirAll(dir, 0755)
	return &LocalStorage{Dir: dir, BaseURL: baseURL}
}

// Save writes the asset under a fresh uuid filename. The original filename
// contributes only its extension, which rules out path traversal and
// collisions between projects.
func (s *LocalStorage) Save(r io.Reader, filename string, contentType string) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	path := filepath.Join(s.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write asset file: %w", err)
	}

	return fmt.Sprintf("%s/assets/%s", s.BaseURL, name), nil
}

// ── S3 storage stub ───────────────────────────────────────────────────────────

// S3Storage is wired when STORAGE_TYPE=s3; handlers require zero changes.
type S3Storage struct {
	Bucket string
	Region string
}

func NewS3Storage(bucket, region string) *S3Storage {
	return &S3Storage{Bucket: bucket, Region: region}
}

func (s *S3Storage) Save(r io.Reader, filename string, contentType string) (string, error) {
	return "", fmt.Errorf("S3 storage not yet configured - set STORAGE_TYPE=local or implement S3")
}
