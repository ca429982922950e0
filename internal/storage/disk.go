package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore persists raw upload bytes under a single directory. Each blob gets
// a fresh uuid-prefixed key, so uploads with the same client filename never
// collide and a filename containing path separators cannot escape the
// directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir failed: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes data and returns the storage key the blob lives under.
func (s *DiskStore) Save(filename string, data []byte) (string, error) {
	key := uuid.NewString() + "__" + filepath.Base(filename)
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("write blob failed: %w", err)
	}
	return key, nil
}

// Open returns the raw bytes stored under key.
func (s *DiskStore) Open(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil {
		return nil, fmt.Errorf("read blob failed: %w", err)
	}
	return data, nil
}
