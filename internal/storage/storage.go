package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is a small on-disk key-value capability. Values are JSON blobs.
type Store interface {
	Get(key string) (json.RawMessage, bool, error)
	Put(key string, value any) error
	Clear() error
}

// FileStore keeps the whole store as one JSON object in a single file.
// Writes go through a read-modify-write of the full file; a missing or
// corrupt file is treated as an empty store, never as an error.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultCachePath returns the location cache file under the user cache dir.
func DefaultCachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine cache dir: %w", err)
	}
	return filepath.Join(dir, "wthr", "locations.json"), nil
}

func (s *FileStore) Get(key string) (json.RawMessage, bool, error) {
	data, err := s.read()
	if err != nil {
		return nil, false, err
	}
	raw, ok := data[key]
	return raw, ok, nil
}

func (s *FileStore) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	data, err := s.read()
	if err != nil {
		return err
	}
	data[key] = raw

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		// Corrupt store files start over empty.
		return map[string]json.RawMessage{}, nil
	}
	return data, nil
}
