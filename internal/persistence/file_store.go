package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore keeps each collection as a pretty-printed JSON array in
// <dir>/<collection>.json.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore returns a store rooted at dir. The directory is created lazily
// on first save.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger}
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads a collection file. A missing file is an empty collection.
func (s *FileStore) Load(_ context.Context, collection string) ([]json.RawMessage, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	records, err := decodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return records, nil
}

// Save writes the collection to a temp file and renames it over the old one.
func (s *FileStore) Save(_ context.Context, collection string, records []json.RawMessage) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", collection, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", collection, err)
	}
	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", collection, err)
	}

	s.logger.Debug("collection saved", zap.String("collection", collection), zap.Int("records", len(records)))
	return nil
}

// Ping checks that the data directory, if it exists, is a directory.
func (s *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}
