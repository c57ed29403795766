package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mecanica_goelzer/internal/usecase/interfaces"
)

const defaultDataFile = "data.json"

// SnapshotFileStorage keeps the document in a local JSON file. Writes go to a
// temp file in the same directory and are renamed over the target.
type SnapshotFileStorage struct {
	path string
}

var _ interfaces.ISnapshotStorage = (*SnapshotFileStorage)(nil)

func NewSnapshotFileStorage(path string) *SnapshotFileStorage {
	if path == "" {
		path = getenvDefault("DATA_FILE", defaultDataFile)
	}
	return &SnapshotFileStorage{path: path}
}

func (s *SnapshotFileStorage) Path() string { return s.path }

func (s *SnapshotFileStorage) Load(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *SnapshotFileStorage) Save(_ context.Context, document []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}
