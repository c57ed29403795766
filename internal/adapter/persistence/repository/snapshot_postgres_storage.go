package repository

import (
	"context"
	"database/sql"
	"errors"

	"mecanica_goelzer/internal/usecase/interfaces"
)

const createSnapshotsTable = `CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	document JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// SnapshotPostgresStorage keeps the document in one jsonb row.
type SnapshotPostgresStorage struct {
	db  *sql.DB
	key string
}

var _ interfaces.ISnapshotStorage = (*SnapshotPostgresStorage)(nil)

// NewSnapshotPostgresStorage creates the snapshots table if needed.
func NewSnapshotPostgresStorage(ctx context.Context, db *sql.DB) (*SnapshotPostgresStorage, error) {
	if _, err := db.ExecContext(ctx, createSnapshotsTable); err != nil {
		return nil, err
	}
	return &SnapshotPostgresStorage{db: db, key: snapshotKey(defaultSnapshotKey)}, nil
}

func (s *SnapshotPostgresStorage) Load(ctx context.Context) ([]byte, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `SELECT document FROM snapshots WHERE id = $1`, s.key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *SnapshotPostgresStorage) Save(ctx context.Context, document []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, document, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		s.key, string(document),
	)
	return err
}
