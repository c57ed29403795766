package repository

import (
	"context"
	"errors"

	"mecanica_goelzer/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultSnapshotRedisKey = "mecanica:snapshot"

// SnapshotRedisStorage keeps the document under one Redis string key.
type SnapshotRedisStorage struct {
	client redis.Cmdable
	key    string
}

var _ interfaces.ISnapshotStorage = (*SnapshotRedisStorage)(nil)

func NewSnapshotRedisStorage(client redis.Cmdable) *SnapshotRedisStorage {
	return &SnapshotRedisStorage{
		client: client,
		key:    snapshotKey(defaultSnapshotRedisKey),
	}
}

func (s *SnapshotRedisStorage) Load(ctx context.Context) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *SnapshotRedisStorage) Save(ctx context.Context, document []byte) error {
	return s.client.Set(ctx, s.key, document, 0).Err()
}
