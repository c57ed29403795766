package routes

import (
	"context"
	"fmt"
	"strings"

	"mecanica_goelzer/internal/adapter/persistence/repository"
	"mecanica_goelzer/internal/infrastructure/database"
	"mecanica_goelzer/internal/usecase/interfaces"
	"mecanica_goelzer/pkg/logger"

	"go.uber.org/zap"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	StorageFile     = "file"
	StorageDynamoDB = "dynamodb"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// newSnapshotStorage builds the snapshot storage and a func releasing its
// connections.
func newSnapshotStorage(ctx context.Context, backend string) (interfaces.ISnapshotStorage, func(), error) {
	noop := func() {}
	backend = strings.ToLower(strings.TrimSpace(backend))
	logger.Log.Info("[storage][routes] selecting snapshot storage", zap.String("backend", backend))

	switch backend {
	case "", StorageFile:
		s := repository.NewSnapshotFileStorage(getenvDefault("DATA_FILE", "data.json"))
		logger.Log.Info("[storage][routes] using file storage", zap.String("path", s.Path()))
		return s, noop, nil

	case StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, noop, fmt.Errorf("connecting dynamodb: %w", err)
		}
		s := repository.NewSnapshotDynamoStorage(ddb)
		if database.IsLocalDynamoDB() {
			if err := database.EnsureSnapshotTable(ctx, ddb, s.TableName()); err != nil {
				return nil, noop, fmt.Errorf("preparing snapshot table: %w", err)
			}
		}
		return s, noop, nil

	case StorageRedis:
		client, err := database.ConnectRedis(ctx)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewSnapshotRedisStorage(client), func() { _ = client.Close() }, nil

	case StoragePostgres:
		db, err := database.ConnectPostgres(ctx)
		if err != nil {
			return nil, noop, err
		}
		s, err := repository.NewSnapshotPostgresStorage(ctx, db)
		if err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("preparing snapshots table: %w", err)
		}
		return s, func() { _ = db.Close() }, nil

	case StorageMongo:
		client, db, err := database.ConnectMongo(ctx)
		if err != nil {
			return nil, noop, fmt.Errorf("connecting mongo: %w", err)
		}
		return repository.NewSnapshotMongoStorage(db), func() { _ = client.Disconnect(context.Background()) }, nil

	default:
		return nil, noop, fmt.Errorf("unsupported STORAGE_BACKEND %q", backend)
	}
}
