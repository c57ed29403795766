package repository

import (
	"context"
	"errors"
	"time"

	"mecanica_goelzer/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotsCollection = "snapshots"

type snapshotDocument struct {
	ID        string    `bson:"_id"`
	Document  string    `bson:"document"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// SnapshotMongoStorage keeps the document in one MongoDB document.
type SnapshotMongoStorage struct {
	coll *mongo.Collection
	key  string
}

var _ interfaces.ISnapshotStorage = (*SnapshotMongoStorage)(nil)

func NewSnapshotMongoStorage(db *mongo.Database) *SnapshotMongoStorage {
	return &SnapshotMongoStorage{
		coll: db.Collection(snapshotsCollection),
		key:  snapshotKey(defaultSnapshotKey),
	}
}

func (s *SnapshotMongoStorage) Load(ctx context.Context) ([]byte, error) {
	var doc snapshotDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Document), nil
}

func (s *SnapshotMongoStorage) Save(ctx context.Context, document []byte) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": s.key},
		snapshotDocument{ID: s.key, Document: string(document), UpdatedAt: time.Now().UTC()},
		options.Replace().SetUpsert(true),
	)
	return err
}
