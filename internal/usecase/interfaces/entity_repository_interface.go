package interfaces

import (
	"context"
	"mecanica_goelzer/internal/domain/entities"
)

// IEntityRepository abstracts the document-backed entity store.
//
// Every mutation persists the whole snapshot before returning. Lookups that
// miss return a nil record and a nil error; the caller decides whether that
// is a not-found condition.
type IEntityRepository interface {
	NextID(ctx context.Context, collection string) (int, error)
	Add(ctx context.Context, collection string, record entities.Record) (entities.Record, error)
	List(ctx context.Context, collection string, filters map[string]string) ([]entities.Record, error)
	Find(ctx context.Context, collection string, match func(entities.Record) bool) ([]entities.Record, error)
	GetByID(ctx context.Context, collection string, id int) (entities.Record, error)
	Update(ctx context.Context, collection string, id int, patch entities.Record) (entities.Record, error)
	Remove(ctx context.Context, collection string, id int) (bool, error)
	Snapshot(ctx context.Context) (entities.Snapshot, error)
	Restore(ctx context.Context, snapshot entities.Snapshot) error
	// Tx runs fn under the store write lock. Each mutation inside fn is
	// persisted on its own; fn returning an error does not undo mutations
	// that already succeeded.
	Tx(ctx context.Context, fn func(tx IEntityTx) error) error
	// View runs fn under the store read lock. Mutations inside fn fail with
	// entities.ErrReadOnly.
	View(ctx context.Context, fn func(tx IEntityTx) error) error
}

// IEntityTx is the store as seen from inside Tx.
type IEntityTx interface {
	NextID(collection string) (int, error)
	Add(collection string, record entities.Record) (entities.Record, error)
	List(collection string, filters map[string]string) ([]entities.Record, error)
	Find(collection string, match func(entities.Record) bool) ([]entities.Record, error)
	GetByID(collection string, id int) (entities.Record, error)
	Update(collection string, id int, patch entities.Record) (entities.Record, error)
	Remove(collection string, id int) (bool, error)
}
