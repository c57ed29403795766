package interfaces

import "context"

// ISnapshotStorage persists the serialized store document.
//
// Load returns nil, nil when nothing was saved yet.
type ISnapshotStorage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, document []byte) error
}
