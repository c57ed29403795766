package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase/interfaces"
	"mecanica_goelzer/pkg/logger"

	"go.uber.org/zap"
)

// EntityRepository keeps every collection in memory and writes the whole
// document through an ISnapshotStorage after each mutation.
//
// A single RWMutex guards the data. Mutations build the next slice for the
// touched collection, persist, and only then swap it in, so a failed write
// leaves the previous state visible.
type EntityRepository struct {
	mu          sync.RWMutex
	data        entities.Snapshot
	collections []string
	storage     interfaces.ISnapshotStorage
}

var _ interfaces.IEntityRepository = (*EntityRepository)(nil)

// NewEntityRepository loads the document from storage, or seeds and saves it
// when storage is empty. Registered collections missing from a loaded
// document start empty; names outside the registry are dropped.
func NewEntityRepository(ctx context.Context, storage interfaces.ISnapshotStorage, collections []string) (*EntityRepository, error) {
	r := &EntityRepository{
		collections: slices.Clone(collections),
		storage:     storage,
	}

	raw, err := storage.Load(ctx)
	if err != nil {
		logger.Log.Error("[store][repository] load failed", zap.Error(err))
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	if raw == nil {
		logger.Log.Info("[store][repository] no snapshot found, seeding defaults")
		r.data = r.normalize(entities.DefaultSeed())
		if err := r.persist(ctx); err != nil {
			return nil, err
		}
		return r, nil
	}

	var loaded entities.Snapshot
	if err := json.Unmarshal(raw, &loaded); err != nil {
		logger.Log.Error("[store][repository] snapshot decode failed", zap.Error(err))
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	r.data = r.normalize(loaded)
	logger.Log.Info("[store][repository] snapshot loaded", zap.Int("bytes", len(raw)))
	return r, nil
}

func (r *EntityRepository) NextID(_ context.Context, collection string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID(collection)
}

func (r *EntityRepository) Add(ctx context.Context, collection string, record entities.Record) (entities.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.add(ctx, collection, record)
}

func (r *EntityRepository) List(_ context.Context, collection string, filters map[string]string) ([]entities.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(collection, filters)
}

func (r *EntityRepository) Find(_ context.Context, collection string, match func(entities.Record) bool) ([]entities.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.find(collection, match)
}

func (r *EntityRepository) GetByID(_ context.Context, collection string, id int) (entities.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getByID(collection, id)
}

func (r *EntityRepository) Update(ctx context.Context, collection string, id int, patch entities.Record) (entities.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(ctx, collection, id, patch)
}

func (r *EntityRepository) Remove(ctx context.Context, collection string, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remove(ctx, collection, id)
}

// Snapshot returns a copy of every registered collection.
func (r *EntityRepository) Snapshot(_ context.Context) (entities.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(entities.Snapshot, len(r.collections))
	for _, name := range r.collections {
		out[name] = cloneRecords(r.data[name])
	}
	return out, nil
}

// Restore replaces the whole store. Callers validate the payload first.
func (r *EntityRepository) Restore(ctx context.Context, snapshot entities.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.data
	r.data = r.normalize(snapshot)
	if err := r.persist(ctx); err != nil {
		r.data = prev
		return err
	}
	logger.Log.Info("[store][repository] snapshot restored")
	return nil
}

// Tx runs fn while holding the write lock.
func (r *EntityRepository) Tx(ctx context.Context, fn func(tx interfaces.IEntityTx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&entityTx{ctx: ctx, r: r})
}

// View runs fn while holding the read lock, so concurrent views do not
// serialise each other.
func (r *EntityRepository) View(ctx context.Context, fn func(tx interfaces.IEntityTx) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(&entityTx{ctx: ctx, r: r, readOnly: true})
}

type entityTx struct {
	ctx      context.Context
	r        *EntityRepository
	readOnly bool
}

func (t *entityTx) writable(op, collection string) error {
	if t.readOnly {
		return fmt.Errorf("%w: %s %s", entities.ErrReadOnly, op, collection)
	}
	return nil
}

func (t *entityTx) NextID(collection string) (int, error) { return t.r.nextID(collection) }

func (t *entityTx) Add(collection string, record entities.Record) (entities.Record, error) {
	if err := t.writable("add", collection); err != nil {
		return nil, err
	}
	return t.r.add(t.ctx, collection, record)
}

func (t *entityTx) List(collection string, filters map[string]string) ([]entities.Record, error) {
	return t.r.list(collection, filters)
}

func (t *entityTx) Find(collection string, match func(entities.Record) bool) ([]entities.Record, error) {
	return t.r.find(collection, match)
}

func (t *entityTx) GetByID(collection string, id int) (entities.Record, error) {
	return t.r.getByID(collection, id)
}

func (t *entityTx) Update(collection string, id int, patch entities.Record) (entities.Record, error) {
	if err := t.writable("update", collection); err != nil {
		return nil, err
	}
	return t.r.update(t.ctx, collection, id, patch)
}

func (t *entityTx) Remove(collection string, id int) (bool, error) {
	if err := t.writable("remove", collection); err != nil {
		return false, err
	}
	return t.r.remove(t.ctx, collection, id)
}

// Unlocked operations. Callers hold r.mu.

func (r *EntityRepository) collection(name string) ([]entities.Record, error) {
	if !slices.Contains(r.collections, name) {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnknownCollection, name)
	}
	return r.data[name], nil
}

func (r *EntityRepository) nextID(collection string) (int, error) {
	records, err := r.collection(collection)
	if err != nil {
		return 0, err
	}
	maxID := 0
	for _, rec := range records {
		maxID = max(maxID, rec.ID())
	}
	return maxID + 1, nil
}

func (r *EntityRepository) add(ctx context.Context, collection string, record entities.Record) (entities.Record, error) {
	records, err := r.collection(collection)
	if err != nil {
		return nil, err
	}
	id, err := r.nextID(collection)
	if err != nil {
		return nil, err
	}

	created := record.Clone()
	if created == nil {
		created = entities.Record{}
	}
	created[entities.FieldID] = id

	next := append(slices.Clip(records), created)
	if err := r.commit(ctx, collection, next); err != nil {
		return nil, err
	}
	logger.Log.Debug("[store][repository] record added", zap.String("collection", collection), zap.Int("id", id))
	return created.Clone(), nil
}

func (r *EntityRepository) list(collection string, filters map[string]string) ([]entities.Record, error) {
	return r.find(collection, func(rec entities.Record) bool {
		for key, want := range filters {
			v, ok := rec[key]
			if !ok || v == nil || entities.FormatValue(v) != want {
				return false
			}
		}
		return true
	})
}

func (r *EntityRepository) find(collection string, match func(entities.Record) bool) ([]entities.Record, error) {
	records, err := r.collection(collection)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Record, 0, len(records))
	for _, rec := range records {
		if match == nil || match(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

func (r *EntityRepository) getByID(collection string, id int) (entities.Record, error) {
	records, err := r.collection(collection)
	if err != nil {
		return nil, err
	}
	if i := indexOf(records, id); i >= 0 {
		return records[i].Clone(), nil
	}
	return nil, nil
}

func (r *EntityRepository) update(ctx context.Context, collection string, id int, patch entities.Record) (entities.Record, error) {
	records, err := r.collection(collection)
	if err != nil {
		return nil, err
	}
	i := indexOf(records, id)
	if i < 0 {
		return nil, nil
	}

	merged := records[i].Clone()
	for key, v := range patch {
		if key == entities.FieldID {
			continue
		}
		merged[key] = v
	}

	next := slices.Clone(records)
	next[i] = merged
	if err := r.commit(ctx, collection, next); err != nil {
		return nil, err
	}
	logger.Log.Debug("[store][repository] record updated", zap.String("collection", collection), zap.Int("id", id))
	return merged.Clone(), nil
}

func (r *EntityRepository) remove(ctx context.Context, collection string, id int) (bool, error) {
	records, err := r.collection(collection)
	if err != nil {
		return false, err
	}
	i := indexOf(records, id)
	if i < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(records), i, i+1)
	if err := r.commit(ctx, collection, next); err != nil {
		return false, err
	}
	logger.Log.Debug("[store][repository] record removed", zap.String("collection", collection), zap.Int("id", id))
	return true, nil
}

// commit swaps in the next state of one collection and persists it,
// restoring the previous slice if the write fails.
func (r *EntityRepository) commit(ctx context.Context, collection string, next []entities.Record) error {
	prev := r.data[collection]
	r.data[collection] = next
	if err := r.persist(ctx); err != nil {
		r.data[collection] = prev
		return err
	}
	return nil
}

func (r *EntityRepository) persist(ctx context.Context) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("%w: encoding snapshot: %v", entities.ErrPersistence, err)
	}
	if err := r.storage.Save(ctx, buf.Bytes()); err != nil {
		logger.Log.Error("[store][repository] save failed", zap.Error(err))
		return fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}
	return nil
}

func (r *EntityRepository) normalize(in entities.Snapshot) entities.Snapshot {
	out := make(entities.Snapshot, len(r.collections))
	for _, name := range r.collections {
		records := in[name]
		if records == nil {
			records = []entities.Record{}
		}
		out[name] = records
	}
	for name := range in {
		if !slices.Contains(r.collections, name) {
			logger.Log.Warn("[store][repository] ignoring unregistered collection", zap.String("collection", name))
		}
	}
	return out
}

func indexOf(records []entities.Record, id int) int {
	return slices.IndexFunc(records, func(rec entities.Record) bool { return rec.ID() == id })
}

func cloneRecords(records []entities.Record) []entities.Record {
	out := make([]entities.Record, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return out
}
