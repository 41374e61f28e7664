// Package memory keeps user records in process memory, in the same stored shape the
// realtime store uses. It backs local development and tests.
package memory

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/codec"
)

const maxMutateAttempts = 25

// UserProductRepository implements repository.UserProductRepository with optimistic
// versioning per device.
type UserProductRepository struct {
	mu       sync.Mutex
	nodes    map[entity.DeviceID]map[string]any
	versions map[entity.DeviceID]uint64
	logger   *slog.Logger

	// afterRead runs between the read and the commit of MutateRecord.
	afterRead func(attempt int)
}

// NewUserProductRepository returns an empty store.
func NewUserProductRepository(logger *slog.Logger) *UserProductRepository {
	return &UserProductRepository{
		nodes:    make(map[entity.DeviceID]map[string]any),
		versions: make(map[entity.DeviceID]uint64),
		logger:   logger,
	}
}

// Seed stores a raw node for a device as-is, bypassing the codec.
func (r *UserProductRepository) Seed(deviceID entity.DeviceID, node map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nodes[deviceID] = maps.Clone(node)
	r.versions[deviceID]++
}

// Raw returns a shallow copy of the stored node of a device.
func (r *UserProductRepository) Raw(deviceID entity.DeviceID) map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.nodes[deviceID])
}

// FindUserRecord reads the whole record of a device.
func (r *UserProductRepository) FindUserRecord(ctx context.Context, deviceID entity.DeviceID) (*entity.UserRecord, error) {
	node, _ := r.snapshot(deviceID)
	if node == nil {
		return nil, repository.ErrUserRecordNotFound
	}
	r.logUnreadable(ctx, deviceID, node)

	return codec.DecodeRecord(node), nil
}

// SetUserRecord replaces the whole record of a device.
func (r *UserProductRepository) SetUserRecord(ctx context.Context, deviceID entity.DeviceID, record *entity.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nodes[deviceID] = codec.EncodeRecord(record)
	r.versions[deviceID]++

	return nil
}

// UpdateCollection overwrites one collection key of a device's node.
func (r *UserProductRepository) UpdateCollection(ctx context.Context, deviceID entity.DeviceID, collection entity.Collection, record *entity.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commit(deviceID, maps.Clone(r.nodes[deviceID]), collection, record)

	return nil
}

// MutateRecord applies fn under optimistic concurrency: the result is committed only if
// no other write landed since the read, otherwise fn runs again on fresh data.
func (r *UserProductRepository) MutateRecord(ctx context.Context, deviceID entity.DeviceID, fn repository.MutateFunc) (*entity.UserRecord, error) {
	for attempt := range maxMutateAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node, version := r.snapshot(deviceID)
		if attempt == 0 {
			r.logUnreadable(ctx, deviceID, node)
		}
		record := codec.DecodeRecord(node)

		collection, err := fn(record)
		if err != nil {
			return nil, err
		}

		if r.afterRead != nil {
			r.afterRead(attempt)
		}

		r.mu.Lock()
		if r.versions[deviceID] != version {
			r.mu.Unlock()

			continue
		}
		written := r.commit(deviceID, node, collection, record)
		r.mu.Unlock()

		return codec.DecodeRecord(written), nil
	}

	return nil, repository.ErrTooManyConflicts
}

func (r *UserProductRepository) snapshot(deviceID entity.DeviceID) (map[string]any, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.nodes[deviceID]), r.versions[deviceID]
}

// commit must be called with mu held.
func (r *UserProductRepository) commit(deviceID entity.DeviceID, node map[string]any, collection entity.Collection, record *entity.UserRecord) map[string]any {
	if node == nil {
		node = make(map[string]any, 2)
	}
	node[string(collection)] = codec.MergeCollection(node, record, collection)
	r.nodes[deviceID] = node
	r.versions[deviceID]++

	return node
}

func (r *UserProductRepository) logUnreadable(ctx context.Context, deviceID entity.DeviceID, node map[string]any) {
	for collection, elems := range codec.Unreadable(node) {
		r.logger.DebugContext(ctx, "Keeping stored entries that do not decode",
			slog.String("device_id", deviceID.String()),
			slog.String("collection", string(collection)),
			slog.Int("count", len(elems)),
		)
	}
}
