// Package rtdb stores user records in the Firebase Realtime Database under users/{deviceId}.
package rtdb

import (
	"context"
	"log/slog"
	"path"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/codec"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

// transactionAbortedMessage is the error text the Firebase client returns once it
// ran out of retries on a contended node. The client exports no sentinel for it.
const transactionAbortedMessage = "transaction aborted after failed retries"

type userProductRepository struct {
	client *db.Client
	logger *slog.Logger
}

// NewUserProductRepository is the constructor for userProductRepository.
func NewUserProductRepository(client *db.Client, logger *slog.Logger) repository.UserProductRepository {
	return &userProductRepository{
		client: client,
		logger: logger,
	}
}

func userPath(deviceID entity.DeviceID) string {
	return path.Join(constants.UsersPath, deviceID.String())
}

// FindUserRecord reads the whole node of a device.
func (repo *userProductRepository) FindUserRecord(ctx context.Context, deviceID entity.DeviceID) (*entity.UserRecord, error) {
	var raw any
	if err := repo.client.NewRef(userPath(deviceID)).Get(ctx, &raw); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to read user record")
	}
	if raw == nil {
		return nil, repository.ErrUserRecordNotFound
	}
	repo.logUnreadable(ctx, deviceID, raw)

	return codec.DecodeRecord(raw), nil
}

// SetUserRecord replaces the whole node of a device.
func (repo *userProductRepository) SetUserRecord(ctx context.Context, deviceID entity.DeviceID, record *entity.UserRecord) error {
	if err := repo.client.NewRef(userPath(deviceID)).Set(ctx, codec.EncodeRecord(record)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to set user record")
	}

	return nil
}

// UpdateCollection merges one collection key into the device's node. Stored elements
// of the collection that do not decode are read first and written back after the
// record's entries.
func (repo *userProductRepository) UpdateCollection(ctx context.Context, deviceID entity.DeviceID, collection entity.Collection, record *entity.UserRecord) error {
	ref := repo.client.NewRef(userPath(deviceID))

	var stored any
	if err := ref.Child(string(collection)).Get(ctx, &stored); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to read "+string(collection))
	}

	update := map[string]any{
		string(collection): codec.MergeCollection(map[string]any{string(collection): stored}, record, collection),
	}
	if err := ref.Update(ctx, update); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update "+string(collection))
	}

	return nil
}

// MutateRecord runs fn inside a Realtime Database transaction. The server rejects the
// write when the node changed since it was read (ETag mismatch) and the client calls
// fn again with the fresh node.
func (repo *userProductRepository) MutateRecord(ctx context.Context, deviceID entity.DeviceID, fn repository.MutateFunc) (*entity.UserRecord, error) {
	var (
		written  map[string]any
		fnErr    error
		attempts int
	)

	err := repo.client.NewRef(userPath(deviceID)).Transaction(ctx, func(node db.TransactionNode) (any, error) {
		attempts++

		var raw any
		if err := node.Unmarshal(&raw); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal user node")
		}
		if attempts == 1 {
			repo.logUnreadable(ctx, deviceID, raw)
		}

		record := codec.DecodeRecord(raw)
		collection, err := fn(record)
		if err != nil {
			fnErr = err

			return nil, err
		}

		// Sibling keys are carried over untouched from the node we were given.
		current, _ := raw.(map[string]any)
		next := make(map[string]any, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[string(collection)] = codec.MergeCollection(current, record, collection)
		written = next

		return next, nil
	})

	if attempts > 1 {
		repo.logger.Debug("User record transaction retried",
			slog.String("device_id", deviceID.String()),
			slog.Int("attempts", attempts),
		)
	}

	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil && err.Error() == transactionAbortedMessage {
		return nil, errors.Wrap(repository.ErrTooManyConflicts, err.Error())
	}
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "user record transaction failed")
	}

	return codec.DecodeRecord(written), nil
}

func (repo *userProductRepository) logUnreadable(ctx context.Context, deviceID entity.DeviceID, raw any) {
	for collection, elems := range codec.Unreadable(raw) {
		repo.logger.DebugContext(ctx, "Keeping stored entries that do not decode",
			slog.String("device_id", deviceID.String()),
			slog.String("collection", string(collection)),
			slog.Int("count", len(elems)),
		)
	}
}
