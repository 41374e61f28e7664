package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserRecordNotFound is returned when a device has never written a cart or wishlist.
var ErrUserRecordNotFound = errors.New("user record not found")

// ErrTooManyConflicts is returned when a compare-and-swap mutation keeps losing to
// concurrent writers.
var ErrTooManyConflicts = errors.New("too many concurrent modifications")

// MutateFunc receives the device's current record, normalized and never nil, and
// returns the collection it changed. Only that collection is written back.
type MutateFunc func(record *entity.UserRecord) (entity.Collection, error)

// UserProductRepository is the realtime store holding one record per device.
type UserProductRepository interface {
	// FindUserRecord reads the whole record of a device.
	FindUserRecord(ctx context.Context, deviceID entity.DeviceID) (*entity.UserRecord, error)

	// SetUserRecord replaces the whole record of a device.
	SetUserRecord(ctx context.Context, deviceID entity.DeviceID, record *entity.UserRecord) error

	// UpdateCollection overwrites a single collection key, leaving the sibling untouched.
	// It does not guard against concurrent writers.
	UpdateCollection(ctx context.Context, deviceID entity.DeviceID, collection entity.Collection, record *entity.UserRecord) error

	// MutateRecord runs fn as a compare-and-swap transaction on the device's record,
	// calling it again when another writer got there first. It returns the record as written.
	MutateRecord(ctx context.Context, deviceID entity.DeviceID, fn MutateFunc) (*entity.UserRecord, error)
}
