// Package identity resolves the anonymous device identity of the local client.
package identity

import (
	"log/slog"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// LocalStorage is the client-side key/value storage the identity lives in.
type LocalStorage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

type provider struct {
	storage LocalStorage
	logger  *slog.Logger
	newID   func() (entity.DeviceID, error)
}

// NewProvider returns an IdentityProvider over storage. A nil storage behaves as
// unavailable storage.
func NewProvider(storage LocalStorage, logger *slog.Logger) service.IdentityProvider {
	return &provider{
		storage: storage,
		logger:  logger,
		newID:   entity.NewDeviceID,
	}
}

// GetOrCreate returns the stored identity, or generates, persists and returns a new one
// when none is stored or the stored value is malformed. Storage failures yield
// entity.NoDevice.
func (p *provider) GetOrCreate() entity.DeviceID {
	if p.storage == nil {
		p.logger.Warn("Local storage unavailable, continuing without device identity")

		return entity.NoDevice
	}

	stored, ok, err := p.storage.Get(constants.DeviceIDStorageKey)
	if err != nil {
		p.logger.Warn("Failed to read device identity", slog.Any("error", err))

		return entity.NoDevice
	}
	if ok {
		if id, valid := entity.ParseDeviceID(stored); valid {
			return id
		}
		p.logger.Info("Replacing malformed device identity", slog.String("stored", stored))
	}

	id, err := p.newID()
	if err != nil {
		p.logger.Warn("Failed to generate device identity", slog.Any("error", err))

		return entity.NoDevice
	}

	if err := p.storage.Set(constants.DeviceIDStorageKey, id.String()); err != nil {
		p.logger.Warn("Failed to persist device identity", slog.Any("error", err))

		return entity.NoDevice
	}

	p.logger.Debug("Issued new device identity", slog.String("device_id", id.String()))

	return id
}
