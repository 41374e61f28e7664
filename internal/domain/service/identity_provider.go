package service

import "storefront/internal/domain/entity"

// IdentityProvider hands out the identity of the device the process acts for.
type IdentityProvider interface {
	// GetOrCreate returns the persisted identity, creating it on first use.
	// It returns entity.NoDevice when local storage is unavailable.
	GetOrCreate() entity.DeviceID
}
