package entity

import (
	"strings"

	"github.com/google/uuid"
)

// DeviceID is the anonymous, client-generated identifier that stands in for a user account.
// The zero value means "no identity available".
type DeviceID string

// NoDevice is the absent identity.
const NoDevice DeviceID = ""

const deviceIDLength = 36

// NewDeviceID generates a random version 4 identifier.
func NewDeviceID() (DeviceID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return NoDevice, err
	}

	return DeviceID(id.String()), nil
}

// ParseDeviceID validates s as a lowercase UUID v4 string
// (xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx, y in 8, 9, a, b).
func ParseDeviceID(s string) (DeviceID, bool) {
	if len(s) != deviceIDLength || strings.ToLower(s) != s {
		return NoDevice, false
	}

	id, err := uuid.Parse(s)
	if err != nil || id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		return NoDevice, false
	}

	return DeviceID(s), true
}

// Present reports whether the identity is available.
func (d DeviceID) Present() bool {
	return d != NoDevice
}

func (d DeviceID) String() string {
	return string(d)
}
