package kit

import "github.com/google/uuid"

// NewDeviceID returns a fresh random (v4) identifier suitable for
// tagging a jitson document with the device or process that produced
// it.
func NewDeviceID() string { return uuid.NewString() }

// ParseGUID validates and canonicalises a GUID string.
func ParseGUID(s string) (uuid.UUID, error) { return uuid.Parse(s) }
