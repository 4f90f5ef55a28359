package kit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeviceIDIsUnique(t *testing.T) {
	a := NewDeviceID()
	b := NewDeviceID()
	require.NotEqual(t, a, b)

	parsed, err := ParseGUID(a)
	require.NoError(t, err)
	require.Equal(t, a, parsed.String())
}

func TestParseGUIDRejectsGarbage(t *testing.T) {
	_, err := ParseGUID("not-a-guid")
	require.Error(t, err)
}
