package kit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseEncodeRoundTrips(t *testing.T) {
	payload := []byte("sxe-jitson payload")

	enc16 := EncodeBase16(payload)
	dec16, err := DecodeBase16(enc16)
	require.NoError(t, err)
	require.Equal(t, payload, dec16)

	enc32 := EncodeBase32(payload)
	dec32, err := DecodeBase32(enc32)
	require.NoError(t, err)
	require.Equal(t, payload, dec32)

	enc64 := EncodeBase64(payload)
	dec64, err := DecodeBase64(enc64)
	require.NoError(t, err)
	require.Equal(t, payload, dec64)
}

func TestDecodeBase16RejectsMalformedInput(t *testing.T) {
	_, err := DecodeBase16("not-hex")
	require.Error(t, err)
}
