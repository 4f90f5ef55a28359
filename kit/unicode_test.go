package kit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeUTF8ConvertsWindows1252(t *testing.T) {
	// 0xE9 in Windows-1252 is "é", which is invalid as standalone UTF-8.
	legacy := []byte{0xE9}
	out, err := EncodeUTF8(legacy)
	require.NoError(t, err)
	require.Equal(t, "é", string(out))
}

func TestEncodeUTF8PassesThroughASCII(t *testing.T) {
	out, err := EncodeUTF8([]byte("plain ascii"))
	require.NoError(t, err)
	require.Equal(t, "plain ascii", string(out))
}
