package netutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveFirstIPResolvesLoopback(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ip, err := ResolveFirstIP(ctx, "localhost")
	require.NoError(t, err)
	require.True(t, ip.IsLoopback())
}

func TestResolveFirstIPErrorsOnBogusHost(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ResolveFirstIP(ctx, "this-host-does-not-exist.invalid")
	require.Error(t, err)
}
