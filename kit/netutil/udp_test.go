package netutil

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// ListenReusableUDP's value over net.ListenUDP is entirely in the
// SO_REUSEADDR socket option set during Control, which isn't observable
// through the returned *net.UDPConn without a second process racing to
// rebind the same port. This just checks the happy path binds and
// reports a real ephemeral port.
func TestListenReusableUDPBindsEphemeralPort(t *testing.T) {
	conn, err := ListenReusableUDP("127.0.0.1:0")
	require.NoError(t, err)
	defer conn.Close()
	require.NotZero(t, conn.LocalAddr().(*net.UDPAddr).Port)
}
