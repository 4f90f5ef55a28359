// Package netutil provides the handful of socket-level helpers a
// networked document-exchange layer built on jitson needs beyond what
// net's zero-value defaults give you. Neither package jitson nor
// jitsonctl imports it.
package netutil

import (
	"context"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// ListenReusableUDP opens a UDP socket with SO_REUSEADDR set before
// bind, so a restarted process can rebind a still-draining port
// immediately instead of waiting out the OS's TIME_WAIT window.
func ListenReusableUDP(addr string) (*net.UDPConn, error) {
	lc := net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			var sockErr error
			if err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			}); err != nil {
				return err
			}
			return sockErr
		},
	}
	pc, err := lc.ListenPacket(context.Background(), "udp", addr)
	if err != nil {
		return nil, err
	}
	return pc.(*net.UDPConn), nil
}
