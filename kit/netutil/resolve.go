package netutil

import (
	"context"
	"fmt"
	"net"
)

// ResolveFirstIP resolves host and returns its first address, using a
// resolver instance pinned to ctx rather than net's package-level
// defaults, so callers control cancellation and timeout.
func ResolveFirstIP(ctx context.Context, host string) (net.IP, error) {
	var r net.Resolver
	ips, err := r.LookupIP(ctx, "ip", host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("netutil: no addresses for %q", host)
	}
	return ips[0], nil
}
