// internal/probe/resolver.go
package probe

import "net"

// UnknownAddress is returned when the target host cannot be resolved.
const UnknownAddress = "Unknown"

// ResolvedAddress looks the target host up and returns its first address.
// Resolution failures are swallowed: this is display-only and must never
// block or fail a scan.
func (t *Target) ResolvedAddress() string {
	addrs, err := net.LookupHost(t.normalized.Hostname())
	if err != nil || len(addrs) == 0 {
		return UnknownAddress
	}
	return addrs[0]
}
