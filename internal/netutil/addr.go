// Package netutil implements address parsing helpers for the encoder.
package netutil

import (
	"fmt"
	"net"
	"net/netip"

	"firestige.xyz/forge/internal/core"
)

// ParseMAC parses an IEEE 802 MAC address in "aa:bb:cc:dd:ee:ff" form into
// its 6 raw bytes.
func ParseMAC(s string) ([6]byte, error) {
	var out [6]byte
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != 6 {
		return out, fmt.Errorf("%w: mac %q", core.ErrAddressFormat, s)
	}
	copy(out[:], hw)
	return out, nil
}

// ParseIPv4 parses a dotted-quad IPv4 address into its 4 raw bytes.
func ParseIPv4(s string) ([4]byte, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return [4]byte{}, fmt.Errorf("%w: ipv4 %q", core.ErrAddressFormat, s)
	}
	return addr.As4(), nil
}
