package encoder

import "firestige.xyz/forge/internal/core"

const (
	// Header lengths, fixed by the wire formats.
	ethernetHeaderLen = 14
	ipv4HeaderLen     = 20 // version 4, IHL 5, no options
	icmpHeaderLen     = 8
	icmpEchoLen       = 8
	udpHeaderLen      = 8

	// EtherType values
	etherTypeIPv4 = 0x0800

	// Protocol numbers carried in the IPv4 protocol field.
	protocolICMP = 1
	protocolUDP  = 17

	// ICMP message types
	icmpEchoRequest = 8
)

// resolveLength computes the total frame length in bytes. An explicit
// length override is caller-authoritative and returned verbatim — the
// assembler enforces it with bounds checks during writes instead of
// validating it here. Without an override, everything beyond the Ethernet
// header is contributed only when an IPv4 layer is requested: a descriptor
// with no ipVer (or an unsupported version) resolves to a bare 14-byte
// Ethernet frame.
func resolveLength(rf *core.ResolvedFields) int {
	if rf.LenSet {
		return rf.Len
	}
	n := ethernetHeaderLen
	if rf.IPVersionSet && rf.IPVersion == 4 {
		n += ipv4HeaderLen
		switch rf.IPProtocol {
		case protocolICMP:
			n += icmpHeaderLen + icmpEchoLen
		case protocolUDP:
			n += udpHeaderLen
		}
		n += len(rf.Payload)
	}
	return n
}
