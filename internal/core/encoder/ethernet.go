package encoder

import "firestige.xyz/forge/internal/core"

// writeEthernet fills the Ethernet address bytes at offsets 0 and 6. The
// EtherType bytes at [12:14) are owned by the IP layer decision and stay
// zero for frames without an IP layer.
func writeEthernet(b []byte, rf *core.ResolvedFields) {
	copy(b[0:6], rf.EthDst[:])
	copy(b[6:12], rf.EthSrc[:])
}
