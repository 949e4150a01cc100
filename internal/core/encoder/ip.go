package encoder

import (
	"encoding/binary"

	"firestige.xyz/forge/internal/core"
)

// writeIPv4 fills the 20-byte IPv4 header region. b must be exactly the
// header region; totalLen is the value of the IPv4 total-length field
// (frame length minus the Ethernet header).
func writeIPv4(b []byte, rf *core.ResolvedFields, totalLen int) {
	b[0] = 0x45 // version 4, header length 5 words
	b[1] = 0    // type of service
	binary.BigEndian.PutUint16(b[2:4], uint16(totalLen))
	binary.BigEndian.PutUint16(b[4:6], rf.IPID)
	// Flags occupy the top 3 bits; fragment offset is always 0.
	binary.BigEndian.PutUint16(b[6:8], uint16(rf.IPFlags)<<13)
	b[8] = rf.IPTTL
	b[9] = rf.IPProtocol
	copy(b[12:16], rf.IPSrc[:])
	copy(b[16:20], rf.IPDst[:])

	// Checksum goes in last, over the header with its own field zeroed,
	// unless the descriptor supplied an override.
	cs := internetChecksum(b, 0)
	if rf.IPChecksumSet {
		cs = rf.IPChecksum
	}
	binary.BigEndian.PutUint16(b[10:12], cs)
}
