// Package core defines core data structures with zero external dependencies.
package core

// ResolvedFields is the fully-defaulted, typed view of a packet descriptor.
// It is produced once by the encoder's normalizer; nothing downstream looks
// at the raw descriptor map again.
type ResolvedFields struct {
	// Explicit total-frame-length override. Valid only when LenSet is true.
	Len    int
	LenSet bool

	EthDst [6]byte
	EthSrc [6]byte

	// IPVersion is meaningful only when IPVersionSet is true; an absent
	// ipVer key means no IP layer at all.
	IPVersion    uint8
	IPVersionSet bool

	IPSrc      [4]byte
	IPDst      [4]byte
	IPID       uint16
	IPFlags    uint8
	IPTTL      uint8
	IPProtocol uint8 // 1=ICMP, 17=UDP, anything else = no transport layer

	// IPChecksum overrides the computed IPv4 header checksum when
	// IPChecksumSet is true.
	IPChecksum    uint16
	IPChecksumSet bool

	ICMPType  uint8
	ICMPCode  uint8
	ICMPID    uint16
	ICMPSeqNo uint16

	UDPSrc uint16
	UDPDst uint16

	Payload []byte
}

// Layer identifies a frame layer in assembly notices.
type Layer string

const (
	LayerIP        Layer = "ip"
	LayerTransport Layer = "transport"
	LayerPayload   Layer = "payload"
)

// Notice records a layer the assembler skipped permissively instead of
// failing, so callers can tell "encoded successfully" apart from "silently
// left a layer out".
type Notice struct {
	Layer  Layer
	Reason string
}

// Result is the assembler output: a finished frame plus any skip notices.
// Errors and notices are disjoint — an error means no frame was produced.
type Result struct {
	Frame   []byte
	Notices []Notice
}
