package encoder

import (
	"encoding/binary"
	"fmt"

	"firestige.xyz/forge/internal/core"
)

// writeICMP fills the ICMP region starting at off: an 8-byte header, then
// for Echo Requests an 8-byte sub-header (identifier, sequence number) and
// the payload. The checksum covers the whole region to the end of the
// frame, with the checksum field zeroed during computation.
func writeICMP(buf []byte, off int, rf *core.ResolvedFields, res *core.Result) error {
	if off+icmpHeaderLen > len(buf) {
		return fmt.Errorf("%w: icmp header needs %d bytes at offset %d, frame is %d",
			core.ErrBufferOverflow, icmpHeaderLen, off, len(buf))
	}
	region := buf[off:]
	region[0] = rf.ICMPType
	region[1] = rf.ICMPCode
	// region[2:4] is the checksum, written last; region[4:8] stays zero.

	if rf.ICMPType == icmpEchoRequest {
		if icmpHeaderLen+icmpEchoLen > len(region) {
			return fmt.Errorf("%w: icmp echo sub-header needs %d bytes at offset %d, frame is %d",
				core.ErrBufferOverflow, icmpEchoLen, off+icmpHeaderLen, len(buf))
		}
		binary.BigEndian.PutUint16(region[icmpHeaderLen:], rf.ICMPID)
		binary.BigEndian.PutUint16(region[icmpHeaderLen+2:], rf.ICMPSeqNo)
		if len(rf.Payload) > 0 {
			payloadOff := icmpHeaderLen + icmpEchoLen
			if payloadOff+len(rf.Payload) > len(region) {
				return fmt.Errorf("%w: payload needs %d bytes at offset %d, frame is %d",
					core.ErrBufferOverflow, len(rf.Payload), off+payloadOff, len(buf))
			}
			copy(region[payloadOff:], rf.Payload)
		}
	} else if len(rf.Payload) > 0 {
		res.Notices = append(res.Notices, core.Notice{
			Layer:  core.LayerPayload,
			Reason: fmt.Sprintf("payload is only placed for echo requests, icmp type %d carries none", rf.ICMPType),
		})
	}

	binary.BigEndian.PutUint16(region[2:4], internetChecksum(region, 0))
	return nil
}

// writeUDP fills the 8-byte UDP header at off and the payload after it.
// The checksum covers the pseudo-header plus the datagram.
func writeUDP(buf []byte, off int, rf *core.ResolvedFields) error {
	if off+udpHeaderLen > len(buf) {
		return fmt.Errorf("%w: udp header needs %d bytes at offset %d, frame is %d",
			core.ErrBufferOverflow, udpHeaderLen, off, len(buf))
	}
	region := buf[off:]
	udpLen := udpHeaderLen + len(rf.Payload)
	binary.BigEndian.PutUint16(region[0:2], rf.UDPSrc)
	binary.BigEndian.PutUint16(region[2:4], rf.UDPDst)
	binary.BigEndian.PutUint16(region[4:6], uint16(udpLen))
	// region[6:8] is the checksum, written last.

	if len(rf.Payload) > 0 {
		if udpLen > len(region) {
			return fmt.Errorf("%w: payload needs %d bytes at offset %d, frame is %d",
				core.ErrBufferOverflow, len(rf.Payload), off+udpHeaderLen, len(buf))
		}
		copy(region[udpHeaderLen:], rf.Payload)
	}

	binary.BigEndian.PutUint16(region[6:8], udpChecksum(rf, region[:udpLen]))
	return nil
}

// udpChecksum computes the UDP checksum over the pseudo-header (source and
// destination address, protocol, UDP length) and the datagram. A computed
// value of zero is transmitted as all-ones: zero in the checksum field
// means "no checksum" on the wire.
func udpChecksum(rf *core.ResolvedFields, datagram []byte) uint16 {
	var pseudo [12]byte
	copy(pseudo[0:4], rf.IPSrc[:])
	copy(pseudo[4:8], rf.IPDst[:])
	pseudo[9] = protocolUDP
	binary.BigEndian.PutUint16(pseudo[10:12], uint16(len(datagram)))

	cs := internetChecksum(datagram, wordSum(pseudo[:]))
	if cs == 0 {
		return 0xFFFF
	}
	return cs
}
