package encoder

import (
	"encoding/binary"
	"fmt"

	"firestige.xyz/forge/internal/core"
)

// Assemble encodes a descriptor into a single link-layer frame. Layers are
// written in fixed order — Ethernet, then optionally IPv4, then ICMP or UDP
// with the payload — each at the offset following the previous one.
//
// Assemble is pure: it never modifies the descriptor and the returned
// Result owns its buffer, so concurrent calls need no coordination. On
// error no frame is returned at all.
func Assemble(desc PacketDescriptor) (*core.Result, error) {
	rf, err := normalize(desc)
	if err != nil {
		return nil, err
	}

	total := resolveLength(rf)
	if total < ethernetHeaderLen {
		return nil, fmt.Errorf("%w: frame length %d cannot hold a %d-byte ethernet header",
			core.ErrBufferOverflow, total, ethernetHeaderLen)
	}

	buf := make([]byte, total)
	res := &core.Result{Frame: buf}

	writeEthernet(buf, rf)

	if !rf.IPVersionSet {
		// Bare Ethernet frame. The EtherType bytes stay zero rather than
		// carrying a "no upper layer" sentinel, matching the historical
		// behavior of this encoder.
		if len(rf.Payload) > 0 {
			res.Notices = append(res.Notices, core.Notice{
				Layer:  core.LayerPayload,
				Reason: "no IP layer requested, payload not placed",
			})
		}
		return res, nil
	}

	if rf.IPVersion != 4 {
		res.Notices = append(res.Notices, core.Notice{
			Layer:  core.LayerIP,
			Reason: fmt.Sprintf("ip version %d not implemented, frame left ethernet-only", rf.IPVersion),
		})
		return res, nil
	}

	if ethernetHeaderLen+ipv4HeaderLen > total {
		return nil, fmt.Errorf("%w: ipv4 header needs %d bytes at offset %d, frame is %d",
			core.ErrBufferOverflow, ipv4HeaderLen, ethernetHeaderLen, total)
	}
	binary.BigEndian.PutUint16(buf[12:14], etherTypeIPv4)
	writeIPv4(buf[ethernetHeaderLen:ethernetHeaderLen+ipv4HeaderLen], rf, total-ethernetHeaderLen)

	off := ethernetHeaderLen + ipv4HeaderLen
	switch rf.IPProtocol {
	case protocolICMP:
		if err := writeICMP(buf, off, rf, res); err != nil {
			return nil, err
		}
	case protocolUDP:
		if err := writeUDP(buf, off, rf); err != nil {
			return nil, err
		}
	default:
		if rf.IPProtocol != 0 {
			res.Notices = append(res.Notices, core.Notice{
				Layer:  core.LayerTransport,
				Reason: fmt.Sprintf("ip protocol %d not supported, transport layer skipped", rf.IPProtocol),
			})
		}
		if len(rf.Payload) > 0 {
			res.Notices = append(res.Notices, core.Notice{
				Layer:  core.LayerPayload,
				Reason: "no transport layer, payload counted in frame length but not written",
			})
		}
	}

	return res, nil
}
