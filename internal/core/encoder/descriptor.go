package encoder

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"firestige.xyz/forge/internal/core"
	"firestige.xyz/forge/internal/netutil"
)

// PacketDescriptor is the caller-supplied field/value mapping describing a
// single frame. It is read-only input; normalization never modifies it.
type PacketDescriptor map[string]any

// Field defaults applied by the normalizer.
const (
	defaultIPFlags = 2 // don't-fragment
	defaultIPTTL   = 16
	defaultUDPPort = 2048
)

// rawDescriptor mirrors the descriptor keys with pointer fields so that key
// presence survives decoding. Values are weakly typed on purpose: YAML and
// JSON integer, float and string forms all coerce the same way.
type rawDescriptor struct {
	Len        *int    `mapstructure:"len"`
	EthDst     *string `mapstructure:"ethDst"`
	EthSrc     *string `mapstructure:"ethSrc"`
	IPVer      *int    `mapstructure:"ipVer"`
	IPSrc      *string `mapstructure:"ipSrc"`
	IPDst      *string `mapstructure:"ipDst"`
	IPID       *int    `mapstructure:"ipId"`
	IPFlags    *int    `mapstructure:"ipFlags"`
	IPTTL      *int    `mapstructure:"ipTtl"`
	IPType     *int    `mapstructure:"ipType"`
	IPChecksum *int    `mapstructure:"ipChecksum"`
	ICMPType   *int    `mapstructure:"icmpType"`
	ICMPCode   *int    `mapstructure:"icmpCode"`
	ICMPID     *int    `mapstructure:"icmpId"`
	ICMPSeqNo  *int    `mapstructure:"icmpSeqNo"`
	UDPSrc     *int    `mapstructure:"udpSrc"`
	UDPDst     *int    `mapstructure:"udpDst"`
	Data       any     `mapstructure:"data"`
}

func decodeDescriptor(desc PacketDescriptor) (*rawDescriptor, error) {
	var raw rawDescriptor
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(map[string]any(desc)); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrDescriptorInvalid, err)
	}
	return &raw, nil
}

// normalize resolves a descriptor into fully-defaulted typed fields.
// Pure function: absent optional keys take their documented defaults,
// absent required keys fail, addresses are parsed to raw bytes.
func normalize(desc PacketDescriptor) (*core.ResolvedFields, error) {
	raw, err := decodeDescriptor(desc)
	if err != nil {
		return nil, err
	}

	rf := &core.ResolvedFields{
		IPFlags: defaultIPFlags,
		IPTTL:   defaultIPTTL,
		UDPSrc:  defaultUDPPort,
		UDPDst:  defaultUDPPort,
		Payload: dataBytes(raw.Data),
	}

	if raw.Len != nil {
		rf.Len, rf.LenSet = *raw.Len, true
	}
	if raw.IPVer != nil {
		rf.IPVersion, rf.IPVersionSet = uint8(*raw.IPVer), true
	}

	// Ethernet addresses: required once an IP layer is requested, optional
	// (zero MACs) for bare Ethernet frames.
	if raw.EthDst != nil {
		if rf.EthDst, err = netutil.ParseMAC(*raw.EthDst); err != nil {
			return nil, err
		}
	} else if rf.IPVersionSet {
		return nil, fmt.Errorf("%w: ethDst", core.ErrMissingField)
	}
	if raw.EthSrc != nil {
		if rf.EthSrc, err = netutil.ParseMAC(*raw.EthSrc); err != nil {
			return nil, err
		}
	} else if rf.IPVersionSet {
		return nil, fmt.Errorf("%w: ethSrc", core.ErrMissingField)
	}

	if rf.IPVersionSet && rf.IPVersion == 4 {
		if raw.IPSrc == nil {
			return nil, fmt.Errorf("%w: ipSrc", core.ErrMissingField)
		}
		if raw.IPDst == nil {
			return nil, fmt.Errorf("%w: ipDst", core.ErrMissingField)
		}
		if rf.IPSrc, err = netutil.ParseIPv4(*raw.IPSrc); err != nil {
			return nil, err
		}
		if rf.IPDst, err = netutil.ParseIPv4(*raw.IPDst); err != nil {
			return nil, err
		}
	}

	if raw.IPID != nil {
		rf.IPID = uint16(*raw.IPID)
	}
	if raw.IPFlags != nil {
		rf.IPFlags = uint8(*raw.IPFlags)
	}
	if raw.IPTTL != nil {
		rf.IPTTL = uint8(*raw.IPTTL)
	}
	if raw.IPType != nil {
		rf.IPProtocol = uint8(*raw.IPType)
	}
	if raw.IPChecksum != nil {
		rf.IPChecksum, rf.IPChecksumSet = uint16(*raw.IPChecksum), true
	}
	if raw.ICMPType != nil {
		rf.ICMPType = uint8(*raw.ICMPType)
	}
	if raw.ICMPCode != nil {
		rf.ICMPCode = uint8(*raw.ICMPCode)
	}
	if raw.ICMPID != nil {
		rf.ICMPID = uint16(*raw.ICMPID)
	}
	if raw.ICMPSeqNo != nil {
		rf.ICMPSeqNo = uint16(*raw.ICMPSeqNo)
	}
	if raw.UDPSrc != nil {
		rf.UDPSrc = uint16(*raw.UDPSrc)
	}
	if raw.UDPDst != nil {
		rf.UDPDst = uint16(*raw.UDPDst)
	}

	return rf, nil
}

// dataBytes converts the descriptor data value into raw payload bytes.
// Sequences have each element truncated to a byte, text uses its native
// byte encoding, anything else yields an empty payload.
func dataBytes(v any) []byte {
	switch d := v.(type) {
	case nil:
		return nil
	case []byte:
		out := make([]byte, len(d))
		copy(out, d)
		return out
	case string:
		return []byte(d)
	case []int:
		out := make([]byte, len(d))
		for i, e := range d {
			out[i] = byte(e)
		}
		return out
	case []any:
		out := make([]byte, len(d))
		for i, e := range d {
			out[i] = byte(asInt(e))
		}
		return out
	default:
		return nil
	}
}

// asInt flattens the integer kinds YAML and JSON decoders produce.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
