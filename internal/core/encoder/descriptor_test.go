package encoder

import (
	"bytes"
	"errors"
	"testing"

	"firestige.xyz/forge/internal/core"
)

func TestNormalizeDefaults(t *testing.T) {
	rf, err := normalize(PacketDescriptor{
		"ethDst": "ff:ff:ff:ff:ff:ff",
		"ethSrc": "00:11:22:33:44:55",
		"ipVer":  4,
		"ipSrc":  "10.0.0.1",
		"ipDst":  "10.0.0.2",
		"ipType": 17,
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if rf.IPTTL != 16 {
		t.Errorf("Expected default TTL 16, got %d", rf.IPTTL)
	}
	if rf.IPFlags != 2 {
		t.Errorf("Expected default flags 2 (don't-fragment), got %d", rf.IPFlags)
	}
	if rf.IPID != 0 {
		t.Errorf("Expected default identification 0, got %d", rf.IPID)
	}
	if rf.UDPSrc != 2048 || rf.UDPDst != 2048 {
		t.Errorf("Expected default ports 2048/2048, got %d/%d", rf.UDPSrc, rf.UDPDst)
	}
	if rf.IPChecksumSet {
		t.Error("Expected no checksum override by default")
	}
	if len(rf.Payload) != 0 {
		t.Errorf("Expected empty payload, got %d bytes", len(rf.Payload))
	}
}

func TestNormalizeAddresses(t *testing.T) {
	rf, err := normalize(PacketDescriptor{
		"ethDst": "aa:bb:cc:dd:ee:ff",
		"ethSrc": "00:11:22:33:44:55",
		"ipVer":  4,
		"ipSrc":  "192.168.1.10",
		"ipDst":  "192.168.1.20",
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if rf.EthDst != [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF} {
		t.Errorf("Unexpected ethDst bytes: %v", rf.EthDst)
	}
	if rf.IPSrc != [4]byte{192, 168, 1, 10} {
		t.Errorf("Unexpected ipSrc bytes: %v", rf.IPSrc)
	}
	if rf.IPDst != [4]byte{192, 168, 1, 20} {
		t.Errorf("Unexpected ipDst bytes: %v", rf.IPDst)
	}
}

func TestNormalizeMissingFields(t *testing.T) {
	tests := []struct {
		name string
		desc PacketDescriptor
	}{
		{"ethDst missing", PacketDescriptor{"ethSrc": "00:11:22:33:44:55", "ipVer": 4, "ipSrc": "10.0.0.1", "ipDst": "10.0.0.2"}},
		{"ethSrc missing", PacketDescriptor{"ethDst": "ff:ff:ff:ff:ff:ff", "ipVer": 4, "ipSrc": "10.0.0.1", "ipDst": "10.0.0.2"}},
		{"ipSrc missing", PacketDescriptor{"ethDst": "ff:ff:ff:ff:ff:ff", "ethSrc": "00:11:22:33:44:55", "ipVer": 4, "ipDst": "10.0.0.2"}},
		{"ipDst missing", PacketDescriptor{"ethDst": "ff:ff:ff:ff:ff:ff", "ethSrc": "00:11:22:33:44:55", "ipVer": 4, "ipSrc": "10.0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalize(tt.desc)
			if !errors.Is(err, core.ErrMissingField) {
				t.Errorf("Expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestNormalizeMalformedAddresses(t *testing.T) {
	tests := []struct {
		name string
		desc PacketDescriptor
	}{
		{"bad mac", PacketDescriptor{"ethDst": "not-a-mac", "ethSrc": "00:11:22:33:44:55", "ipVer": 4, "ipSrc": "10.0.0.1", "ipDst": "10.0.0.2"}},
		{"bad ipv4", PacketDescriptor{"ethDst": "ff:ff:ff:ff:ff:ff", "ethSrc": "00:11:22:33:44:55", "ipVer": 4, "ipSrc": "10.0.0.999", "ipDst": "10.0.0.2"}},
		{"ipv6 literal for ipv4 field", PacketDescriptor{"ethDst": "ff:ff:ff:ff:ff:ff", "ethSrc": "00:11:22:33:44:55", "ipVer": 4, "ipSrc": "::1", "ipDst": "10.0.0.2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalize(tt.desc)
			if !errors.Is(err, core.ErrAddressFormat) {
				t.Errorf("Expected ErrAddressFormat, got %v", err)
			}
		})
	}
}

func TestNormalizeEthernetOnlyNeedsNoAddresses(t *testing.T) {
	rf, err := normalize(PacketDescriptor{})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if rf.EthDst != [6]byte{} || rf.EthSrc != [6]byte{} {
		t.Error("Expected zero MAC addresses for a bare descriptor")
	}
	if rf.IPVersionSet {
		t.Error("Expected no IP layer for a bare descriptor")
	}
}

func TestNormalizeWeakTyping(t *testing.T) {
	// YAML and JSON front-ends hand over strings and floats; the decoder
	// coerces them all the same way.
	rf, err := normalize(PacketDescriptor{
		"ethDst": "ff:ff:ff:ff:ff:ff",
		"ethSrc": "00:11:22:33:44:55",
		"ipVer":  "4",
		"ipSrc":  "10.0.0.1",
		"ipDst":  "10.0.0.2",
		"ipTtl":  float64(32),
		"udpSrc": int64(5000),
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if rf.IPVersion != 4 {
		t.Errorf("Expected ipVer 4 from string form, got %d", rf.IPVersion)
	}
	if rf.IPTTL != 32 {
		t.Errorf("Expected TTL 32 from float form, got %d", rf.IPTTL)
	}
	if rf.UDPSrc != 5000 {
		t.Errorf("Expected udpSrc 5000 from int64 form, got %d", rf.UDPSrc)
	}
}

func TestDataBytes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []byte
	}{
		{"nil", nil, nil},
		{"string", "hi", []byte{'h', 'i'}},
		{"byte slice", []byte{1, 2}, []byte{1, 2}},
		{"int slice", []int{1, 2, 3}, []byte{1, 2, 3}},
		{"any slice truncates to byte", []any{1, 2, 300}, []byte{1, 2, 0x2C}},
		{"any slice of floats", []any{float64(65), float64(66)}, []byte{65, 66}},
		{"unsupported type", 42, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dataBytes(tt.in); !bytes.Equal(got, tt.want) {
				t.Errorf("dataBytes(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDataBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	got := dataBytes(src)
	src[0] = 9
	if got[0] != 1 {
		t.Error("dataBytes must copy the input slice, not alias it")
	}
}
