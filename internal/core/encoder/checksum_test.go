package encoder

import (
	"testing"
)

func TestInternetChecksumRFCExample(t *testing.T) {
	// Worked example from RFC 1071 §3: the one's-complement sum of these
	// words is 0xDDF2, so the checksum is its complement.
	data := []byte{0x00, 0x01, 0xF2, 0x03, 0xF4, 0xF5, 0xF6, 0xF7}

	got := internetChecksum(data, 0)
	if got != 0x220D {
		t.Errorf("Expected checksum 0x220D, got 0x%04X", got)
	}
}

func TestInternetChecksumOddLength(t *testing.T) {
	// Trailing byte is padded with a zero low byte: 0x0102 + 0x0300.
	data := []byte{0x01, 0x02, 0x03}

	got := internetChecksum(data, 0)
	if got != ^uint16(0x0402) {
		t.Errorf("Expected checksum 0x%04X, got 0x%04X", ^uint16(0x0402), got)
	}
}

func TestInternetChecksumEmpty(t *testing.T) {
	if got := internetChecksum(nil, 0); got != 0xFFFF {
		t.Errorf("Expected checksum of empty input 0xFFFF, got 0x%04X", got)
	}
}

func TestInternetChecksumCarryFold(t *testing.T) {
	// Enough 0xFFFF words to overflow 16 bits repeatedly; the sum of
	// all-ones words folds back to 0xFFFF, complement 0.
	data := make([]byte, 1024)
	for i := range data {
		data[i] = 0xFF
	}

	if got := internetChecksum(data, 0); got != 0 {
		t.Errorf("Expected checksum 0, got 0x%04X", got)
	}
}

func TestInternetChecksumSeed(t *testing.T) {
	// Seeding with the word sum of a prefix must equal checksumming the
	// concatenation. This is how the UDP pseudo-header enters the sum.
	prefix := []byte{0x0A, 0x00, 0x00, 0x01, 0x0A, 0x00, 0x00, 0x02, 0x00, 0x11, 0x00, 0x08}
	body := []byte{0x13, 0x88, 0x17, 0x70, 0x00, 0x08, 0x00, 0x00}

	joined := append(append([]byte{}, prefix...), body...)
	want := internetChecksum(joined, 0)
	got := internetChecksum(body, wordSum(prefix))
	if got != want {
		t.Errorf("Seeded checksum 0x%04X differs from joined checksum 0x%04X", got, want)
	}
}

func TestInternetChecksumSelfVerifies(t *testing.T) {
	// Writing the computed checksum into the message and summing again
	// must yield 0: the standard self-verification law.
	msg := []byte{
		0x45, 0x00, 0x00, 0x1E,
		0x00, 0x00, 0x40, 0x00,
		0x10, 0x11, 0x00, 0x00, // checksum field zeroed
		0x0A, 0x00, 0x00, 0x01,
		0x0A, 0x00, 0x00, 0x02,
	}

	cs := internetChecksum(msg, 0)
	msg[10] = byte(cs >> 8)
	msg[11] = byte(cs)

	if got := internetChecksum(msg, 0); got != 0 {
		t.Errorf("Expected populated header to sum to 0, got 0x%04X", got)
	}
}
