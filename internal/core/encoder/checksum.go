// Package encoder assembles synthetic link-layer frames from packet
// descriptors.
package encoder

// wordSum accumulates the unfolded 16-bit big-endian word sum over b.
// An odd trailing byte is padded with a zero low byte.
func wordSum(b []byte) uint32 {
	var sum uint32
	n := len(b)
	for i := 0; i+1 < n; i += 2 {
		sum += uint32(b[i])<<8 | uint32(b[i+1])
	}
	if n&1 != 0 {
		sum += uint32(b[n-1]) << 8
	}
	return sum
}

// internetChecksum computes the RFC 1071 Internet checksum over b seeded
// with initial: one's-complement sum of 16-bit words with the carries
// folded back into the low 16 bits, then complemented. The UDP encoder
// passes its pseudo-header word sum as the seed.
func internetChecksum(b []byte, initial uint32) uint16 {
	sum := initial + wordSum(b)
	for sum>>16 != 0 {
		sum = sum&0xFFFF + sum>>16
	}
	return ^uint16(sum)
}
