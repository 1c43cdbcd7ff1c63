package sysex

// Checksum computes the dump checksum of a logical preset image: the
// two's complement of the sum of all payload nibbles, masked to 7 bits.
// Summing nibbles rather than bytes means every bit of the on-wire
// payload contributes less than 2^7 to the sum, so no single-bit
// corruption of a dump can cancel out.
func Checksum(stream []byte) byte {
	var sum byte
	for _, b := range stream {
		sum += b>>4 + b&0x0F
	}
	return -sum & 0x7F
}

// VerifyChecksum reports whether claimed matches the checksum of stream.
func VerifyChecksum(stream []byte, claimed byte) bool {
	return Checksum(stream) == claimed
}

// AppendChecksum returns the packed wire payload for stream: the
// nibblized bytes followed by the stream's checksum.
func AppendChecksum(stream []byte) []byte {
	return append(Pack(stream), Checksum(stream))
}
