package sysex

import "fmt"

// The PC1600 keeps its payload 7-bit safe by nibblizing: every logical
// byte travels as two bytes, high nibble first. Group size is therefore
// two packed bytes per logical byte.

// Unpack reconstructs the logical preset image from a nibblized payload.
// It fails with ErrFormat if the payload length is odd or any byte holds
// more than a nibble.
func Unpack(packed []byte) ([]byte, error) {
	if len(packed)%2 != 0 {
		return nil, fmt.Errorf("%w: packed payload length %d is not a multiple of 2", ErrFormat, len(packed))
	}
	stream := make([]byte, len(packed)/2)
	for i := range stream {
		hi, lo := packed[2*i], packed[2*i+1]
		if hi > 0x0F || lo > 0x0F {
			return nil, fmt.Errorf("%w: byte pair %d is not a nibble pair (0x%02X 0x%02X)", ErrFormat, i, hi, lo)
		}
		stream[i] = hi<<4 | lo
	}
	return stream, nil
}

// Pack is the exact inverse of Unpack. It is total: any byte stream packs.
func Pack(stream []byte) []byte {
	packed := make([]byte, len(stream)*2)
	for i, b := range stream {
		packed[2*i] = b >> 4
		packed[2*i+1] = b & 0x0F
	}
	return packed
}
