// Package sysex implements the wire format of Peavey PC1600 preset dumps:
// the sysex envelope, the nibble packing that keeps payload bytes 7-bit
// safe, and the dump checksum. The package is purely computational and
// performs no I/O.
package sysex

import "fmt"

const (
	Start byte = 0xF0
	End   byte = 0xF7

	// Peavey manufacturer ID (extended, three bytes) and the PC1600
	// product ID that follows it in every frame.
	ManufacturerB0 byte = 0x00
	ManufacturerB1 byte = 0x00
	ManufacturerB2 byte = 0x1B
	ProductID      byte = 0x0B

	// Opcodes observed at byte 6 of the envelope.
	OpDumpAll     byte = 0x01 // all presets, not supported
	OpDumpBuffer  byte = 0x04 // current edit buffer, the supported dump
	OpDumpRequest byte = 0x14 // ask the device to transmit its edit buffer
)

const (
	// UnpackedLen is the logical preset image size in bytes.
	UnpackedLen = 192

	// PackedLen is the nibblized payload size, excluding the checksum.
	PackedLen = UnpackedLen * 2

	headerLen = 7 // F0 00 00 1B 0B <channel> <opcode>

	// FrameLen is the total size of a well-formed buffer dump:
	// header, packed payload, checksum, end marker.
	FrameLen = headerLen + PackedLen + 1 + 1
)

// Frame is one parsed PC1600 buffer dump. It is constructed by Parse and
// never mutated; Packed includes the trailing checksum byte.
type Frame struct {
	Channel byte // global MIDI channel, 0-15
	Packed  []byte
}

// Payload returns the packed payload without the trailing checksum.
func (f Frame) Payload() []byte { return f.Packed[:len(f.Packed)-1] }

// Checksum returns the checksum byte carried by the dump.
func (f Frame) Checksum() byte { return f.Packed[len(f.Packed)-1] }

// Parse validates the sysex envelope of raw and slices out the packed
// payload. It returns ErrFormat for anything that is not a well-formed
// sysex frame of the expected length, and ErrDeviceMismatch for frames
// that belong to another device or carry an unsupported opcode.
func Parse(raw []byte) (Frame, error) {
	if len(raw) < headerLen+2 {
		return Frame{}, fmt.Errorf("%w: %d bytes is shorter than the minimum frame", ErrFormat, len(raw))
	}
	if raw[0] != Start || raw[len(raw)-1] != End {
		return Frame{}, fmt.Errorf("%w: missing sysex start/end markers", ErrFormat)
	}
	if raw[1] != ManufacturerB0 || raw[2] != ManufacturerB1 || raw[3] != ManufacturerB2 {
		return Frame{}, fmt.Errorf("%w: manufacturer ID % X", ErrDeviceMismatch, raw[1:4])
	}
	if raw[4] != ProductID {
		return Frame{}, fmt.Errorf("%w: product ID 0x%02X", ErrDeviceMismatch, raw[4])
	}
	if raw[5] > 0x0F {
		return Frame{}, fmt.Errorf("%w: channel byte 0x%02X out of range", ErrFormat, raw[5])
	}
	switch raw[6] {
	case OpDumpBuffer:
	case OpDumpAll:
		return Frame{}, fmt.Errorf("%w: all-presets dumps (opcode 0x01) are not supported", ErrDeviceMismatch)
	default:
		return Frame{}, fmt.Errorf("%w: opcode 0x%02X", ErrDeviceMismatch, raw[6])
	}
	if len(raw) != FrameLen {
		return Frame{}, fmt.Errorf("%w: frame is %d bytes, want %d", ErrFormat, len(raw), FrameLen)
	}

	packed := raw[headerLen : len(raw)-1]
	for i, b := range packed {
		if b > 0x7F {
			return Frame{}, fmt.Errorf("%w: payload byte %d has high bit set (0x%02X)", ErrFormat, i, b)
		}
	}

	f := Frame{Channel: raw[5], Packed: make([]byte, len(packed))}
	copy(f.Packed, packed)
	return f, nil
}

// Build wraps a packed payload (checksum included) in the dump envelope.
// It fails with ErrFormat if the payload length or channel is wrong.
func Build(channel byte, packed []byte) ([]byte, error) {
	if channel > 0x0F {
		return nil, fmt.Errorf("%w: channel %d out of range 0-15", ErrFormat, channel)
	}
	if len(packed) != PackedLen+1 {
		return nil, fmt.Errorf("%w: packed payload is %d bytes, want %d", ErrFormat, len(packed), PackedLen+1)
	}
	raw := make([]byte, 0, FrameLen)
	raw = append(raw, Start, ManufacturerB0, ManufacturerB1, ManufacturerB2, ProductID, channel, OpDumpBuffer)
	raw = append(raw, packed...)
	raw = append(raw, End)
	return raw, nil
}

// DumpRequest builds the frame that asks a PC1600 listening on channel to
// transmit its edit buffer.
func DumpRequest(channel byte) []byte {
	return []byte{Start, ManufacturerB0, ManufacturerB1, ManufacturerB2, ProductID, channel & 0x0F, OpDumpRequest, End}
}
