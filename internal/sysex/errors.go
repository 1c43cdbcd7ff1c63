package sysex

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports a frame or payload that does not match the PC1600
	// dump format: bad markers, wrong length, bytes outside the 7-bit range.
	ErrFormat = errors.New("sysex: malformed frame")

	// ErrDeviceMismatch reports a structurally valid sysex frame that was
	// produced by some other device or carries an unsupported opcode.
	ErrDeviceMismatch = errors.New("sysex: not a PC1600 preset dump")

	// ErrChecksum reports an integrity failure on a received dump.
	ErrChecksum = errors.New("sysex: checksum mismatch")
)

// ChecksumError carries the computed and claimed checksum values.
type ChecksumError struct {
	Want byte // computed over the received payload
	Got  byte // trailing byte of the packed payload
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("sysex: checksum mismatch: computed 0x%02X, dump carries 0x%02X", e.Want, e.Got)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksum }
