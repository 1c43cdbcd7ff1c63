package preset

import (
	"encoding/binary"
	"fmt"

	"pc1600ctl/internal/sysex"
)

const streamBits = sysex.UnpackedLen * 8

// Document is the named-parameter form of one preset, the only
// representation crossing the structured-document boundary. Params holds
// every schema parameter except the name, which is ASCII on the wire,
// and the global channel, which lives in the envelope rather than the
// preset image.
type Document struct {
	Name          string
	GlobalChannel int
	Params        map[string]int
}

// DecodeStream maps an unpacked preset image onto a Document. A value
// outside its declared range fails immediately with a FieldError; the
// codec never clamps.
func DecodeStream(stream []byte) (*Document, error) {
	if len(stream) != sysex.UnpackedLen {
		return nil, fmt.Errorf("%w: stream is %d bytes, want %d", sysex.ErrFormat, len(stream), sysex.UnpackedLen)
	}
	doc := &Document{Params: make(map[string]int, len(Schema))}
	for _, f := range Schema {
		switch f.Kind {
		case KindASCII:
			name, err := decodeName(stream, f)
			if err != nil {
				return nil, err
			}
			doc.Name = name
		case KindReserved:
			if v := readBits(stream, f.Offset, f.Width); v != 0 {
				return nil, &FieldError{Name: fmt.Sprintf("reserved@%d", f.Offset/8), Value: v}
			}
		default:
			v := readBits(stream, f.Offset, f.Width)
			if v < f.Min || v > f.Max {
				return nil, &FieldError{Name: f.Name, Value: v, Min: f.Min, Max: f.Max}
			}
			doc.Params[f.Name] = v
		}
	}
	return doc, nil
}

// EncodeStream is the inverse mapping: it writes every schema parameter
// of doc into a fresh zeroed image. Every parameter must be present and
// in range, and doc must not carry parameters the schema does not know.
func EncodeStream(doc *Document) ([]byte, error) {
	known := make(map[string]bool, len(Schema))
	stream := make([]byte, sysex.UnpackedLen)
	for _, f := range Schema {
		switch f.Kind {
		case KindASCII:
			if err := encodeName(stream, f, doc.Name); err != nil {
				return nil, err
			}
		case KindReserved:
			// already zero
		default:
			known[f.Name] = true
			v, ok := doc.Params[f.Name]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingField, f.Name)
			}
			if v < f.Min || v > f.Max {
				return nil, &FieldError{Name: f.Name, Value: v, Min: f.Min, Max: f.Max}
			}
			writeBits(stream, f.Offset, f.Width, v)
		}
	}
	for name := range doc.Params {
		if !known[name] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	return stream, nil
}

// decodeName reads the ASCII name region. The device pads short names;
// trailing NULs are trimmed, everything else (including trailing spaces)
// is kept so the document round-trips byte-exactly.
func decodeName(stream []byte, f Field) (string, error) {
	raw := stream[f.Offset/8 : f.Offset/8+f.Count]
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	for i := 0; i < end; i++ {
		if c := raw[i]; c < 32 || c > 126 {
			return "", &FieldError{Name: f.Name, Value: int(c), Min: 32, Max: 126}
		}
	}
	return string(raw[:end]), nil
}

func encodeName(stream []byte, f Field, name string) error {
	if len(name) > f.Count {
		return &FieldError{Name: f.Name, Value: len(name), Min: 0, Max: f.Count}
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c < 32 || c > 126 {
			return &FieldError{Name: f.Name, Value: int(c), Min: 32, Max: 126}
		}
	}
	copy(stream[f.Offset/8:], name)
	return nil
}

// readBits extracts the value at a nibble-aligned bit position. Widths
// are constrained by checkCoverage to 4, 8 or 16.
func readBits(stream []byte, off, width int) int {
	switch width {
	case 4:
		b := stream[off/8]
		if off%8 == 0 {
			return int(b >> 4)
		}
		return int(b & 0x0F)
	case 8:
		return int(stream[off/8])
	default:
		return int(binary.BigEndian.Uint16(stream[off/8:]))
	}
}

func writeBits(stream []byte, off, width, v int) {
	switch width {
	case 4:
		if off%8 == 0 {
			stream[off/8] = stream[off/8]&0x0F | byte(v)<<4
		} else {
			stream[off/8] = stream[off/8]&0xF0 | byte(v)
		}
	case 8:
		stream[off/8] = byte(v)
	default:
		binary.BigEndian.PutUint16(stream[off/8:], uint16(v))
	}
}
