package sysex

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

// validDump builds a well-formed buffer dump around the given stream.
func validDump(t *testing.T, channel byte, stream []byte) []byte {
	t.Helper()
	if len(stream) != UnpackedLen {
		t.Fatalf("test stream is %d bytes, want %d", len(stream), UnpackedLen)
	}
	raw, err := Build(channel, AppendChecksum(stream))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return raw
}

func randomStream(rng *rand.Rand) []byte {
	stream := make([]byte, UnpackedLen)
	rng.Read(stream)
	return stream
}

func TestParseBuildRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		raw := validDump(t, byte(rng.Intn(16)), randomStream(rng))
		f, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		rebuilt, err := Build(f.Channel, f.Packed)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if !bytes.Equal(rebuilt, raw) {
			t.Fatalf("round trip mismatch at iteration %d", i)
		}
	}
}

func TestParseRejectsTruncated(t *testing.T) {
	raw := validDump(t, 0, make([]byte, UnpackedLen))
	for _, n := range []int{0, 1, 8, len(raw) - 1} {
		if _, err := Parse(raw[:n]); !errors.Is(err, ErrFormat) {
			t.Fatalf("Parse of %d bytes: want ErrFormat, got %v", n, err)
		}
	}
}

func TestParseRejectsCorruptMarkers(t *testing.T) {
	raw := validDump(t, 0, make([]byte, UnpackedLen))

	noStart := append([]byte(nil), raw...)
	noStart[0] = 0x00
	if _, err := Parse(noStart); !errors.Is(err, ErrFormat) {
		t.Fatalf("corrupt start marker: want ErrFormat, got %v", err)
	}

	noEnd := append([]byte(nil), raw...)
	noEnd[len(noEnd)-1] = 0x00
	if _, err := Parse(noEnd); !errors.Is(err, ErrFormat) {
		t.Fatalf("corrupt end marker: want ErrFormat, got %v", err)
	}
}

func TestParseRejectsForeignDevice(t *testing.T) {
	raw := validDump(t, 0, make([]byte, UnpackedLen))

	cases := []struct {
		name string
		idx  int
		val  byte
	}{
		{"manufacturer", 3, 0x3E}, // some other manufacturer
		{"product", 4, 0x0C},      // Peavey, but not a PC1600
	}
	for _, tc := range cases {
		bad := append([]byte(nil), raw...)
		bad[tc.idx] = tc.val
		if _, err := Parse(bad); !errors.Is(err, ErrDeviceMismatch) {
			t.Fatalf("%s mismatch: want ErrDeviceMismatch, got %v", tc.name, err)
		}
	}
}

func TestParseRejectsUnsupportedOpcodes(t *testing.T) {
	raw := validDump(t, 0, make([]byte, UnpackedLen))
	for _, op := range []byte{OpDumpAll, OpDumpRequest, 0x7F} {
		bad := append([]byte(nil), raw...)
		bad[6] = op
		if _, err := Parse(bad); !errors.Is(err, ErrDeviceMismatch) {
			t.Fatalf("opcode 0x%02X: want ErrDeviceMismatch, got %v", op, err)
		}
	}
}

func TestParseRejectsHighBitPayload(t *testing.T) {
	raw := validDump(t, 0, make([]byte, UnpackedLen))
	bad := append([]byte(nil), raw...)
	bad[10] |= 0x80
	if _, err := Parse(bad); !errors.Is(err, ErrFormat) {
		t.Fatalf("high bit in payload: want ErrFormat, got %v", err)
	}
}

func TestBuildValidation(t *testing.T) {
	packed := make([]byte, PackedLen+1)
	if _, err := Build(16, packed); !errors.Is(err, ErrFormat) {
		t.Fatalf("channel 16: want ErrFormat, got %v", err)
	}
	if _, err := Build(0, packed[:PackedLen]); !errors.Is(err, ErrFormat) {
		t.Fatalf("short payload: want ErrFormat, got %v", err)
	}
}

func TestDumpRequest(t *testing.T) {
	want := []byte{0xF0, 0x00, 0x00, 0x1B, 0x0B, 0x02, 0x14, 0xF7}
	if got := DumpRequest(2); !bytes.Equal(got, want) {
		t.Fatalf("DumpRequest(2) = % X, want % X", got, want)
	}
}
