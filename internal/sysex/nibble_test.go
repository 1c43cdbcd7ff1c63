package sysex

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestPackUnpackInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 7, UnpackedLen, 500} {
		stream := make([]byte, n)
		rng.Read(stream)
		got, err := Unpack(Pack(stream))
		if err != nil {
			t.Fatalf("Unpack(Pack(stream)) len %d: %v", n, err)
		}
		if !bytes.Equal(got, stream) {
			t.Fatalf("Unpack(Pack(stream)) != stream for len %d", n)
		}
	}
}

func TestUnpackPackInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		packed := make([]byte, 2*(1+rng.Intn(PackedLen/2)))
		for j := range packed {
			packed[j] = byte(rng.Intn(16))
		}
		stream, err := Unpack(packed)
		if err != nil {
			t.Fatalf("Unpack: %v", err)
		}
		if !bytes.Equal(Pack(stream), packed) {
			t.Fatalf("Pack(Unpack(packed)) != packed at iteration %d", i)
		}
	}
}

func TestUnpackRejectsOddLength(t *testing.T) {
	if _, err := Unpack(make([]byte, 3)); !errors.Is(err, ErrFormat) {
		t.Fatalf("odd length: want ErrFormat, got %v", err)
	}
}

func TestUnpackRejectsNonNibbleBytes(t *testing.T) {
	for _, b := range []byte{0x10, 0x40, 0x7F} {
		if _, err := Unpack([]byte{0x00, b}); !errors.Is(err, ErrFormat) {
			t.Fatalf("byte 0x%02X: want ErrFormat, got %v", b, err)
		}
	}
}
