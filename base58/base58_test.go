package base58

import (
	"bytes"
	"encoding/hex"
	"errors"
	mrand "math/rand"
	"testing"
)

func TestKnownVectors(t *testing.T) {
	type Fixture struct {
		RawHex  string
		Encoded string
	}

	fixtures := []*Fixture{
		{"", ""},
		{"00", "11"},
		{"ff", "5Q"},
		{"0000000000000000", "11111111111"},
		{"ffffffffffffffff", "jpXCZedGfVQ"},
		{"deadbeef", "6h8cQN"},
		{"010203040506070809", "1An6UebxCZd1A"},
	}

	for _, fixture := range fixtures {
		raw, err := hex.DecodeString(fixture.RawHex)
		if err != nil {
			t.Fatalf("bad fixture hex %q: %s", fixture.RawHex, err)
		}

		if encoded := Encode(raw); encoded != fixture.Encoded {
			t.Errorf("encoding %q\nWanted %s\nGot    %s", fixture.RawHex, fixture.Encoded, encoded)
		}

		decoded, err := Decode(fixture.Encoded)
		if err != nil {
			t.Errorf("failed to decode %q: %s", fixture.Encoded, err)
			continue
		}
		if !bytes.Equal(decoded, raw) {
			t.Errorf("decoding %q\nWanted %s\nGot    %x", fixture.Encoded, fixture.RawHex, decoded)
		}
	}
}

func TestBlockWidthInvariant(t *testing.T) {
	expectedPartialWidths := []int{0, 2, 3, 5, 6, 7, 9, 10, 11}

	for n := 0; n <= 8; n++ {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = 0xFF
		}
		if width := len(Encode(buf)); width != expectedPartialWidths[n] {
			t.Errorf("encoding %d bytes produced %d characters, expected %d", n, width, expectedPartialWidths[n])
		}
	}

	// Full blocks always contribute exactly 11 characters, independent
	// of their value.
	for _, blocks := range []int{1, 2, 4, 8} {
		zero := make([]byte, blocks*8)
		if width := len(Encode(zero)); width != blocks*11 {
			t.Errorf("encoding %d full blocks produced %d characters, expected %d", blocks, width, blocks*11)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := mrand.New(mrand.NewSource(58))

	for size := 0; size <= 64; size++ {
		for trial := 0; trial < 16; trial++ {
			buf := make([]byte, size)
			rng.Read(buf)

			decoded, err := Decode(Encode(buf))
			if err != nil {
				t.Fatalf("failed to decode %d-byte round trip: %s", size, err)
			}
			if !bytes.Equal(decoded, buf) {
				t.Fatalf("round trip mismatch for %x: got %x", buf, decoded)
			}
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("length matches no block layout", func(t *testing.T) {
		for _, encoded := range []string{"1", "1111", "11111111", "111111111111"} {
			if _, err := Decode(encoded); !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("expected ErrInvalidEncoding for length %d, got %v", len(encoded), err)
			}
		}
	})

	t.Run("character outside alphabet", func(t *testing.T) {
		for _, encoded := range []string{"0A", "O1", "I1", "l1", "1!"} {
			if _, err := Decode(encoded); !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("expected ErrInvalidEncoding for %q, got %v", encoded, err)
			}
		}
	})

	t.Run("block value overflow", func(t *testing.T) {
		// "zz" is 3363, too large for the single byte a 2-character
		// block must decode to.
		if _, err := Decode("zz"); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("expected ErrInvalidEncoding for overflowing block, got %v", err)
		}
	})
}
