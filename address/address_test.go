package address

import (
	"bytes"
	"encoding/hex"
	"errors"
	mrand "math/rand"
	"strings"
	"testing"

	"github.com/multiformats/go-varint"
	"golang.org/x/crypto/sha3"

	"github.com/PastellaOrg/pastella-wallet/base58"
)

func publicKeyFromHex(t *testing.T, pubHex string) (pub [PublicKeySize]byte) {
	t.Helper()
	raw, err := hex.DecodeString(pubHex)
	if err != nil || len(raw) != PublicKeySize {
		t.Fatalf("bad fixture public key %q", pubHex)
	}
	copy(pub[:], raw)
	return pub
}

func TestEncodeGolden(t *testing.T) {
	type Fixture struct {
		PublicKeyHex string
		Address      string
	}

	// Public keys are the ed25519 base point multiples for scalars 1 and 2.
	fixtures := []*Fixture{
		{
			PublicKeyHex: "5866666666666666666666666666666666666666666666666666666666666666",
			Address:      "PAS1JvgLv1jJ8QgRfFWTzmJ8QgRfFWTzmJ8QgRfFWTzm4t51JBdCpc",
		},
		{
			PublicKeyHex: "c9a3f86aae465f0e56513864510f3997561fa2c9e85ea21dc2292309f3cd6022",
			Address:      "PAS1XhggzxmCmh1mHADqPe3YhfxfRoJs1Gq4YyNFZBA28nQP4xBPSc",
		},
	}

	for _, fixture := range fixtures {
		pub := publicKeyFromHex(t, fixture.PublicKeyHex)

		encoded := Encode(pub)
		if encoded != fixture.Address {
			t.Errorf("address mismatch for %s\nWanted %s\nGot    %s", fixture.PublicKeyHex, fixture.Address, encoded)
		}
		if !strings.HasPrefix(encoded, "PAS") {
			t.Errorf("address %s does not carry the network's human prefix", encoded)
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("failed to decode %s: %s", encoded, err)
		}
		if decoded.Prefix != Prefix {
			t.Errorf("decoded prefix 0x%x, expected 0x%x", decoded.Prefix, Prefix)
		}
		if decoded.PublicKey != pub {
			t.Errorf("decoded public key mismatch\nWanted %x\nGot    %x", pub, decoded.PublicKey)
		}
		if !Validate(encoded) {
			t.Errorf("golden address %s fails validation", encoded)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := mrand.New(mrand.NewSource(0x198004))

	for trial := 0; trial < 256; trial++ {
		var pub [PublicKeySize]byte
		rng.Read(pub[:])

		encoded := Encode(pub)

		// The layout is always 39 raw bytes: 4 full blocks plus a 7-byte
		// partial, giving a fixed 54-character address.
		if len(encoded) != 54 {
			t.Fatalf("address %s has %d characters, expected 54", encoded, len(encoded))
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("failed to decode round trip address: %s", err)
		}
		if decoded.PublicKey != pub {
			t.Fatalf("round trip public key mismatch\nWanted %x\nGot    %x", pub, decoded.PublicKey)
		}
		if !Validate(encoded) {
			t.Fatalf("round trip address %s fails validation", encoded)
		}
	}
}

func TestValidateTamper(t *testing.T) {
	var pub [PublicKeySize]byte
	pub[0] = 0x58
	encoded := Encode(pub)
	if !Validate(encoded) {
		t.Fatal("untampered address fails validation")
	}

	// Swap each character for a different alphabet character and confirm
	// the checksum rejects the result.
	for i := 0; i < len(encoded); i++ {
		tampered := []byte(encoded)
		if tampered[i] == '2' {
			tampered[i] = '3'
		} else {
			tampered[i] = '2'
		}
		if Validate(string(tampered)) {
			t.Fatalf("tampered address %s passes validation", tampered)
		}
	}
}

func TestValidateForeignPrefix(t *testing.T) {
	// A structurally perfect address carrying the wrong network prefix,
	// with a checksum that is correct for its own contents.
	var pub [PublicKeySize]byte
	pub[0] = 0xAB

	body := append(varint.ToUvarint(0x3bad01), pub[:]...)
	hash := sha3.NewLegacyKeccak256()
	hash.Write(body)
	foreign := base58.Encode(append(body, hash.Sum(nil)[:ChecksumSize]...))

	if _, err := Decode(foreign); err != nil {
		t.Fatalf("foreign-prefix address should still decode, got %s", err)
	}
	if Validate(foreign) {
		t.Fatal("address with foreign network prefix passes validation")
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("malformed base58", func(t *testing.T) {
		if _, err := Decode("not!an@address"); !errors.Is(err, base58.ErrInvalidEncoding) {
			t.Errorf("expected ErrInvalidEncoding, got %v", err)
		}
	})

	t.Run("too short", func(t *testing.T) {
		short := base58.Encode(bytes.Repeat([]byte{1}, 20))
		if _, err := Decode(short); !errors.Is(err, ErrTooShort) {
			t.Errorf("expected ErrTooShort, got %v", err)
		}
	})

	t.Run("trailing bytes", func(t *testing.T) {
		long := base58.Encode(append(varint.ToUvarint(Prefix), bytes.Repeat([]byte{1}, 48)...))
		if _, err := Decode(long); !errors.Is(err, base58.ErrInvalidEncoding) {
			t.Errorf("expected ErrInvalidEncoding for oversized layout, got %v", err)
		}
	})
}
