package mnemonic

import (
	"errors"
	mrand "math/rand"
	"reflect"
	"testing"

	"github.com/PastellaOrg/pastella-wallet/wordlist"
)

// canonicalSeed is the cross-implementation conformance fixture: the scalar
// value 1 as a little-endian 32-byte seed.
func canonicalSeed() (seed [SeedSize]byte) {
	seed[0] = 1
	return seed
}

func TestEncodeCanonicalSeed(t *testing.T) {
	words := Encode(canonicalSeed())

	// The first 4-byte group holds the value 1, which spreads to index 1
	// for all three of its words; the remaining seven groups are zero.
	expected := make([]string, 0, WordCount)
	for i := 0; i < 3; i++ {
		expected = append(expected, wordlist.WordList[1])
	}
	for i := 3; i < DataWordCount; i++ {
		expected = append(expected, wordlist.WordList[0])
	}
	expected = append(expected, ChecksumWord(expected))

	if !reflect.DeepEqual(words, expected) {
		t.Fatalf("canonical seed encoding mismatch\nWanted %v\nGot    %v", expected, words)
	}

	decoded, err := Decode(words)
	if err != nil {
		t.Fatalf("failed to decode canonical phrase: %s", err)
	}
	if decoded != canonicalSeed() {
		t.Fatalf("canonical phrase decoded to wrong seed: %x", decoded)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := mrand.New(mrand.NewSource(1626))

	for trial := 0; trial < 256; trial++ {
		var seed [SeedSize]byte
		rng.Read(seed[:])

		words := Encode(seed)
		if len(words) != WordCount {
			t.Fatalf("encoded phrase has %d words, expected %d", len(words), WordCount)
		}
		if !VerifyChecksum(words) {
			t.Fatalf("freshly encoded phrase fails checksum: %v", words)
		}

		decoded, err := Decode(words)
		if err != nil {
			t.Fatalf("failed to decode phrase for seed %x: %s", seed, err)
		}
		if decoded != seed {
			t.Fatalf("round trip mismatch\nWanted %x\nGot    %x", seed, decoded)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := Encode(canonicalSeed())

	t.Run("wrong word count", func(t *testing.T) {
		if _, err := Decode(valid[:DataWordCount]); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("expected ErrInvalidLength, got %v", err)
		}
		if _, err := Decode(nil); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("expected ErrInvalidLength for empty phrase, got %v", err)
		}
	})

	t.Run("unknown word", func(t *testing.T) {
		tampered := append([]string(nil), valid...)
		tampered[5] = "zzzzzz"
		if _, err := Decode(tampered); !errors.Is(err, ErrUnknownWord) {
			t.Errorf("expected ErrUnknownWord, got %v", err)
		}
	})

	t.Run("foreign triplet", func(t *testing.T) {
		// Indices (10, 9, 8) reconstruct to a value above 2^32-1, which
		// no 4-byte seed group can produce.
		tampered := append([]string(nil), valid...)
		tampered[0] = wordlist.WordList[10]
		tampered[1] = wordlist.WordList[9]
		tampered[2] = wordlist.WordList[8]
		if _, err := Decode(tampered); !errors.Is(err, ErrEncoding) {
			t.Errorf("expected ErrEncoding, got %v", err)
		}
	})
}

func TestVerifyChecksum(t *testing.T) {
	valid := Encode(canonicalSeed())

	if !VerifyChecksum(valid) {
		t.Fatal("valid phrase fails checksum verification")
	}
	if VerifyChecksum(valid[:DataWordCount]) {
		t.Fatal("24-word phrase passes checksum verification")
	}

	tampered := append([]string(nil), valid...)
	tampered[WordCount-1] = wordlist.WordList[100]
	if tampered[WordCount-1] == valid[WordCount-1] {
		t.Fatal("fixture error: tampered checksum word equals the real one")
	}
	if VerifyChecksum(tampered) {
		t.Fatal("phrase with tampered checksum word passes verification")
	}
}

// TestChecksumTamperDetection replaces single data words in valid phrases
// and confirms the checksum catches nearly all of them. Detection is
// probabilistic (the checksum space is only the 24 data words), so the test
// asserts a detection rate rather than perfection.
func TestChecksumTamperDetection(t *testing.T) {
	rng := mrand.New(mrand.NewSource(24))

	const trials = 300
	detected := 0
	for trial := 0; trial < trials; trial++ {
		var seed [SeedSize]byte
		rng.Read(seed[:])
		words := Encode(seed)

		position := rng.Intn(DataWordCount)
		replacement := wordlist.WordList[rng.Intn(wordlist.Count)]
		if replacement == words[position] {
			continue
		}
		words[position] = replacement

		if !VerifyChecksum(words) {
			detected++
		}
	}

	if detected < trials*9/10 {
		t.Fatalf("checksum caught only %d of %d single-word tampers", detected, trials)
	}
}
