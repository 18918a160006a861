// Package mnemonic converts 32-byte wallet seeds to and from 25-word
// recovery phrases: 24 data words carrying the seed, plus one checksum word.
//
// The seed is consumed in eight little-endian 32-bit groups. Each group is
// spread across three word indices with a rolling offset, so the phrase
// cannot be decoded against a reordered or foreign dictionary without
// tripping the consistency check.
package mnemonic

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math"
	"strings"

	"github.com/PastellaOrg/pastella-wallet/wordlist"
)

// SeedSize is the byte length of the seed a phrase encodes.
const SeedSize = 32

const (
	// WordCount is the total phrase length: DataWordCount plus the
	// trailing checksum word.
	WordCount = 25

	// DataWordCount is the number of words carrying seed data.
	DataWordCount = 24

	// checksumPrefixLen is how many leading characters of each data word
	// feed the checksum.
	checksumPrefixLen = 3
)

// ErrInvalidLength is returned when decoding a phrase whose word count is
// not exactly WordCount.
var ErrInvalidLength = errors.New("mnemonic is not the correct length")

// ErrUnknownWord is returned when a phrase contains a word outside the
// dictionary.
var ErrUnknownWord = errors.New("word is not a member of the wordlist")

// ErrEncoding is returned when a phrase's word triplets fail the internal
// consistency check. Well-formed phrases produced by Encode can never
// trigger it; it signals a corrupted phrase or one produced by a different
// encoding scheme.
var ErrEncoding = errors.New("mnemonic fails triplet consistency check")

// ErrInvalidChecksum is returned by callers when a phrase's checksum word
// does not match the word recomputed from its data words.
var ErrInvalidChecksum = errors.New("failed to validate mnemonic checksum word")

// Encode converts a seed into its 25-word recovery phrase. The first 24
// words encode the seed; the final word is the checksum word.
func Encode(seed [SeedSize]byte) []string {
	const listLen = uint64(wordlist.Count)

	words := make([]string, 0, WordCount)
	for group := 0; group < SeedSize/4; group++ {
		val := uint64(binary.LittleEndian.Uint32(seed[group*4:]))

		w1 := val % listLen
		w2 := (val/listLen + w1) % listLen
		w3 := (val/(listLen*listLen) + w2) % listLen

		words = append(words, wordlist.WordList[w1], wordlist.WordList[w2], wordlist.WordList[w3])
	}

	return append(words, ChecksumWord(words))
}

// Decode converts the first 24 words of a phrase back into the seed they
// encode. It does not verify the checksum word; see VerifyChecksum.
func Decode(words []string) ([SeedSize]byte, error) {
	const listLen = uint64(wordlist.Count)

	var seed [SeedSize]byte
	if len(words) != WordCount {
		return seed, fmt.Errorf("%w: expected %d words, got %d", ErrInvalidLength, WordCount, len(words))
	}

	for group := 0; group < SeedSize/4; group++ {
		w1, err := wordIndex(words[group*3])
		if err != nil {
			return seed, err
		}
		w2, err := wordIndex(words[group*3+1])
		if err != nil {
			return seed, err
		}
		w3, err := wordIndex(words[group*3+2])
		if err != nil {
			return seed, err
		}

		val := w1 +
			listLen*((listLen-w1+w2)%listLen) +
			listLen*listLen*((listLen-w2+w3)%listLen)

		if val%listLen != w1 || val > math.MaxUint32 {
			return seed, ErrEncoding
		}
		binary.LittleEndian.PutUint32(seed[group*4:], uint32(val))
	}

	return seed, nil
}

// ChecksumWord computes the checksum word for a phrase's 24 data words: the
// CRC-32 of the concatenated 3-character word prefixes selects one of the
// data words themselves. words must hold at least DataWordCount entries.
func ChecksumWord(words []string) string {
	var prefixes strings.Builder
	for _, word := range words[:DataWordCount] {
		if len(word) > checksumPrefixLen {
			word = word[:checksumPrefixLen]
		}
		prefixes.WriteString(word)
	}
	return words[crc32.ChecksumIEEE([]byte(prefixes.String()))%DataWordCount]
}

// VerifyChecksum reports whether the phrase is exactly 25 words long and its
// final word matches the checksum word recomputed from the first 24. It
// fails closed: any malformed input returns false.
func VerifyChecksum(words []string) bool {
	if len(words) != WordCount {
		return false
	}
	return words[WordCount-1] == ChecksumWord(words)
}

func wordIndex(word string) (uint64, error) {
	index, ok := wordlist.WordMap[word]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	return uint64(index), nil
}
