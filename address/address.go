// Package address assembles, parses and validates the network's public
// wallet address format: a varint network prefix, a 32-byte public key and
// a 4-byte Keccak checksum, wrapped in block-structured Base58.
package address

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/multiformats/go-varint"
	"golang.org/x/crypto/sha3"

	"github.com/PastellaOrg/pastella-wallet/base58"
)

// Prefix is the network identifier embedded at the front of every address.
// Its varint encoding is what makes encoded addresses start with "PAS".
const Prefix uint64 = 0x198004

const (
	// PublicKeySize is the byte length of the compressed public key.
	PublicKeySize = 32

	// ChecksumSize is the byte length of the embedded checksum.
	ChecksumSize = 4

	// minRawSize is the smallest decoded layout that could hold a prefix,
	// key and checksum.
	minRawSize = 38
)

// ErrTooShort is returned when a decoded address cannot hold the full
// prefix + public key + checksum layout.
var ErrTooShort = errors.New("decoded address is shorter than minimum layout")

// Decoded is the parsed byte layout of an address. The checksum is carried
// as found; use Validate to confirm it.
type Decoded struct {
	Prefix    uint64
	PublicKey [PublicKeySize]byte
	Checksum  [ChecksumSize]byte
}

// Encode builds the address string for a public key: varint prefix, key and
// checksum concatenated, then Base58 block encoded.
func Encode(publicKey [PublicKeySize]byte) string {
	body := append(varint.ToUvarint(Prefix), publicKey[:]...)
	sum := checksum(body)
	return base58.Encode(append(body, sum[:]...))
}

// Decode parses an address string into its layout fields. It verifies
// structure only, not checksum correctness or prefix identity.
func Decode(addr string) (*Decoded, error) {
	raw, err := base58.Decode(addr)
	if err != nil {
		return nil, err
	}
	if len(raw) < minRawSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrTooShort, len(raw))
	}

	prefix, prefixLen, err := varint.FromUvarint(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: bad prefix varint", base58.ErrInvalidEncoding)
	}
	if len(raw) != prefixLen+PublicKeySize+ChecksumSize {
		if len(raw) < prefixLen+PublicKeySize+ChecksumSize {
			return nil, fmt.Errorf("%w: got %d bytes", ErrTooShort, len(raw))
		}
		return nil, fmt.Errorf("%w: %d trailing bytes", base58.ErrInvalidEncoding, len(raw)-prefixLen-PublicKeySize-ChecksumSize)
	}

	decoded := &Decoded{Prefix: prefix}
	copy(decoded.PublicKey[:], raw[prefixLen:prefixLen+PublicKeySize])
	copy(decoded.Checksum[:], raw[prefixLen+PublicKeySize:])
	return decoded, nil
}

// Validate reports whether addr is a well-formed address for this network:
// it must decode, carry the network prefix, and embed a checksum matching
// the recomputed hash of its own prefix and public key. It never returns an
// error; all failures collapse to false.
func Validate(addr string) bool {
	decoded, err := Decode(addr)
	if err != nil {
		return false
	}
	if decoded.Prefix != Prefix {
		return false
	}
	body := append(varint.ToUvarint(decoded.Prefix), decoded.PublicKey[:]...)
	sum := checksum(body)
	return bytes.Equal(sum[:], decoded.Checksum[:])
}

// checksum is the first 4 bytes of the legacy Keccak-256 digest of body.
func checksum(body []byte) (sum [ChecksumSize]byte) {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(body)
	copy(sum[:], hash.Sum(nil))
	return sum
}
