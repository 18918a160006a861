package wallet

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"filippo.io/edwards25519"
)

// SeedSize is the byte length of a private key seed.
const SeedSize = 32

// maxKeygenAttempts bounds the rejection sampling loop in GenerateKeyPair.
// A uniform 32-byte draw lands below the group order roughly once in
// sixteen tries, so the bound is never reached with a working random
// source; it exists to make the function total.
const maxKeygenAttempts = 1000

// ErrEntropyExhausted is returned when the random source fails to produce a
// scalar below the curve group order within the attempt bound. Callers
// should treat it as fatal: it indicates a broken random source, not bad
// luck.
var ErrEntropyExhausted = errors.New("random source failed to produce a valid scalar")

// curveOrder is the order of the ed25519 base point subgroup:
// 2^252 + 27742317777372353535851937790883648493.
var curveOrder, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10,
)

// KeyPair holds a private scalar and the public curve point derived from
// it, both in their 32-byte wire encodings. The private key is the seed
// interpreted as a little-endian integer; the public key is the compressed
// point encoding.
type KeyPair struct {
	PrivateKey [SeedSize]byte
	PublicKey  [SeedSize]byte
}

// GenerateKeyPair draws 32-byte seeds from random until one interprets as a
// scalar below the curve group order, then derives the matching public
// point. Draws at or above the order are rejected and redrawn rather than
// reduced, so fresh private keys are always canonical scalars.
func GenerateKeyPair(random io.Reader) (*KeyPair, error) {
	var seed [SeedSize]byte
	for attempt := 0; attempt < maxKeygenAttempts; attempt++ {
		if _, err := io.ReadFull(random, seed[:]); err != nil {
			return nil, fmt.Errorf("failed to read random seed data: %w", err)
		}
		if scalarFromSeed(seed).Cmp(curveOrder) < 0 {
			return DeriveKeyPair(seed, true), nil
		}
	}
	return nil, ErrEntropyExhausted
}

// DeriveKeyPair computes the keypair for a 32-byte seed.
//
// The seed is multiplied by the base point as-is, with none of the bit
// clamping or SHA-512 expansion that standard ed25519 signing keys go
// through. The network derives addresses from raw scalars, and matching its
// addresses requires matching that behavior exactly.
//
// If assumeValid is false, a seed at or above the curve group order is
// reduced modulo the order and the reduced value becomes the private key.
// If assumeValid is true the seed is kept untouched; imported seeds are
// trusted as given. Either way the public point is computed through the
// reduced scalar, which cannot change the result: the base point has order
// equal to the group order, so s*B and (s mod order)*B are the same point.
func DeriveKeyPair(seed [SeedSize]byte, assumeValid bool) *KeyPair {
	scalar := scalarFromSeed(seed)
	if !assumeValid && scalar.Cmp(curveOrder) >= 0 {
		scalar.Mod(scalar, curveOrder)
		seed = seedFromScalar(scalar)
	}

	reduced := seedFromScalar(scalar.Mod(scalar, curveOrder))
	sc, err := edwards25519.NewScalar().SetCanonicalBytes(reduced[:])
	if err != nil {
		panic(fmt.Sprintf("reduced scalar not canonical: %s", err))
	}

	keyPair := &KeyPair{PrivateKey: seed}
	copy(keyPair.PublicKey[:], edwards25519.NewIdentityPoint().ScalarBaseMult(sc).Bytes())
	return keyPair
}

// scalarFromSeed interprets a seed as a little-endian unsigned integer.
func scalarFromSeed(seed [SeedSize]byte) *big.Int {
	var reversed [SeedSize]byte
	for i, b := range seed {
		reversed[SeedSize-1-i] = b
	}
	return new(big.Int).SetBytes(reversed[:])
}

// seedFromScalar writes a non-negative integer below 2^256 back into the
// little-endian 32-byte seed encoding.
func seedFromScalar(scalar *big.Int) (seed [SeedSize]byte) {
	scalar.FillBytes(seed[:])
	for i, j := 0, SeedSize-1; i < j; i, j = i+1, j-1 {
		seed[i], seed[j] = seed[j], seed[i]
	}
	return seed
}
