// Package wallet implements the deterministic key and address engine for
// the Pastella network: random seed generation, 25-word mnemonic encoding,
// raw ed25519 keypair derivation and checksummed Base58 address
// construction. Every operation is an offline, side-effect-free data
// transformation; the only external input is the random source used when
// generating fresh wallets.
package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/PastellaOrg/pastella-wallet/address"
	"github.com/PastellaOrg/pastella-wallet/mnemonic"
	"github.com/PastellaOrg/pastella-wallet/wordlist"
)

// ErrInvalidSeed is returned when importing a private key string which is
// not exactly 32 bytes of hex.
var ErrInvalidSeed = errors.New("private key must be 32 bytes of hex")

// WalletData is the complete displayable description of a wallet. All
// fields are derived from the 32-byte seed; none carry independent state.
type WalletData struct {
	// Address is the Base58 public address.
	Address string

	// PrivateKey is the seed as lowercase hex, little-endian scalar order.
	PrivateKey string

	// PublicKey is the compressed public curve point as lowercase hex.
	PublicKey string

	// Mnemonic is the 25-word recovery phrase, space separated.
	Mnemonic string
}

// Generate creates a fresh wallet from the system's secure random source.
func Generate() (*WalletData, error) {
	keyPair, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		return nil, err
	}
	return newWalletData(keyPair), nil
}

// ImportFromMnemonic recovers a wallet from its 25-word recovery phrase.
// The phrase is case-insensitive and tolerant of extra whitespace. Returns
// mnemonic.ErrInvalidLength, mnemonic.ErrUnknownWord, mnemonic.ErrEncoding
// or mnemonic.ErrInvalidChecksum when the phrase is not valid.
func ImportFromMnemonic(phrase string) (*WalletData, error) {
	words := strings.Fields(strings.ToLower(phrase))

	seed, err := mnemonic.Decode(words)
	if err != nil {
		return nil, err
	}
	if !mnemonic.VerifyChecksum(words) {
		return nil, mnemonic.ErrInvalidChecksum
	}

	// Imported seeds are used as-is, even above the curve group order.
	// Freshly generated seeds are always canonical, but a foreign wallet
	// may have produced this phrase without that guarantee, and reducing
	// here would silently change the private key it backs up.
	return newWalletData(DeriveKeyPair(seed, true)), nil
}

// ImportFromPrivateKey recovers a wallet from a 32-byte hex seed. The seed
// is trusted as given: it is neither validated against nor reduced by the
// curve group order.
func ImportFromPrivateKey(seedHex string) (*WalletData, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(seedHex))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeed, err)
	}
	if len(raw) != SeedSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSeed, len(raw))
	}

	var seed [SeedSize]byte
	copy(seed[:], raw)
	return newWalletData(DeriveKeyPair(seed, true)), nil
}

// VerifyMnemonicChecksum reports whether a phrase is exactly 25 words long
// with a correct checksum word. It never returns an error; malformed input
// is simply false.
func VerifyMnemonicChecksum(phrase string) bool {
	return mnemonic.VerifyChecksum(strings.Fields(strings.ToLower(phrase)))
}

// IsValidAddress reports whether addr is a well-formed address for this
// network, including its embedded checksum. It never returns an error.
func IsValidAddress(addr string) bool {
	return address.Validate(addr)
}

// Wordlist returns a copy of the mnemonic dictionary in encoding order.
// Mutating the returned slice has no effect on the engine.
func Wordlist() []string {
	words := make([]string, len(wordlist.WordList))
	copy(words, wordlist.WordList)
	return words
}

func newWalletData(keyPair *KeyPair) *WalletData {
	return &WalletData{
		Address:    address.Encode(keyPair.PublicKey),
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey[:]),
		PublicKey:  hex.EncodeToString(keyPair.PublicKey[:]),
		Mnemonic:   strings.Join(mnemonic.Encode(keyPair.PrivateKey), " "),
	}
}
