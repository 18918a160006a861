// Package base58 implements the block-structured Base58 codec used for
// wallet addresses. Unlike conventional Base58, which treats the whole
// buffer as one big integer, input is processed in fixed 8-byte blocks that
// always encode to exactly 11 characters. Encoded strings therefore have
// predictable widths and unambiguous block boundaries, at the cost of not
// being interchangeable with generic Base58.
package base58

import (
	"errors"
	"fmt"
	"math/big"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	fullBlockSize        = 8
	fullEncodedBlockSize = 11
)

// encodedBlockSizes[n] is the encoded character count of an n-byte block.
// The mapping is injective, which is what lets Decode recover block
// boundaries from string length alone.
var encodedBlockSizes = [fullBlockSize + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

// ErrInvalidEncoding is returned when decoding a string which is not valid
// block-structured Base58, either because its length matches no combination
// of block widths or because it contains characters outside the alphabet.
var ErrInvalidEncoding = errors.New("malformed base58 string")

var radix = big.NewInt(58)

// decodeTable maps an ASCII byte to its value in the alphabet, or -1.
var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = int8(i)
	}
}

// EncodedLen returns the number of characters Encode produces for n bytes
// of input.
func EncodedLen(n int) int {
	return (n/fullBlockSize)*fullEncodedBlockSize + encodedBlockSizes[n%fullBlockSize]
}

// DecodedLen returns the number of bytes Decode produces for an n-character
// string, or ErrInvalidEncoding if no input length could encode to n
// characters.
func DecodedLen(n int) (int, error) {
	byteLen := (n / fullEncodedBlockSize) * fullBlockSize
	remainder := n % fullEncodedBlockSize
	if remainder == 0 {
		return byteLen, nil
	}
	for blockBytes, chars := range encodedBlockSizes {
		if chars == remainder {
			return byteLen + blockBytes, nil
		}
	}
	return 0, fmt.Errorf("%w: length %d matches no block layout", ErrInvalidEncoding, n)
}

// encodeBlock writes the Base58 digits of block into dst, right-aligned.
// dst must already be filled with the zero character so that short values
// keep the block's fixed width.
func encodeBlock(block []byte, dst []byte) {
	num := new(big.Int).SetBytes(block)
	rem := new(big.Int)
	for i := len(dst) - 1; num.Sign() > 0; i-- {
		num.DivMod(num, radix, rem)
		dst[i] = alphabet[rem.Int64()]
	}
}

// Encode converts buf into its block-structured Base58 representation.
// Every full 8-byte block yields 11 characters; a trailing partial block
// yields the character count fixed by its byte length.
func Encode(buf []byte) string {
	out := make([]byte, EncodedLen(len(buf)))
	for i := range out {
		out[i] = alphabet[0]
	}

	written := 0
	for len(buf) >= fullBlockSize {
		encodeBlock(buf[:fullBlockSize], out[written:written+fullEncodedBlockSize])
		buf = buf[fullBlockSize:]
		written += fullEncodedBlockSize
	}
	if len(buf) > 0 {
		encodeBlock(buf, out[written:written+encodedBlockSizes[len(buf)]])
	}
	return string(out)
}

// decodeBlock converts one encoded chunk back into exactly len(dst) bytes.
func decodeBlock(chunk string, dst []byte) error {
	num := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(chunk); i++ {
		value := decodeTable[chunk[i]]
		if value < 0 {
			return fmt.Errorf("%w: invalid character %q", ErrInvalidEncoding, chunk[i])
		}
		digit.SetInt64(int64(value))
		num.Mul(num, radix)
		num.Add(num, digit)
	}
	if (num.BitLen()+7)/8 > len(dst) {
		return fmt.Errorf("%w: block value overflows %d bytes", ErrInvalidEncoding, len(dst))
	}
	num.FillBytes(dst)
	return nil
}

// Decode is the exact inverse of Encode. It partitions s into 11-character
// chunks plus one trailing partial chunk, converts each back into its
// big-endian byte block, and concatenates the blocks.
func Decode(s string) ([]byte, error) {
	byteLen, err := DecodedLen(len(s))
	if err != nil {
		return nil, err
	}

	out := make([]byte, byteLen)
	written := 0
	for len(s) >= fullEncodedBlockSize {
		if err := decodeBlock(s[:fullEncodedBlockSize], out[written:written+fullBlockSize]); err != nil {
			return nil, err
		}
		s = s[fullEncodedBlockSize:]
		written += fullBlockSize
	}
	if len(s) > 0 {
		if err := decodeBlock(s, out[written:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
