// Package basen implements a generic base-N binary-to-text codec. A Codec is
// built from an alphabet whose data-symbol count is a power of two, plus a
// single trailing padding symbol, and an optional separator which is glued
// between every pair of output symbols. Any such alphabet yields a lossless
// encoder/decoder pair: Base16, Base32 and Base64 fall out of the same code
// path as the extended 256/512/1024/2048/4096-symbol Unicode tables.
package basen

import (
	"fmt"
	"github.com/pkg/errors"
	"math/bits"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidAlphabetSize is returned when the number of data symbols
	// (alphabet length minus the padding symbol) is not a power of two.
	// Single-symbol alphabets are rejected with this error as well: they
	// would encode zero bits per character.
	ErrInvalidAlphabetSize = errors.New("alphabet length (excluding padding) must be a power of 2")

	// ErrDuplicateSymbol is returned when two alphabet entries (padding
	// symbol included) are the same character.
	ErrDuplicateSymbol = errors.New("alphabet contains duplicate characters")

	// ErrUnknownSymbol is returned by Decode when, after separator removal
	// and padding trimming, a character is not part of the value alphabet.
	ErrUnknownSymbol = errors.New("character is not part of the alphabet")

	// ErrInvalidPadding is returned by strict codecs when the padding does
	// not match what Encode would have produced.
	ErrInvalidPadding = errors.New("padding does not match the encoding block structure")
)

// Codec is a base-N encoder/decoder over a fixed alphabet. It is immutable
// after construction -- the lookup tables are built once by NewCodec and
// never written again -- so a single Codec may be shared freely between
// goroutines.
type Codec struct {
	forward     []rune       // symbol at index i encodes the value i
	reverse     map[rune]int // inverse of forward
	padding     rune
	separator   string
	bitsPerChar int // number of bitstream bits one symbol carries
	blockSize   int // smallest symbol count whose bit-width is a multiple of 8
	strict      bool
}

// NewCodec creates a codec from the given alphabet. The last rune of the
// alphabet is used as the padding symbol, the preceding runes are the value
// alphabet in order. The separator, when non-empty, is inserted between
// every two symbols on encode and stripped again on decode.
//
// NewCodec fails with ErrInvalidAlphabetSize when the value-symbol count is
// not a power of two (or is less than two), and with ErrDuplicateSymbol when
// any character appears twice.
func NewCodec(alphabet string, separator string) (*Codec, error) {
	return newCodec(alphabet, separator, false)
}

// NewStrictCodec is NewCodec with padding validation enabled: Decode will
// additionally fail with ErrInvalidPadding when the padding-symbol count
// does not align the input to a block boundary or when the discarded
// trailing bits are not zero. Encode is unaffected.
func NewStrictCodec(alphabet string, separator string) (*Codec, error) {
	return newCodec(alphabet, separator, true)
}

func newCodec(alphabet string, separator string, strict bool) (*Codec, error) {
	symbols := []rune(alphabet)
	n := len(symbols) - 1

	if n < 2 || n&(n-1) != 0 {
		return nil, errors.Wrapf(ErrInvalidAlphabetSize, "got %d data symbols", n)
	}

	reverse := make(map[rune]int, n)
	for i, r := range symbols {
		if j, ok := reverse[r]; ok {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "%q appears at positions %d and %d", r, j, i)
		}
		reverse[r] = i
	}
	delete(reverse, symbols[n])

	bitsPerChar := bits.TrailingZeros(uint(n))

	return &Codec{
		forward:     symbols[:n],
		reverse:     reverse,
		padding:     symbols[n],
		separator:   separator,
		bitsPerChar: bitsPerChar,
		blockSize:   lcm(8, bitsPerChar) / bitsPerChar,
		strict:      strict,
	}, nil
}

func (c *Codec) String() string {
	return fmt.Sprintf("Base%d(%d bits/char, block size %d)", len(c.forward), c.bitsPerChar, c.blockSize)
}

// Base returns the number of value symbols (N) in the alphabet.
func (c *Codec) Base() int {
	return len(c.forward)
}

// BitsPerChar returns the number of bitstream bits one output symbol encodes.
func (c *Codec) BitsPerChar() int {
	return c.bitsPerChar
}

// BlockSize returns the number of output symbols the padding aligns to.
func (c *Codec) BlockSize() int {
	return c.blockSize
}

// Padding returns the padding symbol.
func (c *Codec) Padding() rune {
	return c.padding
}

// Separator returns the separator string, which may be empty.
func (c *Codec) Separator() string {
	return c.separator
}

// Encode converts the given bytes into a string over the codec's alphabet.
// The input is treated as a single MSB-first bitstream which is split into
// groups of BitsPerChar bits; an incomplete final group is zero-extended on
// the right. The resulting symbol sequence is padded with the padding symbol
// up to a multiple of BlockSize and joined with the separator.
//
// Encode is a pure function: the same input always yields the same string.
func (c *Codec) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	mask := uint32(1)<<c.bitsPerChar - 1
	symbols := make([]rune, 0, (len(data)*8+c.bitsPerChar-1)/c.bitsPerChar+c.blockSize)

	// Accumulate input bits and peel off one symbol whenever a full group
	// is available. The accumulator never needs to hold more than
	// 7 + bitsPerChar bits (at most 19 for a 4096-symbol alphabet).
	acc := uint32(0)
	nbits := 0
	for _, b := range data {
		acc = acc<<8 | uint32(b)
		nbits += 8
		for nbits >= c.bitsPerChar {
			nbits -= c.bitsPerChar
			symbols = append(symbols, c.forward[acc>>nbits&mask])
		}
	}
	if nbits > 0 {
		// Zero-extend the incomplete final group.
		symbols = append(symbols, c.forward[acc<<(c.bitsPerChar-nbits)&mask])
	}

	for len(symbols)%c.blockSize != 0 {
		symbols = append(symbols, c.padding)
	}

	var sb strings.Builder
	for i, r := range symbols {
		if i > 0 {
			sb.WriteString(c.separator)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Decode converts an encoded string back into bytes. Every occurrence of a
// non-empty separator is removed, trailing padding symbols are trimmed, and
// the remaining symbols are mapped back into BitsPerChar-bit groups; the
// trailing `length mod 8` bits are the zero-extension added by Encode and
// are discarded. A character outside the value alphabet fails with
// ErrUnknownSymbol.
//
// Decode does not verify that the discarded bits were zero, nor that the
// padding count matches the block structure -- input that is malformed but
// alphabet-valid decodes without error, possibly to unintended bytes. Use
// NewStrictCodec when that validation is wanted.
func (c *Codec) Decode(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}

	if c.separator != "" {
		text = strings.ReplaceAll(text, c.separator, "")
	}
	trimmed := strings.TrimRight(text, string(c.padding))

	if c.strict {
		symbols := utf8.RuneCountInString(trimmed)
		pads := utf8.RuneCountInString(text) - symbols
		if pads >= c.blockSize {
			return nil, errors.Wrapf(ErrInvalidPadding, "%d padding symbols for a block size of %d", pads, c.blockSize)
		}
		if (symbols+pads)%c.blockSize != 0 {
			return nil, errors.Wrapf(ErrInvalidPadding, "%d symbols do not align to a block size of %d", symbols+pads, c.blockSize)
		}
	}

	out := make([]byte, 0, utf8.RuneCountInString(trimmed)*c.bitsPerChar/8)

	acc := uint32(0)
	nbits := 0
	for _, r := range trimmed {
		value, ok := c.reverse[r]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownSymbol, "%q", r)
		}
		acc = acc<<c.bitsPerChar | uint32(value)
		nbits += c.bitsPerChar
		for nbits >= 8 {
			nbits -= 8
			out = append(out, byte(acc>>nbits))
		}
	}

	// nbits bits remain unconsumed; these are exactly the bits Encode
	// zero-extended the final group with.
	if c.strict && nbits > 0 {
		if nbits >= c.bitsPerChar {
			return nil, errors.Wrapf(ErrInvalidPadding, "%d leftover bits exceed one symbol group", nbits)
		}
		if acc&(uint32(1)<<nbits-1) != 0 {
			return nil, errors.Wrap(ErrInvalidPadding, "discarded trailing bits are not zero")
		}
	}

	return out, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
