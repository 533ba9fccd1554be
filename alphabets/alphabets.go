// Package alphabets holds pre-defined alphabet tables for common base-N
// encodings. Every table carries its padding character as the last
// character, ready to be handed to basen.NewCodec. The package is pure
// data: it never constructs codecs itself.
package alphabets

import (
	"sort"
	"strings"
)

// Padding is the padding character shared by all tables in this package.
const Padding = '='

const (
	// Base16 is the standard hexadecimal alphabet.
	Base16 = "0123456789ABCDEF="

	// Base32 is the RFC 4648 Base32 alphabet.
	Base32 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567="

	// Base58 is the Bitcoin-style Base58 alphabet. 58 is not a power of
	// two, so basen.NewCodec rejects this table with
	// ErrInvalidAlphabetSize; it is listed for completeness only.
	Base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz="

	// Base64 is the RFC 4648 Base64 alphabet.
	Base64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

	// Base85 is the ASCII85-style alphabet. Like Base58 it cannot be used
	// with basen.NewCodec (85 data symbols, and the table reuses '=').
	Base85 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~="
)

// The extended tables are generated from Unicode code-point ranges rather
// than spelled out: printable ASCII first, then the Latin-1 supplement
// onward, skipping the padding character. They are built once at package
// load and never mutated.
var (
	Base256  = Generate(256, Padding)
	Base512  = Generate(512, Padding)
	Base1024 = Generate(1024, Padding)
	Base2048 = Generate(2048, Padding)
	Base4096 = Generate(4096, Padding)
)

// span is a half-open range of Unicode code points.
type span struct {
	lo, hi rune
}

// pool lists the code-point ranges the generated tables draw from, in
// order of preference.
var pool = []span{
	{33, 127},     // printable ASCII
	{161, 0x3000}, // Latin-1 supplement onward, stops short of CJK space
}

// Generate builds an alphabet of n distinct symbols drawn from the
// code-point pool, with the given padding character appended as the
// (n+1)-th entry. The padding character is skipped while drawing so the
// result is always duplicate-free. Generate panics when the pool cannot
// supply n symbols; all callers in this package request far less than the
// pool holds.
func Generate(n int, padding rune) string {
	var sb strings.Builder
	sb.Grow(n + 1)

	left := n
	for _, s := range pool {
		for r := s.lo; r < s.hi && left > 0; r++ {
			if r == padding {
				continue
			}
			sb.WriteRune(r)
			left--
		}
		if left == 0 {
			break
		}
	}
	if left > 0 {
		panic("alphabets: code-point pool exhausted")
	}

	sb.WriteRune(padding)
	return sb.String()
}

var tables = map[string]string{
	"base16":   Base16,
	"base32":   Base32,
	"base58":   Base58,
	"base64":   Base64,
	"base85":   Base85,
	"base256":  Base256,
	"base512":  Base512,
	"base1024": Base1024,
	"base2048": Base2048,
	"base4096": Base4096,
}

// Lookup returns the table registered under the given name (matched
// case-insensitively, e.g. "base64" or "Base64").
func Lookup(name string) (string, bool) {
	table, ok := tables[strings.ToLower(strings.TrimSpace(name))]
	return table, ok
}

// Names returns the names of all registered tables, sorted by symbol count.
func Names() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}
