package alphabets

import (
	"errors"
	"github.com/bokysan/basen"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_TablesRoundTrip(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog \x00\xff\xaa\x55")

	for _, name := range Names() {
		table, ok := Lookup(name)
		require.True(t, ok)

		codec, err := basen.NewCodec(table, "")
		if name == "base58" || name == "base85" {
			// Not power-of-two tables; kept as data only.
			require.True(t, errors.Is(err, basen.ErrInvalidAlphabetSize), "expected %s to be rejected, got: %v", name, err)
			continue
		}
		require.NoError(t, err, "could not build a codec for %s", name)

		decoded, err := codec.Decode(codec.Encode(data))
		require.NoError(t, err, "decode failed for %s", name)
		require.Equal(t, data, decoded, "round trip failed for %s", name)
	}
}

func Test_TablesRoundTripWithSeparator(t *testing.T) {
	data := []byte("light work")

	for _, name := range []string{"base16", "base32", "base64", "base256", "base4096"} {
		table, _ := Lookup(name)
		codec, err := basen.NewCodec(table, "-")
		require.NoError(t, err)

		encoded := codec.Encode(data)
		require.Contains(t, encoded, "-")

		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, data, decoded, "separator round trip failed for %s", name)
	}
}
