package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"testing"
)

var Encode struct {
	Alphabet  string `long:"alphabet" description:"Named alphabet table"`
	Separator string `long:"separator"`
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_EncodeParse(t *testing.T) {
	file := "testdata/encode.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	data := &Encode
	_, err := parser.AddCommand("encode", "Encode", "Encode options", data)
	require.NoErrorf(t, err, "Could not add encode command")

	err = yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "base32", data.Alphabet, "Invalid reading of alphabet value")
	require.Equal(t, "-", data.Separator, "Invalid reading of separator value")
}

func Test_UnknownKeysIgnoredWithinCommand(t *testing.T) {
	file := "testdata/encode_extra.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	_, err := parser.AddCommand("encode", "Encode", "Encode options", &Encode)
	require.NoErrorf(t, err, "Could not add encode command")

	err = yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/no_command.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	_, err := parser.AddCommand("encode", "Encode", "Encode options", &Encode)
	require.NoErrorf(t, err, "Could not add encode command")

	err = yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}
