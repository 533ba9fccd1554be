package decode

import (
	"github.com/bokysan/basen"
	"github.com/bokysan/basen/alphabets"
	"github.com/bokysan/basen/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"os"
	"strings"
)

// Command decodes a base-N string back into the raw bytes, which are written
// to stdout as-is.
type Command struct {
	Alphabet      string `json:"alphabet"       short:"a" long:"alphabet"       env:"ALPHABET"       description:"Named alphabet table, see the 'demo' command for the list" default:"base64"`
	AlphabetChars string `json:"alphabet-chars"           long:"alphabet-chars" env:"ALPHABET_CHARS" description:"Explicit alphabet; the last character is the padding symbol. Overrides --alphabet."`
	Separator     string `json:"separator"      short:"s" long:"separator"      env:"SEPARATOR"      description:"String that was inserted between encoded symbols"`
	Strict        bool   `json:"strict"         short:"S" long:"strict"         env:"STRICT"         description:"Fail on padding that encode could not have produced instead of decoding permissively"`

	Args struct {
		Text []string `positional-arg-name:"text" description:"Text to decode. Read from stdin when omitted."`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Decode data"
}

// Codec resolves the alphabet options into a ready-made codec.
func (c *Command) Codec() (*basen.Codec, error) {
	table := c.AlphabetChars
	if table == "" {
		named, ok := alphabets.Lookup(c.Alphabet)
		if !ok {
			return nil, errors.Errorf("Unknown alphabet '%s', pick one of: %s", c.Alphabet, strings.Join(alphabets.Names(), ", "))
		}
		table = named
	}
	if c.Strict {
		return basen.NewStrictCodec(table, c.Separator)
	}
	return basen.NewCodec(table, c.Separator)
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	codec, err := c.Codec()
	if err != nil {
		return err
	}
	log.Debugf("Using codec %v", codec)

	text, err := c.input()
	if err != nil {
		return err
	}

	decoded, err := codec.Decode(text)
	if err != nil {
		return err
	}

	if _, err := os.Stdout.Write(decoded); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c *Command) input() (string, error) {
	if len(c.Args.Text) > 0 {
		return strings.Join(c.Args.Text, ""), nil
	}

	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.WithStack(err)
	}

	// Shells terminate piped input with a newline which is not part of
	// the encoded text.
	return strings.TrimRight(string(data), "\r\n"), nil
}
