package encode

import (
	"fmt"
	"github.com/bokysan/basen"
	"github.com/bokysan/basen/alphabets"
	"github.com/bokysan/basen/internal/logging"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"os"
	"strings"
)

// Command encodes data into a base-N string over the selected alphabet.
type Command struct {
	Alphabet      string `json:"alphabet"       short:"a" long:"alphabet"       env:"ALPHABET"       description:"Named alphabet table, see the 'demo' command for the list" default:"base64"`
	AlphabetChars string `json:"alphabet-chars"           long:"alphabet-chars" env:"ALPHABET_CHARS" description:"Explicit alphabet; the last character is the padding symbol. Overrides --alphabet."`
	Separator     string `json:"separator"      short:"s" long:"separator"      env:"SEPARATOR"      description:"String inserted between encoded symbols"`

	Args struct {
		Data []string `positional-arg-name:"data" description:"Data to encode. Read from stdin when omitted."`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Encode data"
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
	return basen.NewCodec(table, c.Separator)
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	codec, err := c.Codec()
	if err != nil {
		return err
	}
	log.Debugf("Using codec %v: %s", codec, spew.Sdump(c))

	data, err := c.input()
	if err != nil {
		return err
	}

	fmt.Println(codec.Encode(data))
	return nil
}

func (c *Command) input() ([]byte, error) {
	if len(c.Args.Data) > 0 {
		return []byte(strings.Join(c.Args.Data, " ")), nil
	}

	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}
