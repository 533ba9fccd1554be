package demo

import (
	"bytes"
	"fmt"
	"github.com/bokysan/basen"
	"github.com/bokysan/basen/alphabets"
	"github.com/bokysan/basen/internal/logging"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command runs sample data through every registered alphabet table and
// verifies the round trip, both with and without a separator. Tables that
// cannot back a codec (base58, base85) are reported and skipped.
type Command struct {
	Data      string `json:"data"      short:"d" long:"data"      env:"DATA"      description:"Sample data to run through every table" default:"light work"`
	Separator string `json:"separator" short:"s" long:"separator" env:"SEPARATOR" description:"Separator used in the separator round" default:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Round-trip demonstration"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	var errs error
	data := []byte(c.Data)

	for _, name := range alphabets.Names() {
		table, _ := alphabets.Lookup(name)

		codec, err := basen.NewCodec(table, "")
		if err != nil {
			fmt.Printf("%-9s not usable: %v\n", name, err)
			continue
		}
		log.Debugf("Codec for %s: %s", name, spew.Sdump(codec))

		if err := c.roundTrip(name, codec, data); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	// One more round with the separator to show it is transparent.
	if c.Separator != "" {
		codec, err := basen.NewCodec(alphabets.Base64, c.Separator)
		if err != nil {
			return err
		}
		if err := c.roundTrip("base64/sep", codec, data); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *Command) roundTrip(name string, codec *basen.Codec, data []byte) error {
	encoded := codec.Encode(data)
	fmt.Printf("%-10s %s\n", name, encoded)

	decoded, err := codec.Decode(encoded)
	if err != nil {
		return errors.Wrapf(err, "decode failed for %s", name)
	}
	if !bytes.Equal(data, decoded) {
		return errors.Errorf("Round trip for %s produced %q instead of %q", name, decoded, data)
	}
	return nil
}
