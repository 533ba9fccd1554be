package main

import (
	"fmt"
	"github.com/bokysan/basen/internal/args"
	"github.com/bokysan/basen/internal/commands/decode"
	"github.com/bokysan/basen/internal/commands/demo"
	"github.com/bokysan/basen/internal/commands/encode"
	"github.com/bokysan/basen/internal/commands/version"
	scFlags "github.com/bokysan/basen/internal/flags"
	"github.com/bokysan/basen/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseN is the main executable
type BaseN struct {
	parser *flags.Parser
}

// NewBaseN will create a new instance of BaseN and initialize the parser
func NewBaseN() *BaseN {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &BaseN{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()
	b.setupDemo()

	return b
}

// setupGeneral will configure general options
func (b *BaseN) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *BaseN) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *BaseN) setupEncode() {
	cmd := encode.NewCommand()
	_, err := b.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode bytes into a base-N string over the selected alphabet",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *BaseN) setupDecode() {
	cmd := decode.NewCommand()
	_, err := b.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode a base-N string back into the raw bytes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDemo adds the `demo` command
func (b *BaseN) setupDemo() {
	cmd := demo.NewCommand()
	_, err := b.parser.AddCommand(
		"demo",
		"Round-trip demonstration",
		"Run sample data through every registered alphabet table",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts basen and reads the configuration file
func main() {

	baseN := NewBaseN()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := scFlags.NewYamlParser(baseN.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := baseN.parser.Parse()
	util.MustErrorNilOrExit(err)

}
