package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alecthomas/shape"
	"github.com/alecthomas/shape/internal/logfields"
)

type shapeFlags struct {
	Shape string `short:"s" required:"" help:"Shape declaration, eg. '\"p=\" X:int \",\" Y:int'."`
	Each  string `short:"e" help:"Parse a record from each piece of input separated by this literal."`
	Input string `arg:"" default:"-" type:"existingfile" help:"Input file (read from stdin if omitted)."`
}

func (s *shapeFlags) parse(ctx *runContext) ([]shape.Record, error) {
	parser, err := shape.CompileRecord(s.Shape, ctx.options...)
	if err != nil {
		return nil, err
	}
	text, err := readInput(s.Input)
	if err != nil {
		return nil, err
	}
	ctx.log.WithFields(logrus.Fields{
		logfields.Shape: s.Shape,
		logfields.Input: s.Input,
	}).Debug("Parsing")
	if s.Each != "" {
		return parser.ParseEach(text, s.Each)
	}
	record, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return []shape.Record{record}, nil
}

type parseCmd struct {
	shapeFlags
}

func (c *parseCmd) Run(ctx *runContext) error {
	records, err := c.parse(ctx)
	if err != nil {
		return err
	}
	p := repr.New(ctx.stdout, repr.Indent("  "))
	for _, record := range records {
		p.Println(record.Map())
	}
	return nil
}

type checkCmd struct {
	shapeFlags
}

func (c *checkCmd) Help() string {
	return `
Exits with a non-zero status if the input does not match the shape. Errors in
the declaration itself are reported as usual.
`
}

func (c *checkCmd) Run(ctx *runContext) error {
	if _, err := shape.CompileRecord(c.Shape, ctx.options...); err != nil {
		return err
	}
	records, err := c.parse(ctx)
	if err != nil {
		color.New(color.FgRed).Fprintln(ctx.stderr, err)
		return errMismatch
	}
	color.New(color.FgGreen).Fprintf(ctx.stdout, "ok (%d records)\n", len(records))
	return nil
}

type grammarCmd struct {
	Shape string `short:"s" required:"" help:"Shape declaration."`
}

func (c *grammarCmd) Run(ctx *runContext) error {
	parser, err := shape.CompileRecord(c.Shape, ctx.options...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(ctx.stdout, parser.String()+"\n")
	return err
}

// Reads the whole of path, or stdin if path is "-", without trailing newlines.
func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
