package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alecthomas/shape"
)

var (
	version string = "dev"
	cli     struct {
		Version  kong.VersionFlag
		Trace    bool   `help:"Trace parsing to stderr."`
		LogLevel string `help:"Log level." default:"warning" env:"SHAPE_LOG_LEVEL" enum:"panic,fatal,error,warning,info,debug,trace"`
		Literal  bool   `help:"Match literals exactly rather than as regular expressions."`

		Parse   parseCmd   `cmd:"" help:"Parse input with a shape and print the records."`
		Check   checkCmd   `cmd:"" help:"Check that input matches a shape."`
		Grammar grammarCmd `cmd:"" help:"Print the shape compiled from a declaration."`
	}
)

// State shared by all commands.
type runContext struct {
	log     *logrus.Logger
	options []shape.Option
	stdout  io.Writer
	stderr  io.Writer
}

// Returned by check when the input does not match.
var errMismatch = errors.New("input does not match")

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Parse text using shapes declared on the command line.`),
		kong.Vars{"version": version},
	)
	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cli.LogLevel)
	kctx.FatalIfErrorf(err)
	log.SetLevel(level)

	options := []shape.Option{shape.Logger(log)}
	if cli.Trace {
		options = append(options, shape.Trace(os.Stderr))
	}
	if cli.Literal {
		options = append(options, shape.QuoteLiterals())
	}
	err = kctx.Run(&runContext{log: log, options: options, stdout: os.Stdout, stderr: os.Stderr})
	if errors.Is(err, errMismatch) {
		os.Exit(1)
	}
	kctx.FatalIfErrorf(err)
}
