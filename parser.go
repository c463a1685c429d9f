package shape

import (
	"io"
	"reflect"
	"regexp"

	"github.com/pkg/errors"

	"github.com/alecthomas/shape/buffer"
)

// A Parser for a particular grammar G.
//
// A Parser is immutable once built and may be used concurrently.
type Parser[G any] struct {
	typ     reflect.Type
	root    node
	options *parserOptions
}

// Build constructs a parser for the type G.
//
// G is typically a struct with shape tags, but may be any type with a shape including
// interfaces registered with Union, pointers and scalars.
func Build[G any](options ...Option) (*Parser[G], error) {
	opts, err := newParserOptions(options)
	if err != nil {
		return nil, err
	}
	t := reflect.TypeOf((*G)(nil)).Elem()
	root, err := build(t, opts)
	if err != nil {
		return nil, err
	}
	return &Parser[G]{typ: t, root: root, options: opts}, nil
}

// MustBuild calls Build[G](options...) and panics if an error occurs.
func MustBuild[G any](options ...Option) *Parser[G] {
	p, err := Build[G](options...)
	if err != nil {
		panic(err)
	}
	return p
}

func build(t reflect.Type, options *parserOptions) (root node, err error) {
	defer recoverToError(&err)
	return newGeneratorContext(options).parseType(t), nil
}

// Parse text into a new G.
//
// On failure the zero value of G is returned along with the error. The error is a
// *buffer.PatternNotFoundError, *DecodeError or *UnionError, possibly wrapped.
func (p *Parser[G]) Parse(text string) (G, error) {
	var zero G
	v, err := p.root.Decode(newParseContext(p.options), text)
	if err != nil {
		return zero, err
	}
	return v.Interface().(G), nil
}

// ParseBytes parses b into a new G.
func (p *Parser[G]) ParseBytes(b []byte) (G, error) {
	return p.Parse(string(b))
}

// ParseReader reads all of r and parses it into a new G.
func (p *Parser[G]) ParseReader(r io.Reader) (G, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		var zero G
		return zero, errors.Wrap(err, "read input")
	}
	return p.Parse(string(b))
}

// ParseSeparated splits text by every match of separator and parses each piece into a G.
//
// Elements are returned in input order. The first element that fails to parse aborts.
func (p *Parser[G]) ParseSeparated(text, separator string) ([]G, error) {
	sep, err := compilePattern(p.options, separator)
	if err != nil {
		return nil, err
	}
	parts := buffer.Split(text, sep)
	out := make([]G, 0, len(parts))
	for i, part := range parts {
		v, err := p.Parse(part)
		if err != nil {
			return nil, annotateIndex(err, i)
		}
		out = append(out, v)
	}
	return out, nil
}

// String renders the shapes reachable from G, one per line.
func (p *Parser[G]) String() string {
	return stringer(p.root, "")
}

func compilePattern(options *parserOptions, expr string) (*regexp.Regexp, error) {
	if options.quoteLiterals {
		return buffer.Literal(expr), nil
	}
	re, err := buffer.Pattern(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", expr)
	}
	return re, nil
}
