package shape

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/pkg/errors"

	"github.com/alecthomas/shape/buffer"
)

var recordTypes = map[string]reflect.Type{
	"string": reflect.TypeOf(""),
	"int":    reflect.TypeOf(int(0)),
	"int64":  reflect.TypeOf(int64(0)),
	"uint":   reflect.TypeOf(uint(0)),
	"float":  reflect.TypeOf(float64(0)),
	"bool":   reflect.TypeOf(false),
	"chars":  reflect.TypeOf([]rune(nil)),
	"bytes":  reflect.TypeOf([]byte(nil)),
}

// RecordField is a single named value decoded by a RecordParser.
type RecordField struct {
	Name  string
	Value any
}

// Record is the result of parsing with a RecordParser, in declaration order.
type Record []RecordField

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, field := range r {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Map returns the record's fields keyed by name.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r))
	for _, field := range r {
		out[field.Name] = field.Value
	}
	return out
}

// RecordParser parses text with a shape declared at runtime.
type RecordParser struct {
	typ     reflect.Type
	root    node
	options *parserOptions
}

// CompileRecord compiles a runtime shape declaration.
//
// A declaration is a sequence of literals and typed fields:
//
//	decl  = { literal | field } .
//	field = ident ":" type [ "{" literal "}" ] .
//	type  = "string" | "int" | "int64" | "uint" | "float" | "bool" | "chars" | "bytes" | "[]" type .
//
// Field names must be exported Go identifiers. A field followed by a braced literal is a
// separated collection, eg.
//
//	"Button A: X+" X:int ", Y+" Y:int
//	Levels:[]int{" "}
func CompileRecord(decl string, options ...Option) (*RecordParser, error) {
	opts, err := newParserOptions(options)
	if err != nil {
		return nil, err
	}
	t, err := recordType(decl)
	if err != nil {
		return nil, err
	}
	root, err := build(t, opts)
	if err != nil {
		return nil, err
	}
	return &RecordParser{typ: t, root: root, options: opts}, nil
}

// MustCompileRecord calls CompileRecord and panics if an error occurs.
func MustCompileRecord(decl string, options ...Option) *RecordParser {
	p, err := CompileRecord(decl, options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse text into a Record.
func (r *RecordParser) Parse(text string) (Record, error) {
	v, err := r.root.Decode(newParseContext(r.options), text)
	if err != nil {
		return nil, err
	}
	out := make(Record, 0, r.typ.NumField())
	for i := 0; i < r.typ.NumField(); i++ {
		out = append(out, RecordField{Name: r.typ.Field(i).Name, Value: v.Field(i).Interface()})
	}
	return out, nil
}

// ParseEach splits text by every match of separator and parses each piece into a Record.
func (r *RecordParser) ParseEach(text, separator string) ([]Record, error) {
	sep, err := compilePattern(r.options, separator)
	if err != nil {
		return nil, err
	}
	parts := buffer.Split(text, sep)
	out := make([]Record, 0, len(parts))
	for i, part := range parts {
		record, err := r.Parse(part)
		if err != nil {
			return nil, annotateIndex(err, i)
		}
		out = append(out, record)
	}
	return out, nil
}

// String renders the declaration as a shape.
func (r *RecordParser) String() string {
	return stringer(r.root, "Record")
}

// Translates a declaration into a struct type whose tags carry the same shape.
func recordType(decl string) (t reflect.Type, err error) {
	defer func() {
		if err != nil {
			err = errors.Wrap(err, "declaration")
		}
	}()
	defer recoverToError(&err)
	tokens := lexTag(0, decl)
	var (
		fields  []reflect.StructField
		pending []string
		seen    = map[string]bool{}
	)
	next := func() tagToken {
		if len(tokens) == 0 {
			return tagToken{Type: scanner.EOF}
		}
		token := tokens[0]
		tokens = tokens[1:]
		return token
	}
	peek := func() tagToken {
		if len(tokens) == 0 {
			return tagToken{Type: scanner.EOF}
		}
		return tokens[0]
	}
	for token := next(); !token.EOF(); token = next() {
		switch token.Type {
		case scanner.String:
			pending = append(pending, strconv.Quote(token.Value))

		case scanner.Ident:
			name := token.Value
			if !unicode.IsUpper([]rune(name)[0]) {
				panicf("field %q must start with an upper-case letter", name)
			}
			if seen[name] {
				panicf("duplicate field %q", name)
			}
			seen[name] = true
			if colon := next(); colon.Type != ':' {
				panicf("%s: expected : but got %s", name, colon)
			}
			typ := parseRecordType(name, next, peek)
			capture := "@"
			if peek().Type == '{' {
				next()
				sep := next()
				if sep.Type != scanner.String {
					panicf("%s: expected separator literal but got %s", name, sep)
				}
				if end := next(); end.Type != '}' {
					panicf("%s: expected } but got %s", name, end)
				}
				capture = fmt.Sprintf("@{%s}", strconv.Quote(sep.Value))
			}
			// Literals preceding the first field belong to its tag.
			if len(fields) > 0 {
				fields[len(fields)-1].Tag = recordTag(pending)
				pending = nil
			}
			pending = append(pending, capture)
			fields = append(fields, reflect.StructField{Name: name, Type: typ})

		default:
			panicf("unexpected %s", token)
		}
	}
	if len(fields) == 0 {
		panicf("no fields")
	}
	fields[len(fields)-1].Tag = recordTag(pending)
	return reflect.StructOf(fields), nil
}

func parseRecordType(name string, next, peek func() tagToken) reflect.Type {
	token := next()
	switch token.Type {
	case '[':
		if end := next(); end.Type != ']' {
			panicf("%s: expected ] but got %s", name, end)
		}
		return reflect.SliceOf(parseRecordType(name, next, peek))
	case scanner.Ident:
		if t, ok := recordTypes[token.Value]; ok {
			return t
		}
	}
	panicf("%s: unknown type %s", name, token)
	return nil
}

func recordTag(tokens []string) reflect.StructTag {
	return reflect.StructTag("shape:" + strconv.Quote(strings.Join(tokens, " ")))
}
