package shape

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/scanner"
)

// A token from a struct tag or a record declaration.
type tagToken struct {
	Type  rune
	Value string
	// Field the token was lexed from.
	Field int
}

func (t tagToken) EOF() bool { return t.Type == scanner.EOF }

func (t tagToken) String() string {
	switch t.Type {
	case scanner.EOF:
		return "<EOF>"
	case scanner.String:
		return strconv.Quote(t.Value)
	}
	return t.Value
}

type structLexerField struct {
	reflect.StructField
	Index []int
}

// A structLexer lexes over the tags of struct fields while tracking the field each token came from.
type structLexer struct {
	s      reflect.Type
	fields []structLexerField
	tokens []tagToken
	cursor int
}

func lexStruct(s reflect.Type) *structLexer {
	slex := &structLexer{s: s}
	for _, index := range collectFieldIndexes(s) {
		slex.fields = append(slex.fields, structLexerField{StructField: s.FieldByIndex(index), Index: index})
	}
	for i, field := range slex.fields {
		func() {
			defer decorate(func() string { return field.Name })
			slex.tokens = append(slex.tokens, lexTag(i, fieldTag(field.StructField))...)
		}()
	}
	return slex
}

// NumField returns the number of tagged fields in the struct.
func (s *structLexer) NumField() int {
	return len(s.fields)
}

// Field returns the field a token was lexed from.
func (s *structLexer) Field(token tagToken) structLexerField {
	return s.fields[token.Field]
}

func (s *structLexer) Peek() tagToken {
	if s.cursor >= len(s.tokens) {
		return tagToken{Type: scanner.EOF, Field: len(s.fields) - 1}
	}
	return s.tokens[s.cursor]
}

func (s *structLexer) Next() tagToken {
	token := s.Peek()
	if s.cursor < len(s.tokens) {
		s.cursor++
	}
	return token
}

// Lex a tag into tokens. String, raw string and character literals are unquoted into
// scanner.String tokens, identifiers are scanner.Ident and everything else is a single rune.
func lexTag(field int, tag string) (out []tagToken) {
	scan := &scanner.Scanner{}
	scan.Init(strings.NewReader(tag))
	scan.Mode = scanner.ScanIdents | scanner.ScanStrings | scanner.ScanRawStrings | scanner.ScanChars
	scan.Error = func(s *scanner.Scanner, msg string) {
		panicf("%s: %s", s.Pos(), msg)
	}
	for {
		typ := scan.Scan()
		text := scan.TokenText()
		switch typ {
		case scanner.EOF:
			return out
		case scanner.String, scanner.RawString, scanner.Char:
			value, err := strconv.Unquote(text)
			if err != nil {
				panicf("invalid literal %s", text)
			}
			out = append(out, tagToken{Type: scanner.String, Value: value, Field: field})
		case scanner.Ident:
			out = append(out, tagToken{Type: scanner.Ident, Value: text, Field: field})
		default:
			out = append(out, tagToken{Type: typ, Value: text, Field: field})
		}
	}
}

func fieldTag(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("shape"); ok {
		return tag
	}
	return string(field.Tag)
}

// Recursively collect flattened indices for tagged top-level fields and untagged embedded structs.
func collectFieldIndexes(s reflect.Type) (out [][]int) {
	if s.Kind() != reflect.Struct {
		panicf("expected a struct but got %q", s)
	}
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		tag := fieldTag(f)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && tag == "" {
			for _, idx := range collectFieldIndexes(f.Type) {
				out = append(out, append(append([]int{}, f.Index...), idx...))
			}
		} else if tag != "" {
			out = append(out, f.Index)
		}
	}
	return
}

func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func fieldPath(s reflect.Type, field structLexerField) string {
	if s.Name() == "" {
		return field.Name
	}
	return fmt.Sprintf("%s.%s", s.Name(), field.Name)
}
