package shape

import (
	"reflect"
	"testing"
	"text/scanner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructLexerTokens(t *testing.T) {
	type testScanner struct {
		A string `"a" @ "b"`
		B []int  `@{","}`
	}

	scan := lexStruct(reflect.TypeOf(testScanner{}))
	require.Equal(t, 2, scan.NumField())

	expected := []tagToken{
		{Type: scanner.String, Value: "a", Field: 0},
		{Type: '@', Value: "@", Field: 0},
		{Type: scanner.String, Value: "b", Field: 0},
		{Type: '@', Value: "@", Field: 1},
		{Type: '{', Value: "{", Field: 1},
		{Type: scanner.String, Value: ",", Field: 1},
		{Type: '}', Value: "}", Field: 1},
	}
	for _, token := range expected {
		assert.Equal(t, token, scan.Peek())
		assert.Equal(t, token, scan.Next())
	}
	assert.True(t, scan.Next().EOF())
	assert.True(t, scan.Peek().EOF())
	assert.Equal(t, "B", scan.Field(scan.Peek()).Name)
}

func TestStructLexerLiteralForms(t *testing.T) {
	type testScanner struct {
		A string `"\t" @ '\n'`
		B string "`\\d+` @"
	}

	scan := lexStruct(reflect.TypeOf(testScanner{}))
	values := []string{}
	for token := scan.Next(); !token.EOF(); token = scan.Next() {
		values = append(values, token.Value)
	}
	assert.Equal(t, []string{"\t", "@", "\n", `\d+`, "@"}, values)
}

func TestStructLexerSkipsUntaggedFields(t *testing.T) {
	type embedded struct {
		B int `@ ","`
	}
	type testScanner struct {
		A       int `@ ","`
		Ignored int
		embedded
		C int `@`
	}

	scan := lexStruct(reflect.TypeOf(testScanner{}))
	names := []string{}
	for _, field := range scan.fields {
		names = append(names, field.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
	assert.Equal(t, []int{2, 0}, scan.fields[1].Index)
}

func TestTagTokenString(t *testing.T) {
	assert.Equal(t, `"\n"`, tagToken{Type: scanner.String, Value: "\n"}.String())
	assert.Equal(t, "@", tagToken{Type: '@', Value: "@"}.String())
	assert.Equal(t, "<EOF>", tagToken{Type: scanner.EOF}.String())
}

func TestFieldTag(t *testing.T) {
	type testScanner struct {
		A string `shape:"@ \",\"" json:"a"`
		B string `"," @`
	}

	st := reflect.TypeOf(testScanner{})
	assert.Equal(t, `@ ","`, fieldTag(st.Field(0)))
	assert.Equal(t, `"," @`, fieldTag(st.Field(1)))
}
