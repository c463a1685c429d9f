package shape

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/shape/buffer"
)

type VariantTest interface{ variant() }

type Foo struct {
	Bar string `"foo" @ "baz"`
	Bz  int    `@`
}

func (Foo) variant() {}

type Fiz struct {
	Buz int `"fiz" @ "buz"`
}

func (Fiz) variant() {}

func variantTestParser(t *testing.T, options ...Option) *Parser[VariantTest] {
	t.Helper()
	return mustTestParser[VariantTest](t, append([]Option{Union[VariantTest](Foo{}, Fiz{})}, options...)...)
}

func TestUnionFirstVariant(t *testing.T) {
	parser := variantTestParser(t)

	actual, err := parser.Parse("foob@rbaz3")
	require.NoError(t, err)
	assert.Equal(t, Foo{Bar: "b@r", Bz: 3}, actual)
}

func TestUnionSecondVariant(t *testing.T) {
	parser := variantTestParser(t)

	actual, err := parser.Parse("fiz15buz")
	require.NoError(t, err)
	assert.Equal(t, Fiz{Buz: 15}, actual)
}

func TestUnionFirstMatchWins(t *testing.T) {
	type anything struct {
		Text string `@`
	}
	type Any interface{}

	parser := mustTestParser[Any](t, Union[Any](anything{}, Foo{}))
	actual, err := parser.Parse("foob@rbaz3")
	require.NoError(t, err)
	assert.Equal(t, anything{Text: "foob@rbaz3"}, actual)

	parser = mustTestParser[Any](t, Union[Any](Foo{}, anything{}))
	actual, err = parser.Parse("foob@rbaz3")
	require.NoError(t, err)
	assert.Equal(t, Foo{Bar: "b@r", Bz: 3}, actual)
}

func TestUnionNoMatch(t *testing.T) {
	parser := variantTestParser(t)

	actual, err := parser.Parse("faz")
	require.EqualError(t, err, "could not find a match for union VariantTest\n"+
		"    Foo: skip didn't find \"foo\" when searching in \"faz\" as part of \"faz\"\n"+
		"    Fiz: skip didn't find \"fiz\" when searching in \"faz\" as part of \"faz\"")
	assert.Nil(t, actual)

	var unionErr *UnionError
	require.ErrorAs(t, err, &unionErr)
	require.Len(t, unionErr.Variants, 2)
	assert.Equal(t, "Foo", unionErr.Variants[0].Variant)
	assert.Equal(t, "Fiz", unionErr.Variants[1].Variant)

	var notFound *buffer.PatternNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "foo", notFound.Pattern.String())
}

func TestUnionVariantDecodeError(t *testing.T) {
	parser := variantTestParser(t)

	_, err := parser.Parse("foobarbazx")
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	require.Contains(t, err.Error(), `    Foo: Foo.Bz: strconv.ParseInt: parsing "x": invalid syntax`)
}

func TestUnionPointerMembers(t *testing.T) {
	type Shape interface{}
	type circle struct {
		R int `"circle " @`
	}
	type square struct {
		Side int `"square " @`
	}

	parser := mustTestParser[Shape](t, Union[Shape](&circle{}, &square{}))
	actual, err := parser.Parse("square 4")
	require.NoError(t, err)
	assert.Equal(t, &square{Side: 4}, actual)
}

type instruction interface{ instruction() }

type mul struct {
	A int `"mul\\(" @ ","`
	B int `@ "\\)"`
}

func (mul) instruction() {}

type enable struct {
	_ struct{} `"^do\\(\\)$"`
}

func (enable) instruction() {}

type disable struct {
	_ struct{} `"^don't\\(\\)$"`
}

func (disable) instruction() {}

func TestUnionSeparatedField(t *testing.T) {
	type program struct {
		Instructions []instruction `@{";"}`
	}

	parser := mustTestParser[program](t, Union[instruction](mul{}, enable{}, disable{}))
	actual, err := parser.Parse("mul(2,4);don't();mul(5,5);do();mul(8,5)")
	require.NoError(t, err)
	assert.Equal(t, []instruction{mul{2, 4}, disable{}, mul{5, 5}, enable{}, mul{8, 5}}, actual.Instructions)

	_, err = parser.Parse("mul(2,4);undo()")
	var unionErr *UnionError
	require.ErrorAs(t, err, &unionErr)
	assert.Equal(t, "instruction", unionErr.Union)
	assert.Len(t, unionErr.Variants, 3)
}

func TestUnionErrorIndentsNestedUnions(t *testing.T) {
	err := &UnionError{Union: "Outer", Variants: []VariantError{
		{Variant: "Inner", Err: &UnionError{Union: "Inner", Variants: []VariantError{
			{Variant: "A", Err: errors.New("a failed")},
		}}},
		{Variant: "B", Err: errors.New("b failed")},
	}}
	assert.Equal(t, "could not find a match for union Outer\n"+
		"    Inner: could not find a match for union Inner\n"+
		"        A: a failed\n"+
		"    B: b failed", err.Error())
}
