package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringStruct(t *testing.T) {
	parser := mustTestParser[TestLeadingInnerAndTrailing](t)
	assert.Equal(t, `TestLeadingInnerAndTrailing = "game" @First:string "bz" @Bz:[]int{","} "bar" @Bar:int "baz" .`, parser.String())
}

func TestStringNested(t *testing.T) {
	parser := mustTestParser[robot](t)
	assert.Equal(t, `robot = "p=" @Position:point " " "v=" @Velocity:point .
point = @X:int "," @Y:int .`, parser.String())
}

func TestStringUnion(t *testing.T) {
	parser := variantTestParser(t)
	assert.Equal(t, `VariantTest = Foo | Fiz .
Foo = "foo" @Bar:string "baz" @Bz:int .
Fiz = "fiz" @Buz:int "buz" .`, parser.String())
}

func TestStringRecursive(t *testing.T) {
	parser := mustTestParser[expr](t, Union[expr](sum{}, &num{}))
	assert.Equal(t, `expr = sum | *num .
sum = @Left:int "\\+" @Right:expr .
num = @N:int .`, parser.String())
}

func TestStringArrayAndScalarRoot(t *testing.T) {
	type grammar struct {
		RGB [3]uint8 `"rgb " @{","}`
	}
	assert.Equal(t, `grammar = "rgb " @RGB:[3]uint8{","} .`, mustTestParser[grammar](t).String())
	assert.Equal(t, `int`, mustTestParser[int](t).String())
}

func TestStringWithTrace(t *testing.T) {
	parser := mustTestParser[point](t, Trace(&discard{}))
	assert.Equal(t, `point = @X:int "," @Y:int .`, parser.String())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
