package shape

import (
	"reflect"
)

// Wraps a node to trace each decode attempt and its outcome.
type trace struct {
	typ reflect.Type
	node
}

func (t *trace) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	ctx.tracef("%s %q", typeName(t.typ), text)
	ctx.depth++
	v, err := t.node.Decode(ctx, text)
	ctx.depth--
	if err != nil {
		ctx.tracef("%s failed: %s", typeName(t.typ), firstLine(err.Error()))
	}
	return v, err
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
