package shape

import (
	"encoding"
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alecthomas/shape/buffer"
	"github.com/alecthomas/shape/internal/logfields"
)

var (
	parseableType       = reflect.TypeOf((*Parseable)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// A node in the grammar.
type node interface {
	// Decode text into a new value of the node's type.
	//
	// A failed decode returns an invalid reflect.Value and never a partial value.
	Decode(ctx *parseContext, text string) (reflect.Value, error)
}

// A single step of a struct's shape.
type step interface {
	apply(ctx *parseContext, buf *buffer.Buffer, strct reflect.Value) error
}

// A struct decoded by running its steps in order against a fresh buffer.
type strct struct {
	typ   reflect.Type
	steps []step
}

func (s *strct) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	sv := reflect.New(s.typ).Elem()
	buf := buffer.New(text)
	for _, st := range s.steps {
		if err := st.apply(ctx, buf, sv); err != nil {
			if ctx.log != nil {
				ctx.log.WithFields(logrus.Fields{
					logfields.Type:   typeName(s.typ),
					logfields.Offset: buf.Offset(),
					logfields.Text:   text,
					logrus.ErrorKey:  err,
				}).Debug("Shape did not match")
			}
			return reflect.Value{}, err
		}
	}
	return sv, nil
}

// "..." skips past a literal.
type skip struct {
	pattern *regexp.Regexp
}

func (s *skip) apply(ctx *parseContext, buf *buffer.Buffer, strct reflect.Value) error {
	ctx.tracef("skip %q", s.pattern)
	return buf.Skip(s.pattern)
}

// @ captures a span into a field.
//
// The span ends at the first match of "until", or at the end of input if "until" is nil.
type capture struct {
	field structLexerField
	path  string
	until *regexp.Regexp
	node  node
}

func (c *capture) apply(ctx *parseContext, buf *buffer.Buffer, strct reflect.Value) error {
	var text string
	if c.until != nil {
		var err error
		if text, err = buf.ReadUntil(c.until); err != nil {
			return err
		}
	} else {
		text = buf.ReadToEnd()
	}
	ctx.tracef("%s <- %q", c.field.Name, text)
	v, err := c.node.Decode(ctx, text)
	if err != nil {
		return annotateField(err, c.path, true)
	}
	strct.FieldByIndex(c.field.Index).Set(v)
	return nil
}

// An interface with registered members, tried in order.
type union struct {
	typ     reflect.Type
	members []*unionMember
}

type unionMember struct {
	name string
	node node
}

func (u *union) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	failures := make([]VariantError, 0, len(u.members))
	for _, member := range u.members {
		ctx.tracef("try %s", member.name)
		v, err := member.node.Decode(ctx, text)
		if err == nil {
			out := reflect.New(u.typ).Elem()
			out.Set(v)
			return out, nil
		}
		if ctx.log != nil {
			ctx.log.WithFields(logrus.Fields{
				logfields.Union:   typeName(u.typ),
				logfields.Variant: member.name,
				logrus.ErrorKey:   err,
			}).Debug("Union member rejected")
		}
		failures = append(failures, VariantError{Variant: member.name, Err: err})
	}
	return reflect.Value{}, &UnionError{Union: typeName(u.typ), Variants: failures}
}

// *T
type pointer struct {
	typ  reflect.Type
	elem node
}

func (p *pointer) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	v, err := p.elem.Decode(ctx, text)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(p.typ.Elem())
	out.Elem().Set(v)
	return out, nil
}

// @{"sep"} splits a span and decodes each element.
type separated struct {
	typ  reflect.Type
	sep  *regexp.Regexp
	elem node
}

func (s *separated) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	parts := buffer.Split(text, s.sep)
	var out reflect.Value
	if s.typ.Kind() == reflect.Array {
		if len(parts) != s.typ.Len() {
			return reflect.Value{}, &DecodeError{Text: text, Err: errors.Errorf("expected %d elements separated by %q but found %d", s.typ.Len(), s.sep, len(parts))}
		}
		out = reflect.New(s.typ).Elem()
	} else {
		out = reflect.MakeSlice(s.typ, len(parts), len(parts))
	}
	for i, part := range parts {
		v, err := s.elem.Decode(ctx, part)
		if err != nil {
			return reflect.Value{}, annotateField(err, fmt.Sprintf("[%d]", i), false)
		}
		out.Index(i).Set(v)
	}
	return out, nil
}

// Strings, booleans and numbers.
type scalar struct {
	typ reflect.Type
}

func (s *scalar) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	v := reflect.New(s.typ).Elem()
	switch s.typ.Kind() {
	case reflect.String:
		v.SetString(text)

	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return reflect.Value{}, &DecodeError{Text: text, Err: err}
		}
		v.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, s.typ.Bits())
		if err != nil {
			return reflect.Value{}, &DecodeError{Text: text, Err: err}
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(text, 10, s.typ.Bits())
		if err != nil {
			return reflect.Value{}, &DecodeError{Text: text, Err: err}
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(text, s.typ.Bits())
		if err != nil {
			return reflect.Value{}, &DecodeError{Text: text, Err: err}
		}
		v.SetFloat(n)

	default:
		panic(fmt.Sprintf("scalar node for unsupported type %s", s.typ))
	}
	return v, nil
}

// []rune without a separator.
type chars struct {
	typ reflect.Type
}

// Elements are set one at a time so named element types such as "type Cell rune" work.
func (c *chars) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	runes := []rune(text)
	out := reflect.MakeSlice(c.typ, len(runes), len(runes))
	for i, r := range runes {
		out.Index(i).SetInt(int64(r))
	}
	return out, nil
}

// []byte without a separator.
type raw struct {
	typ reflect.Type
}

func (r *raw) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	out := reflect.MakeSlice(r.typ, len(text), len(text))
	for i := 0; i < len(text); i++ {
		out.Index(i).SetUint(uint64(text[i]))
	}
	return out, nil
}

// A type whose pointer implements Parseable.
type parseable struct {
	typ reflect.Type
}

func (p *parseable) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	rv := reflect.New(p.typ)
	if err := rv.Interface().(Parseable).Parse(text); err != nil {
		return reflect.Value{}, &DecodeError{Text: text, Err: err}
	}
	return rv.Elem(), nil
}

// A type whose pointer implements encoding.TextUnmarshaler.
type textUnmarshaler struct {
	typ reflect.Type
}

func (t *textUnmarshaler) Decode(ctx *parseContext, text string) (reflect.Value, error) {
	rv := reflect.New(t.typ)
	if err := rv.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
		return reflect.Value{}, &DecodeError{Text: text, Err: err}
	}
	return rv.Elem(), nil
}
