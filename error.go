package shape

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DecodeError is returned when a span of text could not be converted into a value.
//
// Err is the underlying conversion error, eg. a *strconv.NumError.
type DecodeError struct {
	// Field path the span was captured into, eg. "Report.Levels[2]". May be empty.
	Field string
	Text  string
	Err   error

	named bool
}

func (d *DecodeError) Error() string {
	if d.Field == "" {
		return d.Err.Error()
	}
	return fmt.Sprintf("%s: %s", d.Field, d.Err)
}

func (d *DecodeError) Unwrap() error { return d.Err }

// VariantError is the reason a single union member was rejected.
type VariantError struct {
	Variant string
	Err     error
}

// UnionError is returned when no member of a union matched.
type UnionError struct {
	Union    string
	Variants []VariantError
}

func (u *UnionError) Error() string {
	w := &strings.Builder{}
	fmt.Fprintf(w, "could not find a match for union %s", u.Union)
	for _, variant := range u.Variants {
		msg := strings.ReplaceAll(variant.Err.Error(), "\n", "\n    ")
		fmt.Fprintf(w, "\n    %s: %s", variant.Variant, msg)
	}
	return w.String()
}

// Unwrap returns the error of every rejected member.
func (u *UnionError) Unwrap() []error {
	out := make([]error, 0, len(u.Variants))
	for _, variant := range u.Variants {
		out = append(out, variant.Err)
	}
	return out
}

// Prefix the field path of an undecorated DecodeError.
func annotateField(err error, prefix string, final bool) error {
	if d, ok := err.(*DecodeError); ok && !d.named {
		d.Field = prefix + d.Field
		d.named = final
	}
	return err
}

// Prefix the index of an element of a separated top-level parse, ahead of any field path.
func annotateIndex(err error, i int) error {
	if d, ok := err.(*DecodeError); ok {
		index := fmt.Sprintf("[%d]", i)
		if d.Field != "" && !strings.HasPrefix(d.Field, "[") {
			index += "."
		}
		d.Field = index + d.Field
		d.named = true
	}
	return err
}

// Errors raised while building a grammar.
type grammarError struct{ err error }

func panicf(format string, args ...interface{}) {
	panic(grammarError{errors.Errorf(format, args...)})
}

func decorate(name func() string) {
	if msg := recover(); msg != nil {
		if ge, ok := msg.(grammarError); ok {
			panic(grammarError{errors.Wrap(ge.err, name())})
		}
		panic(msg)
	}
}

func recoverToError(err *error) {
	if msg := recover(); msg != nil {
		if ge, ok := msg.(grammarError); ok {
			*err = ge.err
			return
		}
		panic(msg)
	}
}
