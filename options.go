package shape

import (
	"io"
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *parserOptions) error

type parserOptions struct {
	unions        map[reflect.Type][]reflect.Type
	trace         io.Writer
	log           logrus.FieldLogger
	quoteLiterals bool
}

func newParserOptions(options []Option) (*parserOptions, error) {
	p := &parserOptions{unions: map[reflect.Type][]reflect.Type{}}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Union registers the members of the sum type I.
//
// Fields of type I are decoded by trying each member's shape in the order given here. The
// first member to match wins. Members may be struct values or pointers to structs.
func Union[I any](members ...I) Option {
	return func(p *parserOptions) error {
		iface := reflect.TypeOf((*I)(nil)).Elem()
		if iface.Kind() != reflect.Interface {
			return errors.Errorf("union: %s is not an interface", iface)
		}
		if len(members) == 0 {
			return errors.Errorf("union: %s has no members", iface)
		}
		for _, member := range members {
			t := reflect.TypeOf(member)
			if t == nil {
				return errors.Errorf("union: nil member for %s", iface)
			}
			p.unions[iface] = append(p.unions[iface], t)
		}
		return nil
	}
}

// Trace the parse to "w".
func Trace(w io.Writer) Option {
	return func(p *parserOptions) error {
		p.trace = w
		return nil
	}
}

// Logger emits debug entries for rejected union members and failed shapes.
func Logger(log logrus.FieldLogger) Option {
	return func(p *parserOptions) error {
		p.log = log
		return nil
	}
}

// QuoteLiterals matches tag literals exactly rather than as regular expressions.
func QuoteLiterals() Option {
	return func(p *parserOptions) error {
		p.quoteLiterals = true
		return nil
	}
}
