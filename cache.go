package shape

import (
	"reflect"
	"sync"
)

var parsers sync.Map // map[reflect.Type]any (*Parser[T])

// Returns a cached parser for T, or a new one if options are provided.
func parserFor[T any](options []Option) (*Parser[T], error) {
	if len(options) > 0 {
		return Build[T](options...)
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if p, ok := parsers.Load(t); ok {
		return p.(*Parser[T]), nil
	}
	p, err := Build[T]()
	if err != nil {
		return nil, err
	}
	actual, _ := parsers.LoadOrStore(t, p)
	return actual.(*Parser[T]), nil
}

// Parse text into a new T.
//
// Without options the parser for T is built once and cached for the life of the process.
func Parse[T any](text string, options ...Option) (T, error) {
	p, err := parserFor[T](options)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Parse(text)
}

// ParseSeparated splits text by every match of separator and parses each piece into a T.
func ParseSeparated[T any](text, separator string, options ...Option) ([]T, error) {
	p, err := parserFor[T](options)
	if err != nil {
		return nil, err
	}
	return p.ParseSeparated(text, separator)
}
