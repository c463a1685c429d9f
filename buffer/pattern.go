package buffer

import (
	"regexp"
	"sync"
)

var patterns sync.Map // map[string]*regexp.Regexp

// Pattern compiles expr, reusing a previously compiled expression if one exists.
func Pattern(expr string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	actual, _ := patterns.LoadOrStore(expr, re)
	return actual.(*regexp.Regexp), nil
}

// MustPattern is like Pattern but panics if expr does not compile.
func MustPattern(expr string) *regexp.Regexp {
	re, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return re
}

// Literal returns a cached pattern matching text exactly.
func Literal(text string) *regexp.Regexp {
	return MustPattern(regexp.QuoteMeta(text))
}
