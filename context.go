package shape

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Context for a single parse.
type parseContext struct {
	trace io.Writer
	log   logrus.FieldLogger
	depth int
}

func newParseContext(options *parserOptions) *parseContext {
	return &parseContext{trace: options.trace, log: options.log}
}

func (p *parseContext) tracef(format string, args ...interface{}) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, "%s%s\n", strings.Repeat("  ", p.depth), fmt.Sprintf(format, args...))
}
