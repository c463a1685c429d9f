package buffer

import (
	"fmt"
	"regexp"
)

// PatternNotFoundError is returned when a pattern does not occur in the remaining input.
type PatternNotFoundError struct {
	// Op is the operation that failed, "skip" or "read until".
	Op        string
	Pattern   *regexp.Regexp
	Remaining string
	Full      string
	// Pos is the cursor position when the search started.
	Pos Position
}

func (p *PatternNotFoundError) Error() string {
	return fmt.Sprintf("%s didn't find %q when searching in %q as part of %q",
		p.Op, p.Pattern.String(), p.Remaining, p.Full)
}

// Position the search started at.
func (p *PatternNotFoundError) Position() Position { return p.Pos }
