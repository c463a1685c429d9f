// Package buffer provides a forward-only cursor over an immutable string.
//
// A Buffer never copies the text it wraps; every value it returns is a slice
// of the original input.
package buffer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Position of the cursor within the full input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Offset: %d, Line: %d, Column: %d}", p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionOf computes the Position of offset within text.
func PositionOf(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	column := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1
	return Position{Offset: offset, Line: line, Column: column}
}

// A Buffer scans forward through a string.
//
// Remaining() is always a suffix of Full().
type Buffer struct {
	full      string
	remaining string
}

// New wraps text in a Buffer with the cursor at the start.
func New(text string) *Buffer {
	return &Buffer{full: text, remaining: text}
}

// Full returns the complete input.
func (b *Buffer) Full() string { return b.full }

// Remaining returns the unconsumed input.
func (b *Buffer) Remaining() string { return b.remaining }

// Offset of the cursor in bytes from the start of the input.
func (b *Buffer) Offset() int { return len(b.full) - len(b.remaining) }

// Position of the cursor.
func (b *Buffer) Position() Position { return PositionOf(b.full, b.Offset()) }

// Skip advances past the first match of pattern in the remaining input.
//
// The match does not need to start at the cursor.
func (b *Buffer) Skip(pattern *regexp.Regexp) error {
	loc := pattern.FindStringIndex(b.remaining)
	if loc == nil {
		return b.notFound("skip", pattern)
	}
	b.remaining = b.remaining[loc[1]:]
	return nil
}

// ReadUntil returns the input before the first match of pattern and advances past the match.
func (b *Buffer) ReadUntil(pattern *regexp.Regexp) (string, error) {
	loc := pattern.FindStringIndex(b.remaining)
	if loc == nil {
		return "", b.notFound("read until", pattern)
	}
	out := b.remaining[:loc[0]]
	b.remaining = b.remaining[loc[1]:]
	return out, nil
}

// ReadToEnd consumes and returns the rest of the input.
func (b *Buffer) ReadToEnd() string {
	out := b.remaining
	b.remaining = b.remaining[len(b.remaining):]
	return out
}

// EOF returns true if all input has been consumed.
func (b *Buffer) EOF() bool { return b.remaining == "" }

func (b *Buffer) notFound(op string, pattern *regexp.Regexp) *PatternNotFoundError {
	return &PatternNotFoundError{
		Op:        op,
		Pattern:   pattern,
		Remaining: b.remaining,
		Full:      b.full,
		Pos:       b.Position(),
	}
}

// Split text around every match of sep.
//
// Empty text yields a single empty element.
func Split(text string, sep *regexp.Regexp) []string {
	return sep.Split(text, -1)
}
