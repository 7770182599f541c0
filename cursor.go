// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package advent

import (
	"fmt"
	"sort"
)

// A Cursor is a read position in a text, together with a table of the byte
// ranges of each line of the text. Parsers advance the cursor as they consume
// input; the line table is fixed when the cursor is created.
type Cursor struct {
	text  string
	pos   int
	lines []Span // each line including its terminator, in order
}

// Locate constructs a cursor positioned at the start of text.
//
// Each line of text is recorded with its line terminator ("\n" or "\r\n"). A
// final line without a terminator is recorded if it is non-empty. Empty text
// has no lines, so every location lookup on its cursor reports a
// *LookupError.
func Locate(text string) *Cursor {
	var lines []Span
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, Span{Pos: start, End: i + 1})
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, Span{Pos: start, End: len(text)})
	}
	return &Cursor{text: text, lines: lines}
}

// Text returns the complete original text of c.
func (c *Cursor) Text() string { return c.text }

// Pos returns the current byte offset of c in its text.
func (c *Cursor) Pos() int { return c.pos }

// Rest returns the unconsumed remainder of the text.
func (c *Cursor) Rest() string { return c.text[c.pos:] }

// AtEOF reports whether the entire text has been consumed.
func (c *Cursor) AtEOF() bool { return c.pos >= len(c.text) }

// Peek returns the next unconsumed byte without consuming it.
// It reports false if c is at the end of its text.
func (c *Cursor) Peek() (byte, bool) {
	if c.AtEOF() {
		return 0, false
	}
	return c.text[c.pos], true
}

// Advance consumes n bytes of input, stopping at the end of the text.
func (c *Cursor) Advance(n int) {
	c.pos = min(c.pos+n, len(c.text))
}

// Mark returns a checkpoint that Reset can later restore.
func (c *Cursor) Mark() int { return c.pos }

// Reset restores c to a checkpoint previously returned by Mark.
func (c *Cursor) Reset(mark int) { c.pos = mark }

// NumLines reports the number of lines in the text of c.
func (c *Cursor) NumLines() int { return len(c.lines) }

// Line returns the byte range of line i (0-based), including its terminator.
func (c *Cursor) Line(i int) Span { return c.lines[i] }

// LineOf returns the 0-based index of the line containing offset.
// It reports a *LookupError if offset is not covered by any line.
func (c *Cursor) LineOf(offset int) (int, error) {
	// Find the first line whose end is after offset.
	i := sort.Search(len(c.lines), func(k int) bool {
		return c.lines[k].End > offset
	})
	if i == len(c.lines) || offset < c.lines[i].Pos {
		return 0, &LookupError{Offset: offset, Lines: len(c.lines)}
	}
	return i, nil
}

// LineCol returns the line and column of offset. Offsets past the last line
// are reported relative to the start of the last line, so that errors at the
// end of input still have a useful location.
func (c *Cursor) LineCol(offset int) LineCol {
	if i, err := c.LineOf(offset); err == nil {
		return LineCol{Line: i + 1, Column: offset - c.lines[i].Pos}
	} else if n := len(c.lines); n > 0 {
		return LineCol{Line: n, Column: offset - c.lines[n-1].Pos}
	}
	return LineCol{Line: 1, Column: offset}
}

// Errorf returns a *ParseError at the current position of c.
func (c *Cursor) Errorf(msg string, args ...any) error {
	return &ParseError{LineCol: c.LineCol(c.pos), Err: fmt.Errorf(msg, args...)}
}

// readWhile consumes bytes matching f until the end of input or until a byte
// not matching f is found, and returns the consumed text.
func (c *Cursor) readWhile(f func(byte) bool) string {
	start := c.pos
	for c.pos < len(c.text) && f(c.text[c.pos]) {
		c.pos++
	}
	return c.text[start:c.pos]
}

// A ParseError reports text that does not match the expected grammar.
type ParseError struct {
	LineCol       // where the mismatch was detected
	Err     error // what was expected
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", p.Err.Error(), p.Line, p.Column)
}

func (p *ParseError) Unwrap() error { return p.Err }

// A LookupError reports an offset that is not covered by the line table of a
// cursor.
type LookupError struct {
	Offset int // the offset requested
	Lines  int // the number of lines known
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("offset %d is not within any of %d lines", e.Offset, e.Lines)
}
