// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package advent

import (
	"errors"
	"fmt"
	"strings"

	"go4.org/mem"
)

// A Parser consumes a prefix of the input at c and returns a value.
// A parser that reports an error may have consumed input; callers that need
// to retry at the same position should Mark and Reset the cursor.
type Parser[T any] func(c *Cursor) (T, error)

// Spanned is a parsed value together with the location where it occurred.
type Spanned[T any] struct {
	Value T
	Loc   LineSpan
}

// WithSpan runs p at c and returns its result along with the location of the
// text it consumed. The line is determined by the offset where p began.
//
// If the starting offset is not covered by any line of c, WithSpan reports a
// *LookupError without running p, and c is not modified. Errors from p are
// returned unchanged.
func WithSpan[T any](c *Cursor, p Parser[T]) (T, LineSpan, error) {
	var zero T
	start := c.Pos()
	line, err := c.LineOf(start)
	if err != nil {
		return zero, LineSpan{}, err
	}
	v, err := p(c)
	if err != nil {
		return zero, LineSpan{}, err
	}
	base := c.lines[line].Pos
	return v, LineSpan{Line: line, Col: Span{Pos: start - base, End: c.Pos() - base}}, nil
}

// SpanOf runs p at c and returns only the location of the text it consumed.
// It is otherwise equivalent to WithSpan.
func SpanOf[T any](c *Cursor, p Parser[T]) (LineSpan, error) {
	_, loc, err := WithSpan(c, p)
	return loc, err
}

// Located returns a parser that runs p and reports its location with its
// value, as WithSpan does.
func Located[T any](p Parser[T]) Parser[Spanned[T]] {
	return func(c *Cursor) (Spanned[T], error) {
		v, loc, err := WithSpan(c, p)
		if err != nil {
			return Spanned[T]{}, err
		}
		return Spanned[T]{Value: v, Loc: loc}, nil
	}
}

// Parse runs p over the whole of text. Trailing whitespace after p is
// permitted; any other unconsumed input is an error.
func Parse[T any](text string, p Parser[T]) (T, error) {
	c := Locate(text)
	v, err := p(c)
	if err != nil {
		return v, err
	}
	c.readWhile(isBlank)
	if !c.AtEOF() {
		var zero T
		return zero, c.Errorf("unexpected %s after input", c.next())
	}
	return v, nil
}

// FindAll scans the remainder of c for matches of p. Wherever p does not
// match, one byte is skipped and the scan continues. It returns every match
// in order of occurrence.
//
// FindAll fails only if p reports a *LookupError.
func FindAll[T any](c *Cursor, p Parser[T]) ([]T, error) {
	var out []T
	for !c.AtEOF() {
		mark := c.Mark()
		v, err := p(c)
		if err == nil {
			out = append(out, v)
			if c.Pos() == mark {
				c.Advance(1) // p matched empty; avoid looping forever
			}
			continue
		}
		var lerr *LookupError
		if errors.As(err, &lerr) {
			return out, err
		}
		c.Reset(mark)
		c.Advance(1)
	}
	return out, nil
}

// Separated returns a parser for values matching p, separated by matches of
// sep. It fails if fewer than atLeast values match. A separator that is not
// followed by a value is not consumed.
func Separated[T, S any](p Parser[T], sep Parser[S], atLeast int) Parser[[]T] {
	return func(c *Cursor) ([]T, error) {
		var out []T
		mark := c.Mark()
		for {
			v, err := p(c)
			if err != nil {
				if len(out) < atLeast {
					return nil, err
				}
				c.Reset(mark)
				return out, nil
			}
			out = append(out, v)
			mark = c.Mark()
			if _, err := sep(c); err != nil {
				if len(out) < atLeast {
					return nil, err
				}
				c.Reset(mark)
				return out, nil
			}
		}
	}
}

// Count returns a parser for exactly n consecutive values matching p.
func Count[T any](p Parser[T], n int) Parser[[]T] {
	return func(c *Cursor) ([]T, error) {
		out := make([]T, 0, n)
		for range n {
			v, err := p(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// Literal returns a parser that matches exactly s.
func Literal(s string) Parser[string] {
	want := mem.S(s)
	return func(c *Cursor) (string, error) {
		if !mem.HasPrefix(mem.S(c.Rest()), want) {
			return "", c.Errorf("want %q, got %s", s, c.next())
		}
		c.Advance(len(s))
		return s, nil
	}
}

// Byte returns a parser that matches the single byte b.
func Byte(b byte) Parser[byte] {
	return func(c *Cursor) (byte, error) {
		if ch, ok := c.Peek(); ok && ch == b {
			c.Advance(1)
			return ch, nil
		}
		return 0, c.Errorf("want %q, got %s", b, c.next())
	}
}

// AnyByte returns a parser that matches any single byte.
func AnyByte() Parser[byte] {
	return func(c *Cursor) (byte, error) {
		ch, ok := c.Peek()
		if !ok {
			return 0, c.Errorf("unexpected end of input")
		}
		c.Advance(1)
		return ch, nil
	}
}

// NoneOf returns a parser that matches any single byte not in set.
func NoneOf(set string) Parser[byte] {
	return func(c *Cursor) (byte, error) {
		ch, ok := c.Peek()
		if !ok || strings.IndexByte(set, ch) >= 0 {
			return 0, c.Errorf("want a byte not in %q, got %s", set, c.next())
		}
		c.Advance(1)
		return ch, nil
	}
}

// Take returns a parser that matches exactly n bytes of any value.
func Take(n int) Parser[string] {
	return func(c *Cursor) (string, error) {
		if len(c.Rest()) < n {
			return "", c.Errorf("want %d bytes, got %d", n, len(c.Rest()))
		}
		s := c.Rest()[:n]
		c.Advance(n)
		return s, nil
	}
}

// TakeTill returns a parser that matches zero or more bytes up to (but not
// including) the first byte in stop, or the end of input.
func TakeTill(stop string) Parser[string] {
	return func(c *Cursor) (string, error) {
		return c.readWhile(func(b byte) bool { return strings.IndexByte(stop, b) < 0 }), nil
	}
}

// Digits returns a parser that matches one or more decimal digits.
func Digits() Parser[string] {
	return func(c *Cursor) (string, error) {
		if d := c.readWhile(isDigit); d != "" {
			return d, nil
		}
		return "", c.Errorf("want digit, got %s", c.next())
	}
}

// Alpha returns a parser that matches one or more ASCII letters.
func Alpha() Parser[string] {
	return func(c *Cursor) (string, error) {
		if w := c.readWhile(isAlpha); w != "" {
			return w, nil
		}
		return "", c.Errorf("want letter, got %s", c.next())
	}
}

// Word returns a parser that matches one or more ASCII letters, digits, and
// underscores.
func Word() Parser[string] {
	return func(c *Cursor) (string, error) {
		if w := c.readWhile(isWord); w != "" {
			return w, nil
		}
		return "", c.Errorf("want word, got %s", c.next())
	}
}

// Uint returns a parser that matches an unsigned decimal integer.
func Uint() Parser[uint64] {
	return func(c *Cursor) (uint64, error) {
		start := c.Mark()
		d, err := Digits()(c)
		if err != nil {
			return 0, err
		}
		v, err := mem.ParseUint(mem.S(d), 10, 64)
		if err != nil {
			c.Reset(start)
			return 0, c.Errorf("invalid number %q: %w", d, err)
		}
		return v, nil
	}
}

// Int returns a parser that matches a decimal integer with an optional
// leading sign.
func Int() Parser[int64] {
	return func(c *Cursor) (int64, error) {
		start := c.Mark()
		if ch, ok := c.Peek(); ok && (ch == '-' || ch == '+') {
			c.Advance(1)
		}
		if _, err := Digits()(c); err != nil {
			c.Reset(start)
			return 0, err
		}
		text := c.text[start:c.pos]
		v, err := mem.ParseInt(mem.S(text), 10, 64)
		if err != nil {
			c.Reset(start)
			return 0, c.Errorf("invalid number %q: %w", text, err)
		}
		return v, nil
	}
}

// Spaces returns a parser that matches zero or more spaces and tabs.
func Spaces() Parser[string] {
	return func(c *Cursor) (string, error) { return c.readWhile(isSpace), nil }
}

// Spaces1 returns a parser that matches one or more spaces and tabs.
func Spaces1() Parser[string] {
	return func(c *Cursor) (string, error) {
		if s := c.readWhile(isSpace); s != "" {
			return s, nil
		}
		return "", c.Errorf("want space, got %s", c.next())
	}
}

// Blanks returns a parser that matches zero or more whitespace bytes,
// including line breaks.
func Blanks() Parser[string] {
	return func(c *Cursor) (string, error) { return c.readWhile(isBlank), nil }
}

// Blanks1 returns a parser that matches one or more whitespace bytes,
// including line breaks.
func Blanks1() Parser[string] {
	return func(c *Cursor) (string, error) {
		if s := c.readWhile(isBlank); s != "" {
			return s, nil
		}
		return "", c.Errorf("want whitespace, got %s", c.next())
	}
}

// Newline returns a parser that matches a single "\n" or "\r\n".
func Newline() Parser[string] {
	return func(c *Cursor) (string, error) {
		rest := c.Rest()
		switch {
		case strings.HasPrefix(rest, "\n"):
			c.Advance(1)
			return "\n", nil
		case strings.HasPrefix(rest, "\r\n"):
			c.Advance(2)
			return "\r\n", nil
		}
		return "", c.Errorf("want line break, got %s", c.next())
	}
}

// next describes the next unconsumed input for error messages.
func (c *Cursor) next() string {
	ch, ok := c.Peek()
	if !ok {
		return "end of input"
	}
	return fmt.Sprintf("%q", ch)
}

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' }
func isBlank(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' }
func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
func isAlpha(ch byte) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isWord(ch byte) bool  { return isAlpha(ch) || isDigit(ch) || ch == '_' }

// EndOfLine returns a parser that matches optional trailing spaces followed
// by a line break or the end of input.
func EndOfLine() Parser[string] {
	return func(c *Cursor) (string, error) {
		start := c.Mark()
		c.readWhile(isSpace)
		if c.AtEOF() {
			return c.text[start:], nil
		}
		if _, err := Newline()(c); err != nil {
			return "", c.Errorf("want end of line, got %s", c.next())
		}
		return c.text[start:c.pos], nil
	}
}

// Lines returns a parser for a sequence of lines, each consisting of a single
// value matching p. Blank lines are skipped. Each line must be consumed
// entirely by p, apart from trailing spaces.
func Lines[T any](p Parser[T]) Parser[[]T] {
	return func(c *Cursor) ([]T, error) {
		var out []T
		for {
			c.readWhile(isBlank)
			if c.AtEOF() {
				return out, nil
			}
			v, err := p(c)
			if err != nil {
				return nil, err
			}
			if _, err := EndOfLine()(c); err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
}
