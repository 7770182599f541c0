// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package advent

import (
	"fmt"
	"strconv"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Pos }

// Contains reports whether offset lies inside s.
func (s Span) Contains(offset int) bool { return s.Pos <= offset && offset < s.End }

func (s Span) String() string {
	if s.End <= s.Pos {
		return strconv.Itoa(s.Pos)
	}
	return fmt.Sprintf("%d..%d", s.Pos, s.End)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A LineSpan describes where a match occurred in multi-line text: the line on
// which it began, and its column range relative to the start of that line.
// A match that crosses a line boundary has a Col.End past the end of Line.
type LineSpan struct {
	Line int  // line index, 0-based
	Col  Span // byte offsets relative to the start of Line
}

func (ls LineSpan) String() string {
	return fmt.Sprintf("%d:%d-%d", ls.Line, ls.Col.Pos, ls.Col.End)
}
