// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package advent implements a small location-aware parsing toolkit for the
// puzzle solvers in this module.
//
// # Cursors
//
// A Cursor is a read position in a text together with a precomputed table of
// the byte ranges of each line. Construct one with Locate and pass it to
// parsers, which advance it as they consume input:
//
//	c := advent.Locate(input)
//	n, err := advent.Uint()(c)
//
// # Parsers
//
// A Parser is a function that consumes a prefix of the input at a cursor and
// returns a value or an error. Errors describing a grammar mismatch have
// concrete type *advent.ParseError and report the line and column where the
// mismatch was found.
//
// The constructors in this package (Literal, Uint, Spaces, NoneOf, and so on)
// cover only the small grammars the puzzles need, and the combinators
// Separated, Count, Lines, and FindAll compose them.
//
// # Locations
//
// Most of a grammar never needs to know where its tokens occurred. Where it
// does, wrap the parser for that token with WithSpan, SpanOf, or Located to
// obtain a LineSpan giving the 0-based line on which the token began and its
// column range within that line:
//
//	nums, err := advent.FindAll(c, advent.Located(advent.Uint()))
//	for _, n := range nums {
//		log.Printf("%d at line %d, columns %v", n.Value, n.Loc.Line, n.Loc.Col)
//	}
//
// The line is found by binary search over the line table. A match that starts
// past the last line reports an error of concrete type *advent.LookupError.
package advent
