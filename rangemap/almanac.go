// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package rangemap

import (
	"errors"
	"fmt"
	"math"

	"github.com/creachadair/advent"
)

// An Almanac is a list of seed values together with the chain of mapping
// stages that carry them to their final locations.
type Almanac struct {
	Seeds []uint64
	Chain Chain
}

// ParseAlmanac parses an almanac from text of the form:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each rule line gives the destination start, source start, and length.
// Rules of zero length, rules whose ends overflow, and stages whose rules
// overlap are rejected. Errors in the grammar have concrete type
// *advent.ParseError.
func ParseAlmanac(text string) (*Almanac, error) {
	c := advent.Locate(text)
	if _, err := advent.Literal("seeds:")(c); err != nil {
		return nil, err
	}
	advent.Spaces()(c)
	seeds, err := advent.Separated(advent.Uint(), advent.Spaces1(), 1)(c)
	if err != nil {
		return nil, err
	} else if err := eol(c); err != nil {
		return nil, err
	}

	var chain Chain
	for {
		advent.Blanks()(c)
		if c.AtEOF() {
			break
		}
		m, err := parseMapper(c)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	return &Almanac{Seeds: seeds, Chain: chain}, nil
}

// parseMapper parses a "<name> map:" header followed by one or more rules.
func parseMapper(c *advent.Cursor) (*Mapper, error) {
	start := c.Pos()
	name, _ := advent.TakeTill(" \t\r\n")(c)
	if name == "" {
		return nil, c.Errorf("want map name, got %q", firstByte(c))
	}
	if _, err := advent.Spaces1()(c); err != nil {
		return nil, err
	}
	if _, err := advent.Literal("map:")(c); err != nil {
		return nil, err
	} else if err := eol(c); err != nil {
		return nil, err
	}

	m := &Mapper{Name: name}
	for {
		advent.Blanks()(c)
		if !atDigit(c) {
			break
		}
		lineStart := c.Pos()
		r, err := parseMapRange(c)
		if err != nil {
			return nil, err
		}
		if err := r.Check(); err != nil {
			return nil, &advent.ParseError{LineCol: c.LineCol(lineStart), Err: err}
		}
		m.Ranges = append(m.Ranges, r)
	}
	if len(m.Ranges) == 0 {
		return nil, c.Errorf("want at least one rule for %q", name)
	}
	if err := m.Validate(); err != nil {
		return nil, &advent.ParseError{
			LineCol: c.LineCol(start),
			Err:     fmt.Errorf("invalid %q map: %w", name, err),
		}
	}
	return m, nil
}

// parseMapRange parses a single line of three integers.
func parseMapRange(c *advent.Cursor) (MapRange, error) {
	ns, err := advent.Separated(advent.Uint(), advent.Spaces1(), 3)(c)
	if err != nil {
		return MapRange{}, err
	} else if len(ns) != 3 {
		return MapRange{}, c.Errorf("want 3 values, got %d", len(ns))
	} else if err := eol(c); err != nil {
		return MapRange{}, err
	}
	return MapRange{Dest: ns[0], Source: ns[1], Length: ns[2]}, nil
}

func atDigit(c *advent.Cursor) bool {
	ch, ok := c.Peek()
	return ok && '0' <= ch && ch <= '9'
}

func firstByte(c *advent.Cursor) byte { ch, _ := c.Peek(); return ch }

func eol(c *advent.Cursor) error {
	_, err := advent.EndOfLine()(c)
	return err
}

// SeedRanges interprets the seeds of a as consecutive pairs of a start value
// and a length, and returns the set of all values they cover.
func (a *Almanac) SeedRanges() (*Set, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("odd number of seed values (%d)", len(a.Seeds))
	}
	s := new(Set)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, n := a.Seeds[i], a.Seeds[i+1]
		if start > math.MaxUint64-n {
			return nil, fmt.Errorf("seed range %d+%d overflows", start, n)
		}
		s.Add(Interval{Start: start, End: start + n})
	}
	return s, nil
}

// LowestLocation returns the smallest value that any single seed of a maps
// to through the chain.
func (a *Almanac) LowestLocation() (uint64, error) {
	if len(a.Seeds) == 0 {
		return 0, errors.New("no seeds")
	}
	best := uint64(math.MaxUint64)
	for _, seed := range a.Seeds {
		best = min(best, a.Chain.Map(seed))
	}
	return best, nil
}

// LowestRangeLocation returns the smallest value that any seed in the seed
// ranges of a maps to through the chain.
func (a *Almanac) LowestRangeLocation() (uint64, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.Chain.MapSet(seeds).Min()
}
