// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// A Selector designates which puzzles to run: either all of them, or a
// single day.
type Selector struct {
	All bool
	Day int // meaningful only if !All
}

// ParseSelector parses a command of the form "all" or "day<N>".
// It does not check whether day N is registered; see Select.
func ParseSelector(arg string) (Selector, error) {
	if arg == "all" {
		return Selector{All: true}, nil
	}
	rest, ok := strings.CutPrefix(arg, "day")
	if !ok {
		return Selector{}, fmt.Errorf("unknown command %q (want \"all\" or \"day<N>\")", arg)
	}
	if rest == "" || strings.Trim(rest, "0123456789") != "" {
		return Selector{}, fmt.Errorf("invalid puzzle index %q", rest)
	}
	day, err := strconv.Atoi(rest)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid puzzle index %q: %w", rest, err)
	}
	return Selector{Day: day}, nil
}

func (s Selector) String() string {
	if s.All {
		return "all"
	}
	return "day" + strconv.Itoa(s.Day)
}

// Select returns the puzzles of r designated by s.
func (s Selector) Select(r *Registry) ([]Puzzle, error) {
	if s.All {
		return r.All(), nil
	}
	p, err := r.Lookup(s.Day)
	if err != nil {
		return nil, err
	}
	return []Puzzle{p}, nil
}
