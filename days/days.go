// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package days collects the solvers for each daily puzzle.
package days

import (
	"github.com/creachadair/advent/days/day1"
	"github.com/creachadair/advent/days/day10"
	"github.com/creachadair/advent/days/day2"
	"github.com/creachadair/advent/days/day3"
	"github.com/creachadair/advent/days/day4"
	"github.com/creachadair/advent/days/day5"
	"github.com/creachadair/advent/days/day6"
	"github.com/creachadair/advent/days/day7"
	"github.com/creachadair/advent/days/day8"
	"github.com/creachadair/advent/days/day9"
	"github.com/creachadair/advent/puzzle"
)

// Registry returns a new registry containing every puzzle, in order by day.
func Registry() *puzzle.Registry {
	var r puzzle.Registry
	for _, p := range []puzzle.Puzzle{
		{Day: 1, Title: day1.Title, Solver: day1.Solver{}},
		{Day: 2, Title: day2.Title, Solver: day2.Solver{}},
		{Day: 3, Title: day3.Title, Solver: day3.Solver{}},
		{Day: 4, Title: day4.Title, Solver: day4.Solver{}},
		{Day: 5, Title: day5.Title, Solver: day5.Solver{}},
		{Day: 6, Title: day6.Title, Solver: day6.Solver{}},
		{Day: 7, Title: day7.Title, Solver: day7.Solver{}},
		{Day: 8, Title: day8.Title, Solver: day8.Solver{}},
		{Day: 9, Title: day9.Title, Solver: day9.Solver{}},
		{Day: 10, Title: day10.Title, Solver: day10.Solver{}},
	} {
		r.Register(p)
	}
	return &r
}
