// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day6 solves "Wait For It": counting the ways to win boat races by
// choosing how long to charge the boat.
package day6

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/creachadair/advent"
	"go4.org/mem"
)

// Title is the name of the puzzle.
const Title = "Wait For It"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 6.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 returns the product of the number of ways to win each race.
func (Solver) Part1(input string) (int64, error) {
	t, err := parseTable(input)
	if err != nil {
		return 0, err
	}
	prod := int64(1)
	for i := range t.times {
		r, err := newRace(t.times[i], t.dists[i])
		if err != nil {
			return 0, err
		}
		prod *= r.Wins()
	}
	return prod, nil
}

// Part2 returns the number of ways to win the single race whose time and
// distance are given by the concatenated digits of each line.
func (Solver) Part2(input string) (int64, error) {
	t, err := parseTable(input)
	if err != nil {
		return 0, err
	}
	r, err := newRace(strings.Join(t.times, ""), strings.Join(t.dists, ""))
	if err != nil {
		return 0, err
	}
	return r.Wins(), nil
}

// A Race has a duration and the record distance to beat.
type Race struct {
	Time, Record int64
}

// Wins returns the number of whole-millisecond charge times h with which the
// boat travels h*(Time-h), strictly farther than the record.
func (r Race) Wins() int64 {
	beats := func(h int64) bool { return h*(r.Time-h) > r.Record }

	// The winning charge times lie strictly between the roots of
	// h^2 - Time*h + Record = 0, and are symmetric about Time/2.
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Record)
	if disc < 0 {
		return 0
	}
	lo := int64(math.Floor((float64(r.Time)-math.Sqrt(disc))/2)) + 1
	lo = max(lo, 0)
	for lo > 0 && beats(lo-1) {
		lo--
	}
	for lo <= r.Time/2 && !beats(lo) {
		lo++
	}
	if lo > r.Time/2 {
		return 0
	}
	return r.Time - 2*lo + 1
}

type table struct {
	times, dists []string
}

func newRace(time, dist string) (Race, error) {
	tv, err := mem.ParseInt(mem.S(time), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("invalid time: %w", err)
	}
	dv, err := mem.ParseInt(mem.S(dist), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("invalid distance: %w", err)
	}
	return Race{Time: tv, Record: dv}, nil
}

// parseTable parses the "Time:" and "Distance:" lines, keeping the digits of
// each column.
func parseTable(input string) (table, error) {
	c := advent.Locate(input)
	advent.Blanks()(c)
	times, err := row(c, "Time:")
	if err != nil {
		return table{}, err
	}
	advent.Blanks()(c)
	dists, err := row(c, "Distance:")
	if err != nil {
		return table{}, err
	}
	advent.Blanks()(c)
	if !c.AtEOF() {
		return table{}, c.Errorf("unexpected input after distances")
	}
	if len(times) != len(dists) {
		return table{}, fmt.Errorf("got %d times and %d distances", len(times), len(dists))
	}
	return table{times: times, dists: dists}, nil
}

func row(c *advent.Cursor, label string) ([]string, error) {
	if _, err := advent.Literal(label)(c); err != nil {
		return nil, err
	}
	advent.Spaces()(c)
	vs, err := advent.Separated(advent.Digits(), advent.Spaces1(), 1)(c)
	if err != nil {
		return nil, err
	}
	if _, err := advent.EndOfLine()(c); err != nil {
		return nil, err
	}
	return vs, nil
}
