// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day10 solves "Pipe Maze": tracing a loop of pipes through a grid
// and measuring the area it encloses.
package day10

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/creachadair/advent"
)

// Title is the name of the puzzle.
const Title = "Pipe Maze"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 10.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 returns the number of steps along the loop to the point farthest
// from the start.
func (Solver) Part1(input string) (int64, error) {
	g, err := parseGrid(input)
	if err != nil {
		return 0, err
	}
	loop, err := g.Loop()
	if err != nil {
		return 0, err
	}
	return int64(len(loop) / 2), nil
}

// Part2 returns the number of tiles enclosed by the loop.
//
// The shoelace formula gives the area A of the polygon traced by the centers
// of the loop tiles. By Pick's theorem the number of interior points is
// A - b/2 + 1, where b is the number of loop tiles.
func (Solver) Part2(input string) (int64, error) {
	g, err := parseGrid(input)
	if err != nil {
		return 0, err
	}
	loop, err := g.Loop()
	if err != nil {
		return 0, err
	}
	var twice int64
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		twice += int64(p.Col*q.Row - q.Col*p.Row)
	}
	twice = max(twice, -twice)
	return (twice-int64(len(loop)))/2 + 1, nil
}

// A Dir is a set of compass directions in which a tile connects.
type Dir uint8

const (
	North Dir = 8
	South Dir = 4
	East  Dir = 2
	West  Dir = 1
)

// reverse returns the direction opposite d, which must be a single direction.
func (d Dir) reverse() Dir {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	}
	return East
}

var tiles = map[byte]Dir{
	'|': North | South,
	'-': East | West,
	'L': North | East,
	'J': North | West,
	'7': South | West,
	'F': South | East,
	'.': 0,
}

// A Point is a grid position.
type Point struct{ Row, Col int }

func (p Point) move(d Dir) Point {
	switch d {
	case North:
		p.Row--
	case South:
		p.Row++
	case East:
		p.Col++
	case West:
		p.Col--
	}
	return p
}

// A Grid is a field of pipe tiles with a single start position, whose own
// shape is not given.
type Grid struct {
	Start Point
	rows  [][]Dir
}

// At returns the connections of the tile at p. Points outside the grid and
// the start tile have no connections.
func (g *Grid) At(p Point) Dir {
	if p.Row < 0 || p.Row >= len(g.rows) || p.Col < 0 || p.Col >= len(g.rows[p.Row]) {
		return 0
	}
	return g.rows[p.Row][p.Col]
}

// Loop returns the points of the loop through the start, in order, beginning
// with the start. The start connects in the first of the directions North,
// South, East, West from which a walk returns to it.
func (g *Grid) Loop() ([]Point, error) {
	for _, d := range []Dir{North, South, East, West} {
		if loop, ok := g.walk(d); ok {
			return loop, nil
		}
	}
	return nil, fmt.Errorf("no loop through start %v", g.Start)
}

// walk follows pipes from the start in direction d, and reports whether it
// arrives back at the start.
func (g *Grid) walk(d Dir) ([]Point, bool) {
	loop := []Point{g.Start}
	p := g.Start
	for {
		next := p.move(d)
		if next == g.Start {
			return loop, len(loop) > 2
		}
		tile := g.At(next)
		if tile&d.reverse() == 0 {
			return nil, false // the pipe does not connect back
		}
		loop = append(loop, next)
		d = tile &^ d.reverse()
		p = next
	}
}

// parseGrid parses one row of tiles per line. Blank lines may precede or
// follow the grid, but not interrupt it, and rows may not be indented.
func parseGrid(input string) (*Grid, error) {
	var g Grid
	var found bool
	c := advent.Locate(input)
	for {
		mark := c.Mark()
		if _, err := advent.Newline()(c); err != nil {
			c.Reset(mark)
			break
		}
	}
	rows, err := advent.Separated(advent.Located(advent.TakeTill("\r\n")), advent.Newline(), 1)(c)
	if err != nil {
		return nil, err
	}
	advent.Blanks()(c)
	if !c.AtEOF() {
		return nil, c.Errorf("unexpected input after grid")
	}
	for len(rows) > 0 && rows[len(rows)-1].Value == "" {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		if row.Value == "" {
			return nil, locError(row, 0, "blank line in grid")
		}
		line := make([]Dir, len(row.Value))
		for j := range len(row.Value) {
			ch := row.Value[j]
			if ch == 'S' {
				if found {
					return nil, locError(row, j, "multiple start tiles")
				}
				g.Start, found = Point{Row: i, Col: j}, true
				continue
			}
			d, ok := tiles[ch]
			if !ok {
				return nil, locError(row, j, fmt.Sprintf("invalid tile %q", ch))
			}
			line[j] = d
		}
		g.rows = append(g.rows, line)
	}
	if !found {
		return nil, fmt.Errorf("no start tile %q", "S")
	}
	return &g, nil
}

func locError(row advent.Spanned[string], col int, msg string) error {
	return &advent.ParseError{
		LineCol: advent.LineCol{Line: row.Loc.Line + 1, Column: row.Loc.Col.Pos + col},
		Err:     errors.New(msg),
	}
}
