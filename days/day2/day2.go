// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day2 solves "Cube Conundrum": checking games of colored cubes drawn
// from a bag against the cube counts.
package day2

import (
	_ "embed"

	"github.com/creachadair/advent"
)

// Title is the name of the puzzle.
const Title = "Cube Conundrum"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 2.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 sums the IDs of the games possible with a bag holding only 12 red,
// 13 green, and 14 blue cubes.
func (Solver) Part1(input string) (int64, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	limit := CubeSet{Red: 12, Green: 13, Blue: 14}
	var sum int64
	for _, g := range games {
		if g.Minimum().Within(limit) {
			sum += int64(g.ID)
		}
	}
	return sum, nil
}

// Part2 sums the powers of the smallest bags that make each game possible.
func (Solver) Part2(input string) (int64, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, g := range games {
		sum += g.Minimum().Power()
	}
	return sum, nil
}

// A CubeSet counts cubes of each color.
type CubeSet struct {
	Red, Green, Blue uint64
}

// Within reports whether each count in s is no more than the count in limit.
func (s CubeSet) Within(limit CubeSet) bool {
	return s.Red <= limit.Red && s.Green <= limit.Green && s.Blue <= limit.Blue
}

// Power is the product of the counts in s.
func (s CubeSet) Power() int64 { return int64(s.Red * s.Green * s.Blue) }

// A Game is a numbered sequence of draws from the bag.
type Game struct {
	ID    uint64
	Draws []CubeSet
}

// Minimum returns the smallest set of cubes from which every draw of g could
// have been made.
func (g Game) Minimum() CubeSet {
	var m CubeSet
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

func parseGames(input string) ([]Game, error) {
	return advent.Parse(input, advent.Lines(advent.Parser[Game](parseGame)))
}

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGame(c *advent.Cursor) (Game, error) {
	if _, err := advent.Literal("Game")(c); err != nil {
		return Game{}, err
	}
	advent.Spaces()(c)
	id, err := advent.Uint()(c)
	if err != nil {
		return Game{}, err
	}
	if _, err := advent.Literal(":")(c); err != nil {
		return Game{}, err
	}
	draws, err := advent.Separated(advent.Parser[CubeSet](parseDraw), punct(';'), 1)(c)
	if err != nil {
		return Game{}, err
	}
	return Game{ID: id, Draws: draws}, nil
}

// parseDraw parses "3 blue, 4 red", in which each color appears at most once.
func parseDraw(c *advent.Cursor) (CubeSet, error) {
	var s CubeSet
	seen := make(map[string]bool)
	for {
		advent.Spaces()(c)
		n, err := advent.Uint()(c)
		if err != nil {
			return s, err
		}
		if _, err := advent.Spaces1()(c); err != nil {
			return s, err
		}
		start := c.Mark()
		color, err := advent.Alpha()(c)
		if err != nil {
			return s, err
		}
		if seen[color] {
			c.Reset(start)
			return s, c.Errorf("duplicate color %q", color)
		}
		seen[color] = true
		switch color {
		case "red":
			s.Red = n
		case "green":
			s.Green = n
		case "blue":
			s.Blue = n
		default:
			c.Reset(start)
			return s, c.Errorf("unknown color %q", color)
		}
		mark := c.Mark()
		if _, err := punct(',')(c); err != nil {
			c.Reset(mark)
			return s, nil
		}
	}
}

// punct returns a parser for the byte b, preceded by optional spaces.
func punct(b byte) advent.Parser[byte] {
	return func(c *advent.Cursor) (byte, error) {
		advent.Spaces()(c)
		return advent.Byte(b)(c)
	}
}
