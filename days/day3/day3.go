// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day3 solves "Gear Ratios": finding part numbers in an engine
// schematic by their adjacency to symbols.
package day3

import (
	_ "embed"

	"github.com/creachadair/advent"
	"github.com/creachadair/mds/mapset"
)

// Title is the name of the puzzle.
const Title = "Gear Ratios"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 3.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 sums the numbers adjacent to at least one symbol, including
// diagonally.
func (Solver) Part1(input string) (int64, error) {
	s, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, n := range s.Numbers {
		for p := range n.neighbors() {
			if s.symbolAt.Has(p) {
				sum += int64(n.Value)
				break
			}
		}
	}
	return sum, nil
}

// Part2 sums the gear ratios of the schematic. A gear is a "*" adjacent to
// exactly two numbers, and its ratio is their product.
func (Solver) Part2(input string) (int64, error) {
	s, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}
	gears := mapset.New[point]()
	for _, sym := range s.Symbols {
		if sym.Value == '*' {
			gears.Add(pointOf(sym.Loc))
		}
	}
	adjacent := make(map[point][]uint64)
	for _, n := range s.Numbers {
		for p := range n.neighbors() {
			if gears.Has(p) {
				adjacent[p] = append(adjacent[p], n.Value)
			}
		}
	}
	var sum int64
	for _, ns := range adjacent {
		if len(ns) == 2 {
			sum += int64(ns[0] * ns[1])
		}
	}
	return sum, nil
}

// A Schematic is the set of numbers and symbols found in the input, with
// their locations.
type Schematic struct {
	Numbers []Number
	Symbols []advent.Spanned[byte]

	symbolAt mapset.Set[point]
}

// A Number is a part number candidate and its location.
type Number advent.Spanned[uint64]

type point struct{ line, col int }

func pointOf(loc advent.LineSpan) point { return point{loc.Line, loc.Col.Pos} }

// neighbors returns the positions that surround n, including diagonals.
// Positions off the edges of the grid are included, but never hold symbols.
func (n Number) neighbors() mapset.Set[point] {
	out := mapset.New[point]()
	for line := n.Loc.Line - 1; line <= n.Loc.Line+1; line++ {
		for col := n.Loc.Col.Pos - 1; col <= n.Loc.Col.End; col++ {
			if line == n.Loc.Line && n.Loc.Col.Contains(col) {
				continue
			}
			out.Add(point{line, col})
		}
	}
	return out
}

// Any byte other than a digit, a period, or whitespace is a symbol.
const notSymbol = "0123456789. \t\r\n"

func parseSchematic(input string) (*Schematic, error) {
	nums, err := advent.FindAll(advent.Locate(input), advent.Located(advent.Uint()))
	if err != nil {
		return nil, err
	}
	syms, err := advent.FindAll(advent.Locate(input), advent.Located(advent.NoneOf(notSymbol)))
	if err != nil {
		return nil, err
	}
	s := &Schematic{Symbols: syms, symbolAt: mapset.New[point]()}
	for _, n := range nums {
		s.Numbers = append(s.Numbers, Number(n))
	}
	for _, sym := range syms {
		s.symbolAt.Add(pointOf(sym.Loc))
	}
	return s, nil
}
