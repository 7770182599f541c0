// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day9 solves "Mirage Maintenance": extrapolating sequences by their
// repeated differences.
package day9

import (
	_ "embed"
	"slices"

	"github.com/creachadair/advent"
)

// Title is the name of the puzzle.
const Title = "Mirage Maintenance"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 9.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 sums the next value of each sequence.
func (Solver) Part1(input string) (int64, error) {
	return sumExtrapolated(input, false)
}

// Part2 sums the value preceding each sequence.
func (Solver) Part2(input string) (int64, error) {
	return sumExtrapolated(input, true)
}

func sumExtrapolated(input string, backward bool) (int64, error) {
	seqs, err := advent.Parse(input, advent.Lines(
		advent.Separated(advent.Int(), advent.Spaces1(), 1),
	))
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, seq := range seqs {
		if backward {
			slices.Reverse(seq)
		}
		sum += Next(seq)
	}
	return sum, nil
}

// Next returns the value following seq, found by taking differences of
// adjacent values until they are all zero and summing back up.
func Next(seq []int64) int64 {
	var next int64
	row := slices.Clone(seq)
	for len(row) > 0 && slices.ContainsFunc(row, func(v int64) bool { return v != 0 }) {
		next += row[len(row)-1]
		for i := range len(row) - 1 {
			row[i] = row[i+1] - row[i]
		}
		row = row[:len(row)-1]
	}
	return next
}
