// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day5 solves "If You Give A Seed A Fertilizer": carrying seed
// numbers through a chain of range mappings to find the nearest location.
package day5

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/creachadair/advent/rangemap"
)

// Title is the name of the puzzle.
const Title = "If You Give A Seed A Fertilizer"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 5.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 returns the lowest location of any listed seed.
func (Solver) Part1(input string) (int64, error) {
	a, err := rangemap.ParseAlmanac(input)
	if err != nil {
		return 0, err
	}
	return answer(a.LowestLocation())
}

// Part2 returns the lowest location of any seed in the listed seed ranges.
func (Solver) Part2(input string) (int64, error) {
	a, err := rangemap.ParseAlmanac(input)
	if err != nil {
		return 0, err
	}
	return answer(a.LowestRangeLocation())
}

func answer(v uint64, err error) (int64, error) {
	if err != nil {
		return 0, err
	} else if v > math.MaxInt64 {
		return 0, fmt.Errorf("location %d out of range", v)
	}
	return int64(v), nil
}
