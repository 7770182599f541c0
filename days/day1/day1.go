// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day1 solves "Trebuchet?!": recovering two-digit calibration values
// from lines of noisy text.
package day1

import (
	_ "embed"
	"fmt"

	"github.com/creachadair/advent"
	"go4.org/mem"
)

// Title is the name of the puzzle.
const Title = "Trebuchet?!"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 1.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 sums the values formed by the first and last digit of each line.
func (Solver) Part1(input string) (int64, error) {
	return sumCalibration(input, false)
}

// Part2 is like Part1, but digits may also be spelled out ("one" .. "nine").
func (Solver) Part2(input string) (int64, error) {
	return sumCalibration(input, true)
}

const digits = "0123456789"

var spelled = [len(digits)]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func sumCalibration(input string, words bool) (int64, error) {
	lines, err := advent.Parse(input, advent.Lines(advent.TakeTill("\r\n")))
	if err != nil {
		return 0, err
	}
	var sum int64
	for i, line := range lines {
		first, ok := firstDigit(line, words)
		if !ok {
			return 0, fmt.Errorf("line %d: no digits in %q", i+1, line)
		}
		last, _ := lastDigit(line, words)
		sum += int64(first*10 + last)
	}
	return sum, nil
}

// firstDigit returns the value of the leftmost digit in line.
func firstDigit(line string, words bool) (int, bool) {
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(mem.S(line[i:]), words, mem.HasPrefix); ok {
			return d, true
		}
	}
	return 0, false
}

// lastDigit returns the value of the rightmost digit in line.
func lastDigit(line string, words bool) (int, bool) {
	for i := len(line); i > 0; i-- {
		if d, ok := digitAt(mem.S(line[:i]), words, mem.HasSuffix); ok {
			return d, true
		}
	}
	return 0, false
}

// digitAt reports whether s begins (or ends, depending on match) with a
// digit, and if so its value.
func digitAt(s mem.RO, words bool, match func(s, affix mem.RO) bool) (int, bool) {
	for d := range len(digits) {
		if match(s, mem.S(digits[d:d+1])) {
			return d, true
		}
		if words && spelled[d] != "" && match(s, mem.S(spelled[d])) {
			return d, true
		}
	}
	return 0, false
}
