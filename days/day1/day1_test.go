// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package day1_test

import (
	"testing"

	"github.com/creachadair/advent/days/day1"
	"github.com/creachadair/advent/internal/testutil"
)

const spelledInput = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestExample(t *testing.T) {
	var s day1.Solver
	testutil.CheckAnswers(t, s, s.Input(), testutil.Answers{Part1: 142, Part2: 142})
}

func TestSpelled(t *testing.T) {
	var s day1.Solver
	got, err := s.Part2(spelledInput)
	if err != nil {
		t.Fatalf("Part2: unexpected error: %v", err)
	}
	if got != 281 {
		t.Errorf("Part2: got %d, want 281", got)
	}

	// Without spelled digits, the second line has no value.
	if got, err := s.Part1(spelledInput); err == nil {
		t.Errorf("Part1: got %d, want error", got)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		input  string
		p1, p2 int64
	}{
		{"7", 77, 77},
		{"oneight", 0, 18},
		{"twone\r\n3x\r\n", 0, 54},
		{"nine9one", 99, 91},
		{"\n\n12\n\n34\n", 46, 46},
	}
	var s day1.Solver
	for _, test := range tests {
		if test.p1 != 0 {
			if got, err := s.Part1(test.input); err != nil || got != test.p1 {
				t.Errorf("Part1(%q): got %d, %v; want %d", test.input, got, err, test.p1)
			}
		}
		if test.p2 != 0 {
			if got, err := s.Part2(test.input); err != nil || got != test.p2 {
				t.Errorf("Part2(%q): got %d, %v; want %d", test.input, got, err, test.p2)
			}
		}
	}
}

func TestNoDigits(t *testing.T) {
	testutil.CheckFails(t, day1.Solver{}, "12\nabc\n")
}
