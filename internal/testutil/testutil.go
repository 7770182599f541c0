// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/creachadair/advent/puzzle"
)

// Answers are the expected results of both parts of a puzzle.
type Answers struct {
	Part1, Part2 int64
}

// CheckAnswers verifies that s produces the expected answers for input.
func CheckAnswers(t *testing.T, s puzzle.Solver, input string, want Answers) {
	t.Helper()
	if got, err := s.Part1(input); err != nil {
		t.Errorf("Part1: unexpected error: %v", err)
	} else if got != want.Part1 {
		t.Errorf("Part1: got %d, want %d", got, want.Part1)
	}
	if got, err := s.Part2(input); err != nil {
		t.Errorf("Part2: unexpected error: %v", err)
	} else if got != want.Part2 {
		t.Errorf("Part2: got %d, want %d", got, want.Part2)
	}
}

// CheckFails verifies that both parts of s report an error for input.
func CheckFails(t *testing.T, s puzzle.Solver, input string) {
	t.Helper()
	if got, err := s.Part1(input); err == nil {
		t.Errorf("Part1(%q): got %d, want error", input, got)
	}
	if got, err := s.Part2(input); err == nil {
		t.Errorf("Part2(%q): got %d, want error", input, got)
	}
}
