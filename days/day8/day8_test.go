// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package day8_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/advent"
	"github.com/creachadair/advent/days/day8"
)

const ghostInput = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

const directInput = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

func TestPart1(t *testing.T) {
	var s day8.Solver
	for _, test := range []struct {
		name  string
		input string
		want  int64
	}{
		{"Embedded", s.Input(), 6},
		{"Direct", directInput, 2},
		{"AlreadyThere", "L\nAAA = (ZZZ, ZZZ)\nZZZ = (AAA, AAA)\n", 1},
	} {
		got, err := s.Part1(test.input)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
		} else if got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got, test.want)
		}
	}
}

func TestPart2(t *testing.T) {
	var s day8.Solver
	got, err := s.Part2(ghostInput)
	if err != nil {
		t.Fatalf("Part2: unexpected error: %v", err)
	}
	if got != 6 {
		t.Errorf("Part2: got %d, want 6", got)
	}
}

func TestErrors(t *testing.T) {
	var s day8.Solver
	for _, test := range []struct {
		name, input, want string
	}{
		{"NoStart", "L\nBBB = (ZZZ, ZZZ)\nZZZ = (ZZZ, ZZZ)\n", "no start node"},
		{"Unreachable", "L\nAAA = (AAA, ZZZ)\nZZZ = (ZZZ, ZZZ)\n", "unreachable"},
		{"Dangling", "L\nAAA = (QQQ, ZZZ)\nZZZ = (ZZZ, ZZZ)\n", `unknown node "QQQ"`},
	} {
		if got, err := s.Part1(test.input); err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: got %d, %v; want error containing %q", test.name, got, err, test.want)
		}
	}

	if got, err := s.Part2("LR\n11A = (11A, 11A)\n"); err == nil {
		t.Errorf("Part2 never finishing: got %d, want error", got)
	}

	for _, input := range []string{
		"LXR\nAAA = (ZZZ, ZZZ)\n",
		"L\nAAA = (ZZZ ZZZ)\n",
		"L\nAAA = (ZZZ, ZZZ)\nAAA = (BBB, BBB)\n",
		"\n",
	} {
		_, err := s.Part1(input)
		var perr *advent.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Part1(%q): got %v, want *ParseError", input, err)
		}
	}
}
