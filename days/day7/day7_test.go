// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package day7_test

import (
	"testing"

	"github.com/creachadair/advent/days/day7"
	"github.com/creachadair/advent/internal/testutil"
)

func TestExample(t *testing.T) {
	var s day7.Solver
	testutil.CheckAnswers(t, s, s.Input(), testutil.Answers{Part1: 6440, Part2: 5905})
}

func TestKind(t *testing.T) {
	tests := []struct {
		cards          string
		standard, joke day7.Kind
	}{
		{"32T3K", day7.OnePair, day7.OnePair},
		{"T55J5", day7.ThreeOfAKind, day7.FourOfAKind},
		{"KK677", day7.TwoPair, day7.TwoPair},
		{"KTJJT", day7.TwoPair, day7.FourOfAKind},
		{"QQQJA", day7.ThreeOfAKind, day7.FourOfAKind},
		{"JJJJJ", day7.FiveOfAKind, day7.FiveOfAKind},
		{"2345J", day7.HighCard, day7.OnePair},
		{"2233J", day7.TwoPair, day7.FullHouse},
		{"23332", day7.FullHouse, day7.FullHouse},
		{"AAAAK", day7.FourOfAKind, day7.FourOfAKind},
	}
	for _, test := range tests {
		h := day7.Hand{Cards: test.cards}
		if got := h.Kind(day7.Standard); got != test.standard {
			t.Errorf("Kind(%q, standard): got %v, want %v", test.cards, got, test.standard)
		}
		if got := h.Kind(day7.Jokers); got != test.joke {
			t.Errorf("Kind(%q, jokers): got %v, want %v", test.cards, got, test.joke)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		deck day7.Deck
		want int // sign only
	}{
		{"33332", "2AAAA", day7.Standard, 1},
		{"77888", "77788", day7.Standard, 1},
		{"KK677", "KTJJT", day7.Standard, 1},
		{"KK677", "KTJJT", day7.Jokers, -1},
		{"JKKK2", "QQQQ2", day7.Jokers, -1},
		{"JKKK2", "QQQQ2", day7.Standard, -1},
		{"T55J5", "T55J5", day7.Jokers, 0},
	}
	sign := func(v int) int { return max(-1, min(v, 1)) }
	for _, test := range tests {
		a, b := day7.Hand{Cards: test.a}, day7.Hand{Cards: test.b}
		if got := sign(a.Compare(b, test.deck)); got != test.want {
			t.Errorf("Compare(%q, %q, %v): got %d, want %d", test.a, test.b, test.deck, got, test.want)
		}
		if got := sign(b.Compare(a, test.deck)); got != -test.want {
			t.Errorf("Compare(%q, %q, %v): got %d, want %d", test.b, test.a, test.deck, got, -test.want)
		}
	}
}

func TestErrors(t *testing.T) {
	for _, input := range []string{
		"32T3 765",
		"32T3X 765",
		"32T3K",
		"32T3K x",
		"32T3K 765 1",
	} {
		testutil.CheckFails(t, day7.Solver{}, input)
	}
}
