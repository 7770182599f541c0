// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day7 solves "Camel Cards": ranking poker-like hands to compute
// total winnings.
package day7

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/creachadair/advent"
)

// Title is the name of the puzzle.
const Title = "Camel Cards"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 7.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 returns the total winnings with the standard deck.
func (Solver) Part1(input string) (int64, error) { return winnings(input, Standard) }

// Part2 returns the total winnings when J cards are jokers.
func (Solver) Part2(input string) (int64, error) { return winnings(input, Jokers) }

// A Deck determines the relative values of cards and how hands are typed.
type Deck int

const (
	Standard Deck = iota // J is a jack, ranked between T and Q
	Jokers               // J is a joker, ranked lowest and wild for typing
)

func (d Deck) String() string {
	switch d {
	case Standard:
		return "standard"
	case Jokers:
		return "jokers"
	}
	return fmt.Sprintf("Deck(%d)", int(d))
}

// order returns the card labels of d from lowest to highest.
func (d Deck) order() string {
	if d == Jokers {
		return "J23456789TQKA"
	}
	return "23456789TJQKA"
}

// Rank returns the rank of the card labelled b in d, or -1 if b is not a
// valid card.
func (d Deck) Rank(b byte) int { return strings.IndexByte(d.order(), b) }

// A Kind is the type of a hand. Larger kinds beat smaller ones.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var kindNames = [...]string{
	"high card", "one pair", "two pair", "three of a kind",
	"full house", "four of a kind", "five of a kind",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int64
}

// Kind returns the type of h under deck d. With jokers, each J counts as the
// card that makes the strongest hand.
func (h Hand) Kind(d Deck) Kind {
	counts := make(map[byte]int)
	var jokers int
	for i := range len(h.Cards) {
		if d == Jokers && h.Cards[i] == 'J' {
			jokers++
		} else {
			counts[h.Cards[i]]++
		}
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare reports whether h is weaker (-1), equal (0), or stronger (+1) than
// o under deck d. Hands are ordered by kind, then card by card.
func (h Hand) Compare(o Hand, d Deck) int {
	if hk, ok := h.Kind(d), o.Kind(d); hk != ok {
		return int(hk - ok)
	}
	for i := range len(h.Cards) {
		if v := d.Rank(h.Cards[i]) - d.Rank(o.Cards[i]); v != 0 {
			return v
		}
	}
	return 0
}

func winnings(input string, d Deck) (int64, error) {
	hands, err := advent.Parse(input, advent.Lines(advent.Parser[Hand](parseHand)))
	if err != nil {
		return 0, err
	}
	slices.SortStableFunc(hands, func(a, b Hand) int { return a.Compare(b, d) })
	var sum int64
	for i, h := range hands {
		sum += int64(i+1) * h.Bid
	}
	return sum, nil
}

// parseHand parses "32T3K 765".
func parseHand(c *advent.Cursor) (Hand, error) {
	start := c.Mark()
	cards, err := advent.Take(5)(c)
	if err != nil {
		return Hand{}, err
	}
	for i := range len(cards) {
		if Standard.Rank(cards[i]) < 0 {
			c.Reset(start + i)
			return Hand{}, c.Errorf("invalid card %q", cards[i])
		}
	}
	if _, err := advent.Spaces1()(c); err != nil {
		return Hand{}, err
	}
	bid, err := advent.Int()(c)
	if err != nil {
		return Hand{}, err
	}
	return Hand{Cards: cards, Bid: bid}, nil
}
