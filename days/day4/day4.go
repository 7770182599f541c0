// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day4 solves "Scratchcards": scoring cards by how many of their
// numbers are winners.
package day4

import (
	_ "embed"

	"github.com/creachadair/advent"
	"github.com/creachadair/mds/mapset"
)

// Title is the name of the puzzle.
const Title = "Scratchcards"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 4.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 sums the card scores. A card with n > 0 matches scores 2^(n-1).
func (Solver) Part1(input string) (int64, error) {
	cards, err := advent.Parse(input, advent.Lines(advent.Parser[Card](parseCard)))
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, c := range cards {
		if n := c.Matches(); n > 0 {
			sum += 1 << (n - 1)
		}
	}
	return sum, nil
}

// Part2 counts the cards held at the end when each card with n matches wins
// one copy of each of the following n cards.
func (Solver) Part2(input string) (int64, error) {
	cards, err := advent.Parse(input, advent.Lines(advent.Parser[Card](parseCard)))
	if err != nil {
		return 0, err
	}
	copies := make([]int64, len(cards))
	var total int64
	for i, c := range cards {
		copies[i]++
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}

// A Card is a numbered scratchcard.
type Card struct {
	ID      uint64
	Winning mapset.Set[uint64]
	Have    []uint64
}

// Matches reports how many of the numbers c has are winning numbers.
func (c Card) Matches() int {
	var n int
	for _, v := range c.Have {
		if c.Winning.Has(v) {
			n++
		}
	}
	return n
}

// parseCard parses "Card 1: 41 48 83 | 83 86  6 31".
func parseCard(c *advent.Cursor) (Card, error) {
	if _, err := advent.Literal("Card")(c); err != nil {
		return Card{}, err
	}
	advent.Spaces()(c)
	id, err := advent.Uint()(c)
	if err != nil {
		return Card{}, err
	}
	if _, err := advent.Literal(":")(c); err != nil {
		return Card{}, err
	}
	advent.Spaces()(c)
	winning, err := numbers(c)
	if err != nil {
		return Card{}, err
	}
	advent.Spaces()(c)
	if _, err := advent.Literal("|")(c); err != nil {
		return Card{}, err
	}
	advent.Spaces()(c)
	have, err := numbers(c)
	if err != nil {
		return Card{}, err
	}
	return Card{ID: id, Winning: mapset.New(winning...), Have: have}, nil
}

func numbers(c *advent.Cursor) ([]uint64, error) {
	return advent.Separated(advent.Uint(), advent.Spaces1(), 1)(c)
}
