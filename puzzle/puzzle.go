// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package puzzle defines the contract implemented by each daily puzzle, a
// registry of puzzles by day, and a runner that reports their answers.
package puzzle

import (
	"fmt"
	"slices"
)

// A Solver computes the two answers for a single puzzle.
type Solver interface {
	// Input returns the canonical input text for the puzzle.
	Input() string

	// Part1 computes the answer to the first part of the puzzle.
	Part1(input string) (int64, error)

	// Part2 computes the answer to the second part of the puzzle.
	Part2(input string) (int64, error)
}

// A Puzzle is a registered solver and the day it belongs to.
type Puzzle struct {
	Day    int    // 1-based
	Title  string // human-readable name, optional
	Solver Solver
}

// A Registry is an ordered collection of puzzles indexed by day.
// The zero value is ready for use.
type Registry struct {
	puzzles []Puzzle
	byDay   map[int]int // day → index in puzzles
}

// Register adds p to r. It panics if p has no solver, if its day is not
// positive, or if a puzzle for that day is already registered.
func (r *Registry) Register(p Puzzle) {
	if p.Solver == nil {
		panic(fmt.Sprintf("puzzle: day %d has no solver", p.Day))
	} else if p.Day <= 0 {
		panic(fmt.Sprintf("puzzle: invalid day %d", p.Day))
	}
	if r.byDay == nil {
		r.byDay = make(map[int]int)
	}
	if _, ok := r.byDay[p.Day]; ok {
		panic(fmt.Sprintf("puzzle: day %d is already registered", p.Day))
	}
	r.byDay[p.Day] = len(r.puzzles)
	r.puzzles = append(r.puzzles, p)
}

// Lookup returns the puzzle for the specified day. If no such puzzle is
// registered, it reports an error of concrete type *UnknownPuzzleError.
func (r *Registry) Lookup(day int) (Puzzle, error) {
	i, ok := r.byDay[day]
	if !ok {
		return Puzzle{}, &UnknownPuzzleError{Day: day, Known: len(r.puzzles)}
	}
	return r.puzzles[i], nil
}

// All returns the registered puzzles in registration order.
func (r *Registry) All() []Puzzle { return slices.Clone(r.puzzles) }

// Len reports the number of registered puzzles.
func (r *Registry) Len() int { return len(r.puzzles) }

// UnknownPuzzleError is reported when a puzzle index does not correspond to
// any registered puzzle.
type UnknownPuzzleError struct {
	Day   int // the requested day
	Known int // the number of registered puzzles
}

func (e *UnknownPuzzleError) Error() string {
	return fmt.Sprintf("unknown puzzle index %d (have %d puzzles)", e.Day, e.Known)
}

// PuzzleError reports the failure of one part of a puzzle.
type PuzzleError struct {
	Day  int
	Part int
	Err  error
}

func (e *PuzzleError) Error() string {
	return fmt.Sprintf("day %d part %d: %v", e.Day, e.Part, e.Err)
}

func (e *PuzzleError) Unwrap() error { return e.Err }
