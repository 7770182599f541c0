// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package puzzle

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// A Runner solves puzzles and writes their answers to Out:
//
//	----------[Day 5]----------
//	Part 1: 35
//	Part 2: 46
//
// followed by a blank line.
type Runner struct {
	Out io.Writer

	// If non-nil, Log receives an entry for each puzzle solved or failed.
	Log *zap.Logger

	// If non-nil, Header is used to print the day header line.
	Header *color.Color
}

// Run solves both parts of p using its canonical input. If either part
// fails, Run reports an error of concrete type *PuzzleError and does not
// print the remaining output for p.
func (r Runner) Run(p Puzzle) error {
	log := r.logger().With(zap.Int("day", p.Day))
	start := time.Now()

	input := p.Solver.Input()
	r.header(p.Day)
	parts := []func(string) (int64, error){p.Solver.Part1, p.Solver.Part2}
	for i, solve := range parts {
		v, err := solve(input)
		if err != nil {
			log.Error("puzzle failed", zap.Int("part", i+1), zap.Error(err))
			return &PuzzleError{Day: p.Day, Part: i + 1, Err: err}
		}
		fmt.Fprintf(r.Out, "Part %d: %d\n", i+1, v)
	}
	fmt.Fprintln(r.Out)
	log.Info("solved", zap.String("title", p.Title), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// RunAll runs each of ps in order. It stops at the first puzzle that fails
// and reports its error; the puzzles after it are not run.
func (r Runner) RunAll(ps []Puzzle) error {
	for _, p := range ps {
		if err := r.Run(p); err != nil {
			return err
		}
	}
	return nil
}

func (r Runner) header(day int) {
	text := fmt.Sprintf("----------[Day %d]----------", day)
	if r.Header != nil {
		r.Header.Fprintln(r.Out, text)
	} else {
		fmt.Fprintln(r.Out, text)
	}
}

func (r Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
