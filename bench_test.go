// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package advent_test

import (
	"strings"
	"testing"

	"github.com/creachadair/advent"
)

func BenchmarkFindAll(b *testing.B) {
	const row = "467..114....*......#..35..633....617*......+.58..592.....755..$.*.664.598..\n"
	input := strings.Repeat(row, 2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Numbers", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c := advent.Locate(input)
			if _, err := advent.FindAll(c, advent.Located(advent.Uint())); err != nil {
				b.Fatalf("FindAll: %v", err)
			}
		}
	})

	b.Run("Symbols", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c := advent.Locate(input)
			if _, err := advent.FindAll(c, advent.Located(advent.NoneOf("0123456789.\n"))); err != nil {
				b.Fatalf("FindAll: %v", err)
			}
		}
	})
}
