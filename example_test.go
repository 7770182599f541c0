// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package advent_test

import (
	"fmt"
	"log"

	"github.com/creachadair/advent"
)

func ExampleLocated() {
	c := advent.Locate("..12\n7..*\n")
	nums, err := advent.FindAll(c, advent.Located(advent.Uint()))
	if err != nil {
		log.Fatalf("FindAll: %v", err)
	}
	for _, n := range nums {
		fmt.Println(n.Value, n.Loc)
	}
	// Output:
	// 12 0:2-4
	// 7 1:0-1
}

func ExampleParse() {
	_, err := advent.Parse("seeds: 79 x", advent.Separated(advent.Uint(), advent.Spaces1(), 1))
	fmt.Println(err)
	// Output:
	// want digit, got 's' (line 1, column 0)
}
