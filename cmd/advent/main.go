// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program advent runs the daily puzzle solvers and prints their answers.
//
// Usage:
//
//	advent all      # run every puzzle in order
//	advent day<N>   # run the puzzle for day N
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
