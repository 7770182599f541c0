// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/advent/days"
	"github.com/creachadair/advent/puzzle"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger constructs the logger for a run. Tests replace it.
var newLogger = func() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}

func newRootCmd() *cobra.Command {
	var logger *zap.Logger
	return &cobra.Command{
		Use:   "advent [all|day<N>]",
		Short: "Solve the daily puzzles",
		Long: `Advent solves the daily puzzles using their embedded inputs and prints
the answers to both parts of each.

Use "all" to run every puzzle in order, or "day<N>" to run only day N.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := puzzle.ParseSelector(args[0])
			if err != nil {
				return err
			}
			ps, err := sel.Select(days.Registry())
			if err != nil {
				return err
			}
			r := puzzle.Runner{
				Out:    cmd.OutOrStdout(),
				Log:    logger.With(zap.Stringer("selector", sel)),
				Header: color.New(color.FgCyan, color.Bold),
			}
			return r.RunAll(ps)
		},
	}
}
