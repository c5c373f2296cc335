package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appVersion = "dev"

var rootCmd = &cobra.Command{
	Use:   "fpldata",
	Short: "fpldata collects Fantasy Premier League statistics into per-gameweek CSV files.",
	// Bare invocation runs a single collection so the scheduled runner
	// needs no arguments.
	RunE:          runCollect,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the CLI; any unhandled failure exits non-zero.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
