package commands

import (
	"time"

	"github.com/spf13/cobra"

	"fpl-data-collector/internal/analysis"
	"fpl-data-collector/internal/logging"
	"fpl-data-collector/internal/output"
	"fpl-data-collector/internal/timeutil"
)

var (
	topSeason string
	topLimit  int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Rank players by accumulated gameweek points across collected data.",
	RunE:  runTop,
}

func init() {
	topCmd.Flags().StringVar(&topSeason, "season", "", "season label, e.g. 2025_26 (default: current season)")
	topCmd.Flags().IntVar(&topLimit, "limit", 50, "number of players to keep")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	season := topSeason
	if season == "" {
		season = timeutil.SeasonLabel(time.Now())
	}

	// Re-merge first so the ranking always covers every collected gameweek.
	if _, _, err := output.MergeSeason(rt.cfg.OutputDir, season); err != nil {
		return err
	}
	rows, err := output.ReadMergedRows(rt.cfg.OutputDir, season)
	if err != nil {
		return err
	}
	ranked, err := analysis.TopPlayers(rows, topLimit)
	if err != nil {
		return err
	}
	path, err := analysis.WriteTop(rt.cfg.OutputDir, season, topLimit, ranked)
	if err != nil {
		return err
	}

	logging.Info(rt.logger, "top players written",
		logging.FieldSeason, season,
		logging.FieldCount, len(ranked),
		logging.FieldPath, path,
	)
	return nil
}
