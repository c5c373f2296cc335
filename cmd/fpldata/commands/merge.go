package commands

import (
	"time"

	"github.com/spf13/cobra"

	"fpl-data-collector/internal/logging"
	"fpl-data-collector/internal/output"
	"fpl-data-collector/internal/timeutil"
)

var mergeSeason string

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Concatenate a season's gameweek CSVs into merged_gws.csv.",
	RunE:  runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeSeason, "season", "", "season label, e.g. 2025_26 (default: current season)")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	season := mergeSeason
	if season == "" {
		season = timeutil.SeasonLabel(time.Now())
	}

	path, rows, err := output.MergeSeason(rt.cfg.OutputDir, season)
	if err != nil {
		return err
	}
	logging.Info(rt.logger, "merge complete",
		logging.FieldSeason, season,
		logging.FieldCount, rows,
		logging.FieldPath, path,
	)
	return nil
}
