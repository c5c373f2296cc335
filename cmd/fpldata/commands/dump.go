package commands

import (
	"github.com/spf13/cobra"

	"fpl-data-collector/internal/logging"
	"fpl-data-collector/internal/output"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Fetch bootstrap-static and write it to fpl_data.json.",
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	bootstrap, err := rt.statsProvider().FetchBootstrap(ctx)
	if err != nil {
		return err
	}
	path, err := output.DumpBootstrap(rt.cfg.OutputDir, bootstrap)
	if err != nil {
		return err
	}
	logging.Info(rt.logger, "bootstrap dump written", logging.FieldPath, path)
	return nil
}
