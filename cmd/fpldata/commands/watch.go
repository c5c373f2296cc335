package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"fpl-data-collector/internal/logging"
	"fpl-data-collector/internal/poller"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run collections on an interval instead of relying on an external scheduler.",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}

	p := poller.New(rt.service(), rt.logger, rt.cfg.PollInterval)
	p.Start(ctx)

	var metricsSrv *http.Server
	if rt.promHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", rt.promHandler)
		metricsSrv = &http.Server{Addr: ":" + rt.cfg.Metrics.Port, Handler: mux}
		go func() {
			logging.Info(rt.logger, "metrics listening", "addr", metricsSrv.Addr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error(rt.logger, "metrics server failed", err)
			}
		}()
	}

	<-ctx.Done()
	p.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logging.Warn(rt.logger, "metrics server shutdown failed", "error", err)
		}
	}
	rt.close(shutdownCtx)
	return nil
}
