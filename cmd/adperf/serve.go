package main

import (
	"log/slog"

	"github.com/aevon-lab/adperf/internal/projection"
	"github.com/aevon-lab/adperf/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ROAS report over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		adapter, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(adapter)

		srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), adapter.DB(), cfg.Server.Mode)
		projection.NewService(adapter).RegisterRoutes(srv.Engine)

		if err := srv.Run(ctx); err != nil {
			slog.Error("Server stopped with error", "error", err)
			return err
		}

		slog.Info("Shutdown complete")
		return nil
	},
}
