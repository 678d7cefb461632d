package main

import (
	"log/slog"
	"os"

	"github.com/aevon-lab/adperf/internal/projection"
	"github.com/spf13/cobra"
)

var (
	flagFormat   string
	flagCountry  string
	flagPriority string
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Print ROAS summed per (country, priority)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		format := reportFormat(cfg.Report.Format, flagFormat)

		adapter, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(adapter)

		report, err := projection.NewService(adapter).Build(ctx, projection.Filter{
			Country:  flagCountry,
			Priority: flagPriority,
		})
		if err != nil {
			slog.Error("Failed to build report", "error", err)
			return err
		}

		if err := projection.Write(os.Stdout, report, format); err != nil {
			slog.Error("Failed to write report", "error", err)
			return err
		}
		return nil
	},
}

// reportFormat prefers the --format flag over report.format.
func reportFormat(configured, override string) string {
	if override != "" {
		return override
	}
	return configured
}

func init() {
	aggregateCmd.Flags().StringVar(&flagFormat, "format", "", "output format: table, json, yaml (overrides report.format)")
	aggregateCmd.Flags().StringVar(&flagCountry, "country", "", "only report this country")
	aggregateCmd.Flags().StringVar(&flagPriority, "priority", "", "only report this priority")
}
