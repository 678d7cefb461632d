package main

import (
	"log/slog"

	"github.com/aevon-lab/adperf/internal/ingestion"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ensure the schema, then load campaigns, ad groups and search terms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		adapter, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(adapter)

		if err := ensureSchema(ctx, adapter); err != nil {
			return err
		}

		svc := ingestion.NewService(adapter, ingestion.Options{
			BatchSize:     cfg.Ingest.BatchSize,
			ProgressEvery: cfg.Ingest.ProgressEvery,
			Sheet:         cfg.Ingest.Sheet,
		})

		sources := ingestion.DefaultSources(
			cfg.Ingest.CampaignsPath,
			cfg.Ingest.AdGroupsPath,
			cfg.Ingest.SearchTermsPath,
		)

		results, err := svc.Run(ctx, sources)
		for _, r := range results {
			slog.Info("Ingest summary",
				"table", r.Table,
				"read", r.Read,
				"duplicates", r.Duplicates,
				"processed", r.Processed,
				"inserted", r.Inserted,
				"skipped", r.Skipped)
		}
		return err
	},
}
