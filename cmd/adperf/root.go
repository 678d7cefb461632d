package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/adperf/internal/core/config"
	"github.com/aevon-lab/adperf/internal/core/storage/postgres"
	"github.com/aevon-lab/adperf/internal/migrations"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string

	// cfg is loaded once in PersistentPreRunE and shared by every subcommand.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "adperf",
	Short: "Load ad performance files into PostgreSQL and report ROAS",
	Long: `adperf loads campaigns, ad groups and search terms from flat files into
PostgreSQL with conflict-do-nothing inserts, and reports return on ad spend
grouped by the country and priority encoded in each ad group alias.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			setupLogger("info")
			slog.Error("Failed to load config", "error", err)
			return err
		}
		if flagLogLevel != "" {
			loaded.Log.Level = flagLogLevel
		}
		setupLogger(loaded.Log.Level)
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML configuration file (optional)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(initSchemaCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogger sends structured logs to stderr; stdout is reserved for reports.
func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func openStore() (*postgres.Adapter, error) {
	adapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	return adapter, nil
}

// ensureSchema creates the tables using the configured schema mode.
func ensureSchema(ctx context.Context, adapter *postgres.Adapter) error {
	switch cfg.Database.SchemaMode {
	case config.SchemaModeMigrate:
		if _, err := migrations.Run(adapter.DB(), cfg.Database.AutoMigrate); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			return err
		}
	default:
		if _, err := adapter.EnsureTables(ctx); err != nil {
			slog.Error("Failed to create tables", "error", err)
			return err
		}
	}
	return nil
}

func closeStore(adapter *postgres.Adapter) {
	if err := adapter.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
